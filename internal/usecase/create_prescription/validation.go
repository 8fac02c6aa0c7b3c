package create_prescription

import (
	"fmt"
	"strings"

	"github.com/sirisampada/SSCC-BookingService/internal/domain"
)

// validateRequest валидирует входные данные назначения
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.PatientName) == "" {
		return fmt.Errorf("%w: patient name is required", ErrInvalidInput)
	}
	if req.PatientAge < domain.MinPatientAge || req.PatientAge > domain.MaxPatientAge {
		return fmt.Errorf("%w: patient age must be %d-%d",
			ErrInvalidInput, domain.MinPatientAge, domain.MaxPatientAge)
	}

	if strings.TrimSpace(req.Disease) == "" {
		return fmt.Errorf("%w: disease is required", ErrInvalidInput)
	}
	if len(req.Disease) > domain.MaxDiseaseLength {
		return fmt.Errorf("%w: disease is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Medicine) == "" {
		return fmt.Errorf("%w: medicine is required", ErrInvalidInput)
	}
	if len(req.Medicine) > domain.MaxMedicineLength {
		return fmt.Errorf("%w: medicine is too long", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

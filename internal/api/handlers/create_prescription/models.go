package create_prescription

import (
	"time"

	"github.com/sirisampada/SSCC-BookingService/internal/domain"
	createPrescription "github.com/sirisampada/SSCC-BookingService/internal/usecase/create_prescription"
)

// CreatePrescriptionRequest HTTP request model
type CreatePrescriptionRequest struct {
	PatientName string  `json:"patientName"`
	PatientAge  int     `json:"patientAge"`
	Disease     string  `json:"disease"`
	Medicine    string  `json:"medicine"`
	Notes       *string `json:"notes,omitempty"`
}

// PrescriptionResponse HTTP response model
type PrescriptionResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	PatientName string  `json:"patientName"`
	PatientAge  int     `json:"patientAge"`
	Disease     string  `json:"disease"`
	Medicine    string  `json:"medicine"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreatePrescriptionRequest) ToUseCaseRequest() *createPrescription.Request {
	return &createPrescription.Request{
		PatientName: r.PatientName,
		PatientAge:  r.PatientAge,
		Disease:     r.Disease,
		Medicine:    r.Medicine,
		Notes:       r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createPrescription.Response) *PrescriptionResponse {
	return &PrescriptionResponse{
		ID:          resp.ID,
		Date:        resp.Date.Format(domain.DateFormat),
		PatientName: resp.PatientName,
		PatientAge:  resp.PatientAge,
		Disease:     resp.Disease,
		Medicine:    resp.Medicine,
		Notes:       resp.Notes,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}

package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/sirisampada/SSCC-BookingService/internal/domain"
)

// validateRequest валидирует входные данные формы записи
// Любая ошибка валидации означает, что запись не создается, частичных записей нет
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ParentName) == "" {
		return fmt.Errorf("%w: parent name is required", ErrInvalidInput)
	}
	if len(req.ParentName) > domain.MaxParentNameLength {
		return fmt.Errorf("%w: parent name is too long", ErrInvalidInput)
	}

	if err := validatePhone(req.Phone); err != nil {
		return err
	}

	if strings.TrimSpace(req.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if len(req.Address) > domain.MaxAddressLength {
		return fmt.Errorf("%w: address is too long", ErrInvalidInput)
	}

	if err := validatePatients(req.Patients); err != nil {
		return err
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.SlotLabel == "" {
		return fmt.Errorf("%w: slot is required", ErrInvalidInput)
	}
	if !domain.IsValidSlotLabel(req.SlotLabel) {
		return fmt.Errorf("%w: %q", ErrUnknownSlot, req.SlotLabel)
	}

	return nil
}

// validatePhone проверяет контактный телефон: ведущий '+', цифры,
// пробелы и дефисы как разделители, от MinPhoneDigits до MaxPhoneDigits цифр
func validatePhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	digits := 0
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-':
		default:
			return fmt.Errorf("%w: phone contains invalid character %q", ErrInvalidInput, r)
		}
	}

	if digits < domain.MinPhoneDigits || digits > domain.MaxPhoneDigits {
		return fmt.Errorf("%w: phone must contain %d-%d digits",
			ErrInvalidInput, domain.MinPhoneDigits, domain.MaxPhoneDigits)
	}

	return nil
}

// validatePatients проверяет список пациентов
func validatePatients(patients []Patient) error {
	if len(patients) < domain.MinPatientsPerAppointment {
		return fmt.Errorf("%w: at least one patient is required", ErrInvalidInput)
	}
	if len(patients) > domain.MaxPatientsPerAppointment {
		return fmt.Errorf("%w: at most %d patients per appointment",
			ErrInvalidInput, domain.MaxPatientsPerAppointment)
	}

	for i, p := range patients {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: patient %d name is required", ErrInvalidInput, i+1)
		}
		if len(p.Name) > domain.MaxPatientNameLength {
			return fmt.Errorf("%w: patient %d name is too long", ErrInvalidInput, i+1)
		}
		if p.Age < domain.MinPatientAge || p.Age > domain.MaxPatientAge {
			return fmt.Errorf("%w: patient %d age must be %d-%d",
				ErrInvalidInput, i+1, domain.MinPatientAge, domain.MaxPatientAge)
		}
	}

	return nil
}

// validateDate проверяет, что дата записи не в прошлом
func validateDate(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

package create_booking

import (
	"time"

	"github.com/sirisampada/SSCC-BookingService/internal/domain"
	createBooking "github.com/sirisampada/SSCC-BookingService/internal/usecase/create_booking"
)

// PatientRequest пациент в HTTP запросе
type PatientRequest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ParentName string           `json:"parentName"`
	Phone      string           `json:"phone"`
	Address    string           `json:"address"`
	Patients   []PatientRequest `json:"patients"`
	Date       string           `json:"date"` // "2026-03-15"
	SlotLabel  string           `json:"slotLabel"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         string           `json:"id"`
	Token      int64            `json:"token"`
	Date       string           `json:"date"`
	SlotLabel  string           `json:"slotLabel"`
	ParentName string           `json:"parentName"`
	Phone      string           `json:"phone"`
	Address    string           `json:"address"`
	Patients   []PatientRequest `json:"patients"`
	CreatedAt  string           `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	patients := make([]createBooking.Patient, 0, len(r.Patients))
	for _, p := range r.Patients {
		patients = append(patients, createBooking.Patient{
			Name: p.Name,
			Age:  p.Age,
		})
	}

	return &createBooking.Request{
		ParentName: r.ParentName,
		Phone:      r.Phone,
		Address:    r.Address,
		Patients:   patients,
		Date:       date,
		SlotLabel:  r.SlotLabel,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	patients := make([]PatientRequest, 0, len(resp.Patients))
	for _, p := range resp.Patients {
		patients = append(patients, PatientRequest{
			Name: p.Name,
			Age:  p.Age,
		})
	}

	return &BookingResponse{
		ID:         resp.ID,
		Token:      resp.Token,
		Date:       resp.Date.Format(domain.DateFormat),
		SlotLabel:  resp.SlotLabel,
		ParentName: resp.ParentName,
		Phone:      resp.Phone,
		Address:    resp.Address,
		Patients:   patients,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}

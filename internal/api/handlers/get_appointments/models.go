package get_appointments

import (
	"time"

	"github.com/sirisampada/SSCC-BookingService/internal/domain"
)

// PatientResponse пациент в HTTP ответе
type PatientResponse struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// AppointmentResponse HTTP модель записи на приём
type AppointmentResponse struct {
	ID         string            `json:"id"`
	Token      int64             `json:"token"`
	Date       string            `json:"date"`
	SlotLabel  string            `json:"slotLabel"`
	ParentName string            `json:"parentName"`
	Phone      string            `json:"phone"`
	Address    string            `json:"address"`
	Patients   []PatientResponse `json:"patients"`
	CreatedAt  string            `json:"createdAt"`
}

// AppointmentsResponse HTTP модель журнала записей на дату
type AppointmentsResponse struct {
	Date         string                `json:"date"`
	Total        int                   `json:"total"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomain конвертирует доменные записи в HTTP response
func FromDomain(date time.Time, appointments []*domain.Appointment) *AppointmentsResponse {
	items := make([]AppointmentResponse, 0, len(appointments))
	for _, appt := range appointments {
		patients := make([]PatientResponse, 0, len(appt.Patients))
		for _, p := range appt.Patients {
			patients = append(patients, PatientResponse{Name: p.Name, Age: p.Age})
		}

		items = append(items, AppointmentResponse{
			ID:         appt.ID,
			Token:      appt.Token,
			Date:       appt.Date.Format(domain.DateFormat),
			SlotLabel:  appt.SlotLabel,
			ParentName: appt.ParentName,
			Phone:      appt.Phone,
			Address:    appt.Address,
			Patients:   patients,
			CreatedAt:  appt.CreatedAt.Format(time.RFC3339),
		})
	}

	return &AppointmentsResponse{
		Date:         date.Format(domain.DateFormat),
		Total:        len(items),
		Appointments: items,
	}
}

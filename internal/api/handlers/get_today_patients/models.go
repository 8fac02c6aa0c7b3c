package get_today_patients

import (
	"github.com/sirisampada/SSCC-BookingService/internal/domain"
	getTodayPatients "github.com/sirisampada/SSCC-BookingService/internal/usecase/get_today_patients"
)

// PatientResponse пациент из сегодняшних записей
type PatientResponse struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	SlotLabel  string `json:"slotLabel"`
	Token      int64  `json:"token"`
	ParentName string `json:"parentName"`
}

// TodayPatientsResponse HTTP модель списка пациентов на сегодня
type TodayPatientsResponse struct {
	Date     string            `json:"date"`
	Total    int               `json:"total"`
	Patients []PatientResponse `json:"patients"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTodayPatients.Response) *TodayPatientsResponse {
	patients := make([]PatientResponse, 0, len(resp.Patients))
	for _, p := range resp.Patients {
		patients = append(patients, PatientResponse{
			Name:       p.Name,
			Age:        p.Age,
			SlotLabel:  p.SlotLabel,
			Token:      p.Token,
			ParentName: p.ParentName,
		})
	}

	return &TodayPatientsResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Total:    len(patients),
		Patients: patients,
	}
}

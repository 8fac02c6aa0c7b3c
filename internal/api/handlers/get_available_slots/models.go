package get_available_slots

import (
	"github.com/sirisampada/SSCC-BookingService/internal/domain"
	getAvailableSlots "github.com/sirisampada/SSCC-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель временного слота
type SlotResponse struct {
	Label          string `json:"label"`
	StartTime      string `json:"startTime"`
	AvailableSpots int    `json:"availableSpots"`
	TotalSpots     int    `json:"totalSpots"`
}

// SlotsResponse HTTP модель списка доступных слотов
type SlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			Label:          slot.Label,
			StartTime:      slot.StartTime.String(),
			AvailableSpots: slot.AvailableSpots,
			TotalSpots:     slot.TotalSpots,
		})
	}

	return &SlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}

package get_available_slots

import (
	"time"

	"github.com/sirisampada/SSCC-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date  time.Time // Дата, на которую запрашивались слоты
	Slots []Slot    // Доступные слоты в порядке расписания
}

// Slot модель временного слота
type Slot struct {
	Label          string           // Метка слота (например, "8:00-8:30 AM")
	StartTime      types.TimeString // Время начала слота
	AvailableSpots int              // Количество свободных мест
	TotalSpots     int              // Общее количество мест
}

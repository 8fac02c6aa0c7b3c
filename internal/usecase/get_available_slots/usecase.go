package get_available_slots

import (
	"context"
	"fmt"

	"github.com/sirisampada/SSCC-BookingService/internal/domain"
)

// UseCase use case для получения доступных слотов для записи на приём
type UseCase struct {
	appointmentRepo AppointmentRepository
	capacityPerSlot int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	capacityPerSlot int,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		capacityPerSlot: capacityPerSlot,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// Для дат в прошлом слотов нет - это не ошибка
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past, no slots", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Slots: []Slot{}}, nil
	}

	// 3. Получаем все записи на эту дату
	// Ошибка хранилища пробрасывается наверх без интерпретации
	appointments, err := uc.appointmentRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 4. Фильтруем прошедшие слоты и считаем занятость
	remaining := filterPastSlots(domain.DailySchedule, req.Date, now)
	counts := countBySlot(appointments, remaining)

	slots := make([]Slot, 0, len(remaining))
	for _, slot := range remaining {
		occupied := counts[slot.Label]
		if occupied >= uc.capacityPerSlot {
			continue
		}
		slots = append(slots, Slot{
			Label:          slot.Label,
			StartTime:      slot.Start,
			AvailableSpots: uc.capacityPerSlot - occupied,
			TotalSpots:     uc.capacityPerSlot,
		})
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for date=%s",
		len(slots), len(domain.DailySchedule), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}

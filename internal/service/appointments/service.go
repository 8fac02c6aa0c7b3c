package appointments

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirisampada/SSCC-BookingService/internal/domain"
)

// Service сервис чтения записей на приём
// Используется защищёнными маршрутами для просмотра журнала записей на дату
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByDate возвращает записи на дату, отсортированные по расписанию и номеру очереди
func (s *Service) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	s.logger.Info("GetByDate: fetching appointments for %s", date.Format(domain.DateFormat))

	appointments, err := s.appointmentRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetByDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	sortBySchedule(appointments)

	s.logger.Info("GetByDate: fetched %d appointments for %s", len(appointments), date.Format(domain.DateFormat))
	return appointments, nil
}

// sortBySchedule сортирует записи по порядку слотов в расписании,
// внутри слота по номеру очереди
func sortBySchedule(appointments []*domain.Appointment) {
	position := make(map[string]int, len(domain.DailySchedule))
	for i, slot := range domain.DailySchedule {
		position[slot.Label] = i
	}

	sort.SliceStable(appointments, func(i, j int) bool {
		pi, iOK := position[appointments[i].SlotLabel]
		pj, jOK := position[appointments[j].SlotLabel]

		// Записи с метками вне расписания уходят в конец
		if iOK != jOK {
			return iOK
		}
		if pi != pj {
			return pi < pj
		}
		return appointments[i].Token < appointments[j].Token
	})
}

package get_today_patients

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirisampada/SSCC-BookingService/internal/domain"
)

// UseCase use case получения списка пациентов, записанных на сегодня
// Используется экраном назначений: врач выбирает пациента из этого списка
type UseCase struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute возвращает пациентов из всех сегодняшних записей в порядке номеров очереди
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	today := uc.timeProvider.Now()

	appointments, err := uc.appointmentRepo.GetByDate(ctx, today)
	if err != nil {
		uc.logger.Error("GetTodayPatients: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	patients := make([]Patient, 0, len(appointments))
	for _, appt := range appointments {
		for _, p := range appt.Patients {
			patients = append(patients, Patient{
				Name:       p.Name,
				Age:        p.Age,
				SlotLabel:  appt.SlotLabel,
				Token:      appt.Token,
				ParentName: appt.ParentName,
			})
		}
	}

	sort.SliceStable(patients, func(i, j int) bool {
		return patients[i].Token < patients[j].Token
	})

	uc.logger.Info("GetTodayPatients: %d patients in %d appointments for %s",
		len(patients), len(appointments), today.Format(domain.DateFormat))

	return &Response{
		Date:     today,
		Patients: patients,
	}, nil
}

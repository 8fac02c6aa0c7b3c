package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sirisampada/SSCC-BookingService/internal/domain"
	appointmentRepo "github.com/sirisampada/SSCC-BookingService/internal/infra/storage/appointment"
	getAvailableSlots "github.com/sirisampada/SSCC-BookingService/internal/usecase/get_available_slots"
	"github.com/sirisampada/SSCC-BookingService/pkg/types"
)

// UseCase use case создания записи на приём
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	capacityPerSlot int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	capacityPerSlot int,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		capacityPerSlot: capacityPerSlot,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
//
// Доступность слота перепроверяется в момент отправки формы, а не только при
// отрисовке списка, и само резервирование места атомарно: два конкурентных
// запроса на последнее место в слоте дадут ровно одну созданную запись
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, slot=%q, patients=%d",
		req.Date.Format(domain.DateFormat), req.SlotLabel, len(req.Patients))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата записи - сегодня или позже
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Для сегодняшней даты начало слота должно быть строго позже текущего времени
	slot, _ := domain.SlotByLabel(req.SlotLabel)
	if isSameDay(req.Date, now) && !slot.Start.IsAfter(types.NewTimeString(now)) {
		uc.logger.Warn("CreateBooking: slot %q already passed (now=%s)", req.SlotLabel, types.NewTimeString(now))
		return nil, ErrSlotAlreadyPassed
	}

	var result *domain.Appointment

	// 5. Перепроверка доступности и резервирование
	// Для PostgreSQL обе операции выполняются в сериализуемой транзакции,
	// для MongoDB атомарность обеспечивает условная запись в ReserveSlot
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Перепроверяем, что выбранный слот всё ещё в доступном наборе
		appointments, err := uc.appointmentRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		available := getAvailableSlots.AvailableSlots(
			domain.DailySchedule, req.Date, now, appointments, uc.capacityPerSlot)
		if !containsSlot(available, req.SlotLabel) {
			uc.logger.Warn("CreateBooking: slot %q not available at submission time", req.SlotLabel)
			return ErrSlotNotAvailable
		}

		// 5.2. Атомарно занимаем место и получаем номер очереди
		token, err := uc.appointmentRepo.ReserveSlot(txCtx, req.Date, req.SlotLabel, uc.capacityPerSlot)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotFull) {
				uc.logger.Warn("CreateBooking: slot %q filled up concurrently", req.SlotLabel)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to reserve slot: %v", err)
			return fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
		}

		// 5.3. Сохраняем запись
		appt := &domain.Appointment{
			ID:         uuid.NewString(),
			Date:       req.Date,
			SlotLabel:  req.SlotLabel,
			ParentName: req.ParentName,
			Phone:      req.Phone,
			Address:    req.Address,
			Patients:   toDomainPatients(req.Patients),
			Token:      token,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			// Возвращаем занятое место; для PostgreSQL это no-op, откат транзакции сделает всё сам
			if releaseErr := uc.appointmentRepo.ReleaseSlot(txCtx, req.Date, req.SlotLabel); releaseErr != nil {
				uc.logger.Error("CreateBooking: failed to release slot after create failure: %v", releaseErr)
			}
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: appointment created, id=%s, token=%d, date=%s, slot=%q",
		result.ID, result.Token, result.Date.Format(domain.DateFormat), result.SlotLabel)

	return &Response{
		ID:         result.ID,
		Token:      result.Token,
		Date:       result.Date,
		SlotLabel:  result.SlotLabel,
		ParentName: result.ParentName,
		Phone:      result.Phone,
		Address:    result.Address,
		Patients:   fromDomainPatients(result.Patients),
		CreatedAt:  result.CreatedAt,
	}, nil
}

// containsSlot проверяет наличие метки слота в наборе
func containsSlot(slots []domain.Slot, label string) bool {
	for _, slot := range slots {
		if slot.Label == label {
			return true
		}
	}
	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func toDomainPatients(patients []Patient) []domain.Patient {
	result := make([]domain.Patient, len(patients))
	for i, p := range patients {
		result[i] = domain.Patient{Name: p.Name, Age: p.Age}
	}
	return result
}

func fromDomainPatients(patients []domain.Patient) []Patient {
	result := make([]Patient, len(patients))
	for i, p := range patients {
		result[i] = Patient{Name: p.Name, Age: p.Age}
	}
	return result
}

package create_prescription

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sirisampada/SSCC-BookingService/internal/domain"
)

// UseCase use case сохранения назначения врача
type UseCase struct {
	prescriptionRepo PrescriptionRepository
	appointmentRepo  AppointmentRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	prescriptionRepo PrescriptionRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		prescriptionRepo: prescriptionRepo,
		appointmentRepo:  appointmentRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case сохранения назначения
// Назначение принимается только для пациента из сегодняшних записей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePrescription: patient=%q, age=%d", req.PatientName, req.PatientAge)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreatePrescription: validation failed: %v", err)
		return nil, err
	}

	// 2. Пациент должен быть в сегодняшних записях
	today := uc.timeProvider.Now()

	appointments, err := uc.appointmentRepo.GetByDate(ctx, today)
	if err != nil {
		uc.logger.Error("CreatePrescription: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	if !patientBookedToday(appointments, req.PatientName, req.PatientAge) {
		uc.logger.Warn("CreatePrescription: patient %q (%d) is not booked today", req.PatientName, req.PatientAge)
		return nil, ErrPatientNotFound
	}

	// 3. Сохраняем назначение
	prescription := &domain.Prescription{
		ID:          uuid.NewString(),
		Date:        today,
		PatientName: req.PatientName,
		PatientAge:  req.PatientAge,
		Disease:     req.Disease,
		Medicine:    req.Medicine,
		Notes:       req.Notes,
	}

	created, err := uc.prescriptionRepo.Create(ctx, prescription)
	if err != nil {
		uc.logger.Error("CreatePrescription: failed to create prescription: %v", err)
		return nil, fmt.Errorf("%w: failed to create prescription: %v", ErrInternal, err)
	}

	uc.logger.Info("CreatePrescription: prescription created, id=%s, patient=%q", created.ID, created.PatientName)

	return &Response{
		ID:          created.ID,
		Date:        created.Date,
		PatientName: created.PatientName,
		PatientAge:  created.PatientAge,
		Disease:     created.Disease,
		Medicine:    created.Medicine,
		Notes:       created.Notes,
		CreatedAt:   created.CreatedAt,
	}, nil
}

// patientBookedToday проверяет, что пациент с таким именем и возрастом
// присутствует хотя бы в одной сегодняшней записи
func patientBookedToday(appointments []*domain.Appointment, name string, age int) bool {
	for _, appt := range appointments {
		for _, p := range appt.Patients {
			if p.Name == name && p.Age == age {
				return true
			}
		}
	}
	return false
}

package create_prescription

import (
	"context"
	"time"

	"github.com/sirisampada/SSCC-BookingService/internal/domain"
)

// PrescriptionRepository интерфейс репозитория назначений
type PrescriptionRepository interface {
	Create(ctx context.Context, p *domain.Prescription) (*domain.Prescription, error)
}

// AppointmentRepository интерфейс репозитория записей на приём
// Используется для проверки, что пациент действительно записан на сегодня
type AppointmentRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

package get_appointments

import (
	"context"
	"time"

	"github.com/sirisampada/SSCC-BookingService/internal/domain"
)

type AppointmentsService interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_today_patients

import (
	"context"

	getTodayPatients "github.com/sirisampada/SSCC-BookingService/internal/usecase/get_today_patients"
)

type GetTodayPatientsUseCase interface {
	Execute(ctx context.Context) (*getTodayPatients.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_prescription

import (
	"context"

	createPrescription "github.com/sirisampada/SSCC-BookingService/internal/usecase/create_prescription"
)

type CreatePrescriptionUseCase interface {
	Execute(ctx context.Context, req *createPrescription.Request) (*createPrescription.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

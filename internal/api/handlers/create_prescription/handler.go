package create_prescription

import (
	"errors"
	"net/http"

	"github.com/sirisampada/SSCC-BookingService/internal/api/handlers"
	createPrescription "github.com/sirisampada/SSCC-BookingService/internal/usecase/create_prescription"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid prescription details"
	msgPatientNotFound    = "patient is not in today's appointment list"
)

type Handler struct {
	useCase CreatePrescriptionUseCase
	logger  Logger
}

func NewHandler(useCase CreatePrescriptionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/prescriptions (защищённый маршрут)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePrescriptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /prescriptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createPrescription.ErrPatientNotFound):
			h.logger.Warn("POST /prescriptions - Patient not found: name=%s, age=%d", req.PatientName, req.PatientAge)
			handlers.RespondNotFound(w, msgPatientNotFound)

		case errors.Is(err, createPrescription.ErrInvalidInput):
			h.logger.Warn("POST /prescriptions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /prescriptions - Failed to create prescription: name=%s, error=%v",
				req.PatientName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /prescriptions - Prescription created: id=%s, patient=%s", result.ID, result.PatientName)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

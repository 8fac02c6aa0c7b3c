package get_today_patients

import (
	"net/http"

	"github.com/sirisampada/SSCC-BookingService/internal/api/handlers"
)

type Handler struct {
	useCase GetTodayPatientsUseCase
	logger  Logger
}

func NewHandler(useCase GetTodayPatientsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/patients/today (защищённый маршрут)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /patients/today - Failed to get patients: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /patients/today - Returned %d patients", len(result.Patients))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

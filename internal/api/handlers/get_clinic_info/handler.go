package get_clinic_info

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirisampada/SSCC-BookingService/internal/api/handlers"
	"github.com/sirisampada/SSCC-BookingService/internal/service/clinicinfo"
)

type Handler struct {
	service ClinicInfoService
	logger  Logger
}

func NewHandler(service ClinicInfoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clinic?lang=en|kn
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")

	info, err := h.service.Get(lang)
	if err != nil {
		if errors.Is(err, clinicinfo.ErrUnsupportedLanguage) {
			h.logger.Warn("GET /clinic - Unsupported language: %q", lang)
			handlers.RespondBadRequest(w, fmt.Sprintf("unsupported language, expected one of: %s",
				strings.Join(h.service.Languages(), ", ")))
			return
		}

		h.logger.Warn("GET /clinic - Failed to get clinic info: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clinic - Returned clinic info: lang=%s", info.Language)
	handlers.RespondJSON(w, http.StatusOK, FromServiceInfo(info))
}

package unlock_prescriptions

import (
	"errors"
	"net/http"
	"time"

	"github.com/sirisampada/SSCC-BookingService/internal/api/handlers"
	"github.com/sirisampada/SSCC-BookingService/internal/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingPassword    = "password is required"
	msgInvalidPassword    = "incorrect password"
)

type Handler struct {
	verifier PasswordVerifier
	issuer   TokenIssuer
	tokenTTL time.Duration
	logger   Logger
}

func NewHandler(verifier PasswordVerifier, issuer TokenIssuer, tokenTTL time.Duration, logger Logger) *Handler {
	return &Handler{
		verifier: verifier,
		issuer:   issuer,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// Handle POST /api/v1/auth/unlock
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UnlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/unlock - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Password == "" {
		h.logger.Warn("POST /auth/unlock - Missing password")
		handlers.RespondBadRequest(w, msgMissingPassword)
		return
	}

	if err := h.verifier.Verify(req.Password); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidPassword):
			// Сам пароль в лог не пишем
			h.logger.Warn("POST /auth/unlock - Incorrect password attempt")
			handlers.RespondUnauthorized(w, msgInvalidPassword)

		default:
			h.logger.Error("POST /auth/unlock - Verification failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	token, err := h.issuer.Issue(auth.SubjectDoctor)
	if err != nil {
		h.logger.Error("POST /auth/unlock - Failed to issue token: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/unlock - Access granted for %s", auth.SubjectDoctor)
	handlers.RespondJSON(w, http.StatusOK, UnlockResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(h.tokenTTL.Seconds()),
	})
}

package create_booking

import (
	"errors"
	"net/http"

	"github.com/sirisampada/SSCC-BookingService/internal/api/handlers"
	createBooking "github.com/sirisampada/SSCC-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateFormat  = "invalid date format, expected YYYY-MM-DD"
	msgInvalidInput       = "invalid booking details"
	msgInvalidDate        = "booking date must not be in the past"
	msgUnknownSlot        = "unknown time slot"
	msgSlotAlreadyPassed  = "this time slot has already passed for today"
	msgSlotNotAvailable   = "selected time slot is fully booked"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: date=%s, slot=%s", req.Date, req.SlotLabel)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrSlotAlreadyPassed):
			h.logger.Warn("POST /appointments - Slot already passed: date=%s, slot=%s", req.Date, req.SlotLabel)
			handlers.RespondBadRequest(w, msgSlotAlreadyPassed)

		case errors.Is(err, createBooking.ErrUnknownSlot):
			h.logger.Warn("POST /appointments - Unknown slot: slot=%s", req.SlotLabel)
			handlers.RespondBadRequest(w, msgUnknownSlot)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid booking date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create booking: date=%s, slot=%s, error=%v",
				req.Date, req.SlotLabel, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Booking created: id=%s, token=%d, date=%s, slot=%s",
		result.ID, result.Token, req.Date, req.SlotLabel)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

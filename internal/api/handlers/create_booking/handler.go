package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBooking/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-FieldBooking/internal/usecase/create_booking"
)

const (
	msgUnauthorized       = "utilizator neautentificat"
	msgInvalidRequestBody = "corpul cererii este invalid"
	msgInvalidFieldID     = "ID-ul terenului este invalid"
	msgInvalidDate        = "data rezervării este invalidă, format așteptat YYYY-MM-DD"
	msgInvalidTime        = "ora de început este invalidă, format așteptat HH:MM"
	msgInvalidData        = "datele rezervării sunt invalide"
	msgFieldNotFound      = "terenul nu a fost găsit"
	msgFieldBlocked       = "terenul este blocat"
	msgCourtRequired      = "selectați un teren (court)"
	msgCourtNotFound      = "terenul (court) selectat nu a fost găsit"
	msgForbidden          = "acces interzis"
	msgPastDate           = "nu se poate rezerva o dată din trecut"
	msgDateTooFar         = "data rezervării este prea departe în viitor"
	msgTooLateToBook      = "este prea târziu pentru a rezerva acest interval"
	msgSlotNotAvailable   = "intervalul selectat nu este disponibil"
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

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		respondParseError(w, err)
		return
	}

	h.execute(w, r, "POST /bookings", useCaseReq)
}

// HandlePhone POST /api/v1/admin/fields/{fieldId}/bookings
func (h *Handler) HandlePhone(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	fieldID, err := handlers.PathUUID(r, "fieldId")
	if err != nil {
		h.logger.Warn("POST /admin/fields/{id}/bookings - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	var req CreatePhoneBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/fields/{id}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(adminID, fieldID)
	if err != nil {
		h.logger.Warn("POST /admin/fields/{id}/bookings - Failed to parse request: %v", err)
		respondParseError(w, err)
		return
	}

	h.execute(w, r, "POST /admin/fields/{id}/bookings", useCaseReq)
}

func (h *Handler) execute(w http.ResponseWriter, r *http.Request, route string, req *createBooking.Request) {
	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		var conflict *createBooking.ConflictError
		var blocked *createBooking.BlockedError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("%s - Slot not available: user_id=%s, field_id=%s, reason=%s",
				route, req.UserID, req.FieldID, conflict.Conflict.Reason)
			msg := msgSlotNotAvailable
			if conflict.Conflict.Message != "" {
				msg = conflict.Conflict.Message
			}
			handlers.RespondConflict(w, msg, string(conflict.Conflict.Reason))

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("%s - Slot not available: user_id=%s, field_id=%s", route, req.UserID, req.FieldID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrFieldNotFound):
			h.logger.Warn("%s - Field not found: field_id=%s", route, req.FieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.As(err, &blocked):
			h.logger.Warn("%s - Field blocked: field_id=%s", route, req.FieldID)
			handlers.RespondLocked(w, msgFieldBlocked, blocked.Reason, blocked.BlockedUntil)

		case errors.Is(err, createBooking.ErrFieldBlocked):
			h.logger.Warn("%s - Field blocked: field_id=%s", route, req.FieldID)
			handlers.RespondLocked(w, msgFieldBlocked, nil, nil)

		case errors.Is(err, createBooking.ErrCourtRequired):
			handlers.RespondBadRequest(w, msgCourtRequired)

		case errors.Is(err, createBooking.ErrCourtNotFound):
			h.logger.Warn("%s - Court not found: field_id=%s, court_id=%v", route, req.FieldID, req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrAccessDenied):
			h.logger.Warn("%s - Access denied: user_id=%s, field_id=%s", route, req.UserID, req.FieldID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("%s - Invalid data: user_id=%s, error=%v", route, req.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("%s - Failed to create booking: user_id=%s, field_id=%s, error=%v",
				route, req.UserID, req.FieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Booking created successfully: booking_id=%s, user_id=%s, field_id=%s",
		route, result.Booking.ID, req.UserID, req.FieldID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBooking(result.Booking))
}

func respondParseError(w http.ResponseWriter, err error) {
	if errors.Is(err, errInvalidTimeFormat) {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}
	handlers.RespondBadRequest(w, msgInvalidDate)
}

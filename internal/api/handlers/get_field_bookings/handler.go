package get_field_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBooking/internal/service/bookings"
)

const (
	msgUnauthorized   = "utilizator neautentificat"
	msgInvalidFieldID = "ID-ul terenului este invalid"
	msgInvalidParams  = "parametrii cererii sunt invalizi"
	msgForbidden      = "acces interzis"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/fields/{fieldId}/bookings
// Query params: date, status (all по умолчанию), courtId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	fieldID, err := handlers.PathUUID(r, "fieldId")
	if err != nil {
		h.logger.Warn("GET /admin/fields/{id}/bookings - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	serviceReq, err := ToServiceRequest(r, userID, fieldID)
	if err != nil {
		h.logger.Warn("GET /admin/fields/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Сервис сам проверит права администратора поля
	result, err := h.service.GetFieldBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /admin/fields/{id}/bookings - Access denied: field_id=%s, user_id=%s", fieldID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/fields/{id}/bookings - Invalid filter: field_id=%s, error=%v", fieldID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /admin/fields/{id}/bookings - Failed to get bookings: field_id=%s, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/fields/{id}/bookings - Bookings retrieved successfully: field_id=%s, count=%d",
		fieldID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

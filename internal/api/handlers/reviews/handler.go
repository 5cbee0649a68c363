package reviews

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBooking/internal/service/reviews"
	"github.com/m04kA/SMC-FieldBooking/internal/service/reviews/models"
)

const (
	msgUnauthorized       = "utilizator neautentificat"
	msgInvalidFieldID     = "ID-ul terenului este invalid"
	msgInvalidRequestBody = "corpul cererii este invalid"
	msgInvalidData        = "recenzia este invalidă"
	msgFieldNotFound      = "terenul nu a fost găsit"
	msgBookingNotFound    = "rezervarea nu a fost găsită"
	msgForbidden          = "acces interzis"
	msgNotReviewable      = "puteți lăsa o recenzie doar pentru o rezervare finalizată"
	msgAlreadyReviewed    = "ați lăsat deja o recenzie pentru această rezervare"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/fields/{fieldId}/reviews
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	fieldID, err := handlers.PathUUID(r, "fieldId")
	if err != nil {
		h.logger.Warn("GET /fields/{id}/reviews - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	result, err := h.service.List(r.Context(), fieldID)
	if err != nil {
		if errors.Is(err, reviews.ErrFieldNotFound) {
			handlers.RespondNotFound(w, msgFieldNotFound)
			return
		}
		h.logger.Error("GET /fields/{id}/reviews - Failed to list reviews: field_id=%s, error=%v", fieldID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/fields/{fieldId}/reviews
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	fieldID, err := handlers.PathUUID(r, "fieldId")
	if err != nil {
		h.logger.Warn("POST /fields/{id}/reviews - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	var req models.CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /fields/{id}/reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID
	req.FieldID = fieldID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /fields/{id}/reviews - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)
		case errors.Is(err, reviews.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, reviews.ErrFieldNotFound):
			handlers.RespondNotFound(w, msgFieldNotFound)
		case errors.Is(err, reviews.ErrAccessDenied):
			h.logger.Warn("POST /fields/{id}/reviews - Access denied: booking_id=%s, user_id=%s", req.BookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, reviews.ErrNotReviewable):
			handlers.RespondBadRequest(w, msgNotReviewable)
		case errors.Is(err, reviews.ErrAlreadyReviewed):
			handlers.RespondError(w, http.StatusConflict, msgAlreadyReviewed)
		default:
			h.logger.Error("POST /fields/{id}/reviews - Failed to create review: field_id=%s, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /fields/{id}/reviews - Review created: review_id=%s, field_id=%s, rating=%d",
		result.ID, fieldID, result.Rating)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

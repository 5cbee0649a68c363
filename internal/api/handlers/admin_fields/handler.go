package admin_fields

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBooking/internal/service/fields"
)

const (
	msgUnauthorized   = "utilizator neautentificat"
	msgInvalidFieldID = "ID-ul terenului este invalid"
	msgFieldNotFound  = "terenul nu a fost găsit"
	msgForbidden      = "acces interzis"
)

type Handler struct {
	service FieldService
	logger  Logger
}

func NewHandler(service FieldService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/admin/fields
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.ListOwned(r.Context(), userID)
	if err != nil {
		if errors.Is(err, fields.ErrAccessDenied) {
			h.logger.Warn("GET /admin/fields - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /admin/fields - Failed to list fields: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Courts GET /api/v1/admin/fields/{fieldId}/courts (включая неактивные и заблокированные)
func (h *Handler) Courts(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	fieldID, err := handlers.PathUUID(r, "fieldId")
	if err != nil {
		h.logger.Warn("GET /admin/fields/{id}/courts - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	courts, err := h.service.ListCourts(r.Context(), userID, fieldID)
	if err != nil {
		switch {
		case errors.Is(err, fields.ErrAccessDenied):
			h.logger.Warn("GET /admin/fields/{id}/courts - Access denied: field_id=%s, user_id=%s", fieldID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, fields.ErrFieldNotFound):
			handlers.RespondNotFound(w, msgFieldNotFound)

		default:
			h.logger.Error("GET /admin/fields/{id}/courts - Failed to list courts: field_id=%s, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CourtListResponse{Courts: courts})
}

package block

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBooking/internal/service/fields"
	"github.com/m04kA/SMC-FieldBooking/internal/service/fields/models"
)

const (
	msgUnauthorized       = "utilizator neautentificat"
	msgInvalidID          = "ID-ul este invalid"
	msgInvalidRequestBody = "corpul cererii este invalid"
	msgInvalidData        = "data de deblocare este invalidă, format așteptat YYYY-MM-DD"
	msgFieldNotFound      = "terenul nu a fost găsit"
	msgCourtNotFound      = "terenul (court) nu a fost găsit"
	msgForbidden          = "acces interzis"
)

type blockFunc func(ctx context.Context, id uuid.UUID, req *models.BlockRequest) (*models.BlockResponse, error)

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

// Field PUT /api/v1/admin/fields/{fieldId}/block
func (h *Handler) Field(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "PUT /admin/fields/{id}/block", "fieldId", h.service.BlockField)
}

// Court PUT /api/v1/admin/courts/{courtId}/block
func (h *Handler) Court(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "PUT /admin/courts/{id}/block", "courtId", h.service.BlockCourt)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, route, idVar string, block blockFunc) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := handlers.PathUUID(r, idVar)
	if err != nil {
		h.logger.Warn("%s - Invalid ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.BlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := block(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, fields.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, fields.ErrAccessDenied):
			h.logger.Warn("%s - Access denied: id=%s, user_id=%s", route, id, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, fields.ErrFieldNotFound):
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, fields.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgCourtNotFound)

		default:
			h.logger.Error("%s - Failed to update block: id=%s, error=%v", route, id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Block updated: id=%s, blocked=%t, user_id=%s", route, id, result.IsBlocked, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

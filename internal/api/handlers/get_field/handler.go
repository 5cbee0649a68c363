package get_field

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBooking/internal/service/fields"
)

const (
	msgInvalidFieldID = "ID-ul terenului este invalid"
	msgFieldNotFound  = "terenul nu a fost găsit"
	msgFieldBlocked   = "terenul este temporar indisponibil"
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

// Handle GET /api/v1/fields/{fieldId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fieldID, err := handlers.PathUUID(r, "fieldId")
	if err != nil {
		h.logger.Warn("GET /fields/{id} - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	result, err := h.service.GetDetails(r.Context(), fieldID)
	if err != nil {
		var blocked *fields.BlockedError
		switch {
		case errors.As(err, &blocked):
			h.logger.Warn("GET /fields/{id} - Field blocked: field_id=%s", fieldID)
			handlers.RespondLocked(w, msgFieldBlocked, blocked.Reason, blocked.BlockedUntil)

		case errors.Is(err, fields.ErrFieldNotFound):
			h.logger.Warn("GET /fields/{id} - Field not found: field_id=%s", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		default:
			h.logger.Error("GET /fields/{id} - Failed to get field: field_id=%s, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

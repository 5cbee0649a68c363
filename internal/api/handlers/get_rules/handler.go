package get_rules

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBooking/internal/service/rules"
)

const (
	msgInvalidFieldID = "ID-ul terenului este invalid"
	msgFieldNotFound  = "terenul nu a fost găsit"
)

type Handler struct {
	service RulesService
	logger  Logger
}

func NewHandler(service RulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}/rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fieldID, err := handlers.PathUUID(r, "fieldId")
	if err != nil {
		h.logger.Warn("GET /fields/{id}/rules - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	result, err := h.service.Get(r.Context(), fieldID)
	if err != nil {
		if errors.Is(err, rules.ErrFieldNotFound) {
			h.logger.Warn("GET /fields/{id}/rules - Field not found: field_id=%s", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)
			return
		}
		h.logger.Error("GET /fields/{id}/rules - Failed to get rules: field_id=%s, error=%v", fieldID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

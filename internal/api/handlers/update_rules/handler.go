package update_rules

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBooking/internal/service/rules"
	"github.com/m04kA/SMC-FieldBooking/internal/service/rules/models"
)

const (
	msgUnauthorized       = "utilizator neautentificat"
	msgInvalidFieldID     = "ID-ul terenului este invalid"
	msgInvalidRequestBody = "corpul cererii este invalid"
	msgInvalidData        = "regulile de rezervare sunt invalide"
	msgFieldNotFound      = "terenul nu a fost găsit"
	msgForbidden          = "acces interzis"
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

// Handle PUT /api/v1/admin/fields/{fieldId}/rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	fieldID, err := handlers.PathUUID(r, "fieldId")
	if err != nil {
		h.logger.Warn("PUT /admin/fields/{id}/rules - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	var req models.UpdateRulesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/fields/{id}/rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID
	req.FieldID = fieldID

	// Сервис сам проверит права администратора поля
	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrInvalidInput):
			h.logger.Warn("PUT /admin/fields/{id}/rules - Invalid data: field_id=%s, error=%v", fieldID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, rules.ErrAccessDenied):
			h.logger.Warn("PUT /admin/fields/{id}/rules - Access denied: field_id=%s, user_id=%s", fieldID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rules.ErrFieldNotFound):
			handlers.RespondNotFound(w, msgFieldNotFound)

		default:
			h.logger.Error("PUT /admin/fields/{id}/rules - Failed to update rules: field_id=%s, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/fields/{id}/rules - Rules updated successfully: field_id=%s, user_id=%s", fieldID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

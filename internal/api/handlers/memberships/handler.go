package memberships

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBooking/internal/service/memberships"
	"github.com/m04kA/SMC-FieldBooking/internal/service/memberships/models"
)

const (
	msgUnauthorized        = "utilizator neautentificat"
	msgInvalidFieldID      = "ID-ul terenului este invalid"
	msgInvalidMembershipID = "ID-ul abonamentului este invalid"
	msgInvalidRequestBody  = "corpul cererii este invalid"
	msgInvalidData         = "datele abonamentului sunt invalide"
	msgMembershipNotFound  = "abonamentul nu a fost găsit"
	msgCourtNotFound       = "terenul (court) selectat nu a fost găsit"
	msgForbidden           = "acces interzis"
)

type Handler struct {
	service MembershipService
	logger  Logger
}

func NewHandler(service MembershipService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/admin/fields/{fieldId}/memberships
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	fieldID, err := handlers.PathUUID(r, "fieldId")
	if err != nil {
		h.logger.Warn("GET /admin/fields/{id}/memberships - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	result, err := h.service.List(r.Context(), userID, fieldID)
	if err != nil {
		h.respondServiceError(w, "GET /admin/fields/{id}/memberships", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/admin/fields/{fieldId}/memberships
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	fieldID, err := handlers.PathUUID(r, "fieldId")
	if err != nil {
		h.logger.Warn("POST /admin/fields/{id}/memberships - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	var req models.CreateMembershipRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/fields/{id}/memberships - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID
	req.FieldID = fieldID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /admin/fields/{id}/memberships", err)
		return
	}

	h.logger.Info("POST /admin/fields/{id}/memberships - Membership created: membership_id=%s, field_id=%s",
		result.ID, fieldID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Delete DELETE /api/v1/admin/memberships/{membershipId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	membershipID, err := handlers.PathUUID(r, "membershipId")
	if err != nil {
		h.logger.Warn("DELETE /admin/memberships/{id} - Invalid membership ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMembershipID)
		return
	}

	if err := h.service.Delete(r.Context(), userID, membershipID); err != nil {
		h.respondServiceError(w, "DELETE /admin/memberships/{id}", err)
		return
	}

	h.logger.Info("DELETE /admin/memberships/{id} - Membership deleted: membership_id=%s", membershipID)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, memberships.ErrInvalidInput):
		h.logger.Warn("%s - Invalid data: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidData)
	case errors.Is(err, memberships.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: %v", route, err)
		handlers.RespondForbidden(w, msgForbidden)
	case errors.Is(err, memberships.ErrMembershipNotFound):
		handlers.RespondNotFound(w, msgMembershipNotFound)
	case errors.Is(err, memberships.ErrCourtNotFound):
		handlers.RespondNotFound(w, msgCourtNotFound)
	default:
		h.logger.Error("%s - Service error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}

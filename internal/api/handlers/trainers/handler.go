package trainers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBooking/internal/service/trainers"
	"github.com/m04kA/SMC-FieldBooking/internal/service/trainers/models"
)

const (
	msgUnauthorized       = "utilizator neautentificat"
	msgInvalidFieldID     = "ID-ul terenului este invalid"
	msgInvalidTrainerID   = "ID-ul antrenorului este invalid"
	msgInvalidRequestBody = "corpul cererii este invalid"
	msgInvalidData        = "datele antrenorului sunt invalide"
	msgTrainerNotFound    = "antrenorul nu a fost găsit"
	msgForbidden          = "acces interzis"
)

type Handler struct {
	service TrainerService
	logger  Logger
}

func NewHandler(service TrainerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/admin/fields/{fieldId}/trainers
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	fieldID, err := handlers.PathUUID(r, "fieldId")
	if err != nil {
		h.logger.Warn("GET /admin/fields/{id}/trainers - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	result, err := h.service.List(r.Context(), userID, fieldID)
	if err != nil {
		h.respondServiceError(w, "GET /admin/fields/{id}/trainers", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/admin/fields/{fieldId}/trainers
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	fieldID, err := handlers.PathUUID(r, "fieldId")
	if err != nil {
		h.logger.Warn("POST /admin/fields/{id}/trainers - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	var req models.CreateTrainerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/fields/{id}/trainers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID
	req.FieldID = fieldID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /admin/fields/{id}/trainers", err)
		return
	}

	h.logger.Info("POST /admin/fields/{id}/trainers - Trainer created: trainer_id=%s, field_id=%s", result.ID, fieldID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Deactivate DELETE /api/v1/admin/trainers/{trainerId}
func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	trainerID, err := handlers.PathUUID(r, "trainerId")
	if err != nil {
		h.logger.Warn("DELETE /admin/trainers/{id} - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	if err := h.service.Deactivate(r.Context(), userID, trainerID); err != nil {
		h.respondServiceError(w, "DELETE /admin/trainers/{id}", err)
		return
	}

	h.logger.Info("DELETE /admin/trainers/{id} - Trainer deactivated: trainer_id=%s", trainerID)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, trainers.ErrInvalidInput):
		h.logger.Warn("%s - Invalid data: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidData)
	case errors.Is(err, trainers.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: %v", route, err)
		handlers.RespondForbidden(w, msgForbidden)
	case errors.Is(err, trainers.ErrTrainerNotFound):
		handlers.RespondNotFound(w, msgTrainerNotFound)
	default:
		h.logger.Error("%s - Service error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}

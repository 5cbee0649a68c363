package lessons

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBooking/internal/service/lessons"
	"github.com/m04kA/SMC-FieldBooking/internal/service/lessons/models"
	createLesson "github.com/m04kA/SMC-FieldBooking/internal/usecase/create_lesson"
)

const (
	msgUnauthorized       = "utilizator neautentificat"
	msgInvalidFieldID     = "ID-ul terenului este invalid"
	msgInvalidLessonID    = "ID-ul lecției este invalid"
	msgInvalidRequestBody = "corpul cererii este invalid"
	msgInvalidDate        = "data lecției este invalidă, format așteptat YYYY-MM-DD"
	msgInvalidData        = "datele lecției sunt invalide"
	msgPastDate           = "nu se poate programa o lecție în trecut"
	msgFieldNotFound      = "terenul nu a fost găsit"
	msgFieldBlocked       = "terenul este blocat"
	msgTrainerNotFound    = "antrenorul nu a fost găsit"
	msgCourtNotFound      = "terenul (court) selectat nu a fost găsit"
	msgLessonNotFound     = "lecția nu a fost găsită"
	msgForbidden          = "acces interzis"
	msgSlotNotAvailable   = "intervalul selectat nu este disponibil"
)

type Handler struct {
	useCase CreateLessonUseCase
	service LessonService
	logger  Logger
}

func NewHandler(useCase CreateLessonUseCase, service LessonService, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/admin/fields/{fieldId}/lessons
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	fieldID, err := handlers.PathUUID(r, "fieldId")
	if err != nil {
		h.logger.Warn("POST /admin/fields/{id}/lessons - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	var req CreateLessonRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/fields/{id}/lessons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, fieldID)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *createLesson.ConflictError
		var blocked *createLesson.BlockedError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /admin/fields/{id}/lessons - Slot not available: field_id=%s, reason=%s",
				fieldID, conflict.Conflict.Reason)
			msg := msgSlotNotAvailable
			if conflict.Conflict.Message != "" {
				msg = conflict.Conflict.Message
			}
			handlers.RespondConflict(w, msg, string(conflict.Conflict.Reason))

		case errors.As(err, &blocked):
			h.logger.Warn("POST /admin/fields/{id}/lessons - Field blocked: field_id=%s", fieldID)
			handlers.RespondLocked(w, msgFieldBlocked, blocked.Reason, blocked.BlockedUntil)

		case errors.Is(err, createLesson.ErrAccessDenied):
			h.logger.Warn("POST /admin/fields/{id}/lessons - Access denied: field_id=%s, user_id=%s", fieldID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createLesson.ErrFieldNotFound):
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, createLesson.ErrTrainerNotFound):
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, createLesson.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createLesson.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createLesson.ErrInvalidInput):
			h.logger.Warn("POST /admin/fields/{id}/lessons - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, createLesson.ErrSlotNotAvailable):
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /admin/fields/{id}/lessons - Failed to create lesson: field_id=%s, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/fields/{id}/lessons - Lesson created: lesson_id=%s, field_id=%s",
		result.Lesson.ID, fieldID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainLesson(result.Lesson))
}

// Delete DELETE /api/v1/admin/lessons/{lessonId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	lessonID, err := handlers.PathUUID(r, "lessonId")
	if err != nil {
		h.logger.Warn("DELETE /admin/lessons/{id} - Invalid lesson ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLessonID)
		return
	}

	if err := h.service.Delete(r.Context(), userID, lessonID); err != nil {
		switch {
		case errors.Is(err, lessons.ErrLessonNotFound):
			handlers.RespondNotFound(w, msgLessonNotFound)

		case errors.Is(err, lessons.ErrAccessDenied):
			h.logger.Warn("DELETE /admin/lessons/{id} - Access denied: lesson_id=%s, user_id=%s", lessonID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /admin/lessons/{id} - Failed to delete lesson: lesson_id=%s, error=%v", lessonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/lessons/{id} - Lesson deleted: lesson_id=%s", lessonID)
	handlers.RespondNoContent(w)
}

package get_day_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBooking/internal/api/middleware"
	getDaySchedule "github.com/m04kA/SMC-FieldBooking/internal/usecase/get_day_schedule"
)

const (
	msgUnauthorized   = "utilizator neautentificat"
	msgInvalidFieldID = "ID-ul terenului este invalid"
	msgMissingDate    = "data este obligatorie"
	msgInvalidDate    = "data este invalidă, format așteptat YYYY-MM-DD"
	msgFieldNotFound  = "terenul nu a fost găsit"
	msgForbidden      = "acces interzis"
)

type Handler struct {
	useCase GetDayScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/fields/{fieldId}/schedule?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	fieldID, err := handlers.PathUUID(r, "fieldId")
	if err != nil {
		h.logger.Warn("GET /admin/fields/{id}/schedule - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	date, ok, err := handlers.QueryDate(r, "date")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if !ok {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDaySchedule.Request{
		UserID:  userID,
		FieldID: fieldID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDaySchedule.ErrAccessDenied):
			h.logger.Warn("GET /admin/fields/{id}/schedule - Access denied: field_id=%s, user_id=%s", fieldID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, getDaySchedule.ErrFieldNotFound):
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, getDaySchedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /admin/fields/{id}/schedule - Failed to load schedule: field_id=%s, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-FieldBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-FieldBooking/internal/usecase/get_available_slots"
)

const (
	msgInvalidFieldID  = "ID-ul terenului este invalid"
	msgMissingDate     = "data este obligatorie"
	msgInvalidDate     = "data este invalidă, format așteptat YYYY-MM-DD"
	msgInvalidDuration = "durata trebuie să fie 60, 90 sau 120 de minute"
	msgPastDate        = "data selectată este în trecut"
	msgDateTooFar      = "data selectată este prea departe în viitor"
	msgFieldNotFound   = "terenul nu a fost găsit"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}/availability
// Query params: date (required, YYYY-MM-DD), duration (optional, minutes)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fieldID, err := handlers.PathUUID(r, "fieldId")
	if err != nil {
		h.logger.Warn("GET /fields/{id}/availability - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	date, ok, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /fields/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if !ok {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	duration := 0
	if raw := handlers.QueryString(r, "duration"); raw != nil {
		duration, err = strconv.Atoi(*raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		FieldID:         fieldID,
		Date:            date,
		DurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrFieldNotFound):
			h.logger.Warn("GET /fields/{id}/availability - Field not found: field_id=%s", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidFieldID)

		default:
			h.logger.Error("GET /fields/{id}/availability - Failed to get slots: field_id=%s, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /fields/{id}/availability - Slots retrieved: field_id=%s, date=%s, count=%d",
		fieldID, date.Format("2006-01-02"), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

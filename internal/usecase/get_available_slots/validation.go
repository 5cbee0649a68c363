package get_available_slots

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FieldID == uuid.Nil {
		return fmt.Errorf("%w: fieldID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes != 0 && !domain.IsAllowedDuration(req.DurationMinutes) {
		return fmt.Errorf("%w: duration must be one of %v", ErrInvalidDuration, domain.AllowedDurations)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом и не дальше лимита правил
func validateDate(requestDate time.Time, now time.Time, rules *domain.BookingRules) error {
	if domain.DateOnly(requestDate).Before(domain.DateOnly(now)) {
		return ErrInvalidDate
	}

	lastDate, limited := rules.LastBookableDate(now)
	if limited && domain.DateOnly(requestDate).After(lastDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, rules.AdvanceBookingDays)
	}

	return nil
}

package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	"github.com/m04kA/SMC-FieldBooking/pkg/types"
)

// validateRequest валидирует входные данные запроса и возвращает время окончания
func validateRequest(req *Request) (types.TimeString, error) {
	if req.UserID == uuid.Nil {
		return types.TimeString{}, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.FieldID == uuid.Nil {
		return types.TimeString{}, fmt.Errorf("%w: fieldID is required", ErrInvalidInput)
	}

	if req.Source != domain.SourceUser && req.Source != domain.SourceAdmin {
		return types.TimeString{}, fmt.Errorf("%w: unknown source %q", ErrInvalidInput, req.Source)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return types.TimeString{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Валидируем время начала
	if err := req.StartTime.Validate(); err != nil {
		return types.TimeString{}, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if !domain.IsAllowedDuration(req.DurationMinutes) {
		return types.TimeString{}, fmt.Errorf("%w: duration must be one of %v", ErrInvalidInput, domain.AllowedDurations)
	}

	// Бронирование не переходит через полночь
	endTime, err := req.StartTime.AddMinutes(req.DurationMinutes)
	if err != nil {
		return types.TimeString{}, fmt.Errorf("%w: booking must end by 24:00", ErrInvalidInput)
	}

	if req.IsPhoneBooking() {
		if req.CustomerName == nil || strings.TrimSpace(*req.CustomerName) == "" {
			return types.TimeString{}, fmt.Errorf("%w: customerName is required", ErrInvalidInput)
		}
		if len(*req.CustomerName) > domain.MaxNameLength {
			return types.TimeString{}, fmt.Errorf("%w: customerName is too long", ErrInvalidInput)
		}
		if req.CustomerPhone == nil || strings.TrimSpace(*req.CustomerPhone) == "" {
			return types.TimeString{}, fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return types.TimeString{}, fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return endTime, nil
}

// validateDate проверяет, что дата не в прошлом и не дальше лимита правил
func validateDate(bookingDate time.Time, now time.Time, rules *domain.BookingRules) error {
	if domain.DateOnly(bookingDate).Before(domain.DateOnly(now)) {
		return ErrInvalidDate
	}

	lastDate, limited := rules.LastBookableDate(now)
	if limited && domain.DateOnly(bookingDate).After(lastDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, rules.AdvanceBookingDays)
	}

	return nil
}

// validateBookingTime проверяет, что бронирование на сегодня не нарушает minBookingNoticeMinutes.
// Граница та же, что у сетки слотов.
func validateBookingTime(
	bookingDate time.Time,
	startTime types.TimeString,
	now time.Time,
	rules *domain.BookingRules,
) error {
	earliest, ok := rules.EarliestStart(bookingDate, now)
	if !ok {
		return nil
	}

	if startTime.IsBefore(earliest) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, rules.MinBookingNoticeMinutes)
	}

	return nil
}

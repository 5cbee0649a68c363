package create_booking

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-FieldBooking/internal/availability"
)

// msgSlotTaken сообщение, когда время заняли параллельно, между проверкой и вставкой
const msgSlotTaken = "Intervalul a fost rezervat între timp"

var (
	// ErrFieldNotFound возвращается, когда поле не найдено или неактивно
	ErrFieldNotFound = errors.New("create_booking: field not found")

	// ErrFieldBlocked возвращается, когда поле заблокировано на дату бронирования
	ErrFieldBlocked = errors.New("create_booking: field is blocked")

	// ErrCourtRequired возвращается, когда у поля есть корты, а корт не выбран
	ErrCourtRequired = errors.New("create_booking: court is required")

	// ErrCourtNotFound возвращается, когда корт не найден среди активных кортов поля
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrAccessDenied возвращается, когда телефонное бронирование создает не администратор поля
	ErrAccessDenied = errors.New("create_booking: access denied")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrTooLateToBook возвращается, когда попытка забронировать слот нарушает minBookingNoticeMinutes
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с занятостью
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError конфликт с существующей занятостью, блокировкой корта или часами работы
type ConflictError struct {
	Conflict *availability.Conflict
}

func (e *ConflictError) Error() string {
	return ErrSlotNotAvailable.Error() + ": " + e.Conflict.Error()
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotNotAvailable
}

// BlockedError детали блокировки поля; errors.Is(err, ErrFieldBlocked) == true
type BlockedError struct {
	Reason       *string
	BlockedUntil *time.Time
}

func (e *BlockedError) Error() string {
	return ErrFieldBlocked.Error()
}

func (e *BlockedError) Unwrap() error {
	return ErrFieldBlocked
}

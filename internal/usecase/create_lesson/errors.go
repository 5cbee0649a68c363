package create_lesson

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-FieldBooking/internal/availability"
)

var (
	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("create_lesson: field not found")

	// ErrTrainerNotFound возвращается, когда тренер не найден, неактивен или с другого поля
	ErrTrainerNotFound = errors.New("create_lesson: trainer not found")

	// ErrFieldBlocked возвращается, когда поле заблокировано на дату урока
	ErrFieldBlocked = errors.New("create_lesson: field is blocked")

	// ErrCourtNotFound возвращается, когда корт не найден среди активных кортов поля
	ErrCourtNotFound = errors.New("create_lesson: court not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав администратора поля
	ErrAccessDenied = errors.New("create_lesson: access denied")

	// ErrInvalidDate возвращается, когда дата урока в прошлом
	ErrInvalidDate = errors.New("create_lesson: invalid lesson date")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с занятостью
	ErrSlotNotAvailable = errors.New("create_lesson: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_lesson: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_lesson: internal error")
)

// ConflictError конфликт урока с существующей занятостью
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

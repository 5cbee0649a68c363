package get_available_slots

import "errors"

var (
	// ErrFieldNotFound возвращается, когда поле не найдено или неактивно
	ErrFieldNotFound = errors.New("get_available_slots: field not found")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrInvalidDuration возвращается при недопустимой длительности
	ErrInvalidDuration = errors.New("get_available_slots: invalid duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)

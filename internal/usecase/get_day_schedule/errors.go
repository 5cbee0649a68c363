package get_day_schedule

import "errors"

var (
	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("get_day_schedule: field not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав администратора поля
	ErrAccessDenied = errors.New("get_day_schedule: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_day_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_schedule: internal error")
)

package schedule

import "errors"

var (
	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("schedule: field not found")

	// ErrInternal возвращается при ошибках чтения расписания
	ErrInternal = errors.New("schedule: internal error")
)

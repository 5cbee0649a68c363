package fields

import (
	"errors"
	"time"
)

var (
	// ErrFieldNotFound возвращается, когда поле не найдено или неактивно
	ErrFieldNotFound = errors.New("field not found")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("court not found")

	// ErrFieldBlocked возвращается, когда поле заблокировано на сегодня
	ErrFieldBlocked = errors.New("field is blocked")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

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

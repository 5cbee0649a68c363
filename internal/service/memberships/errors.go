package memberships

import "errors"

var (
	// ErrMembershipNotFound возвращается, когда абонемент не найден
	ErrMembershipNotFound = errors.New("membership not found")

	// ErrCourtNotFound возвращается, когда корт не найден или принадлежит другому полю
	ErrCourtNotFound = errors.New("court not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

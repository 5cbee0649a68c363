package access

import "errors"

var (
	// ErrAccessDenied возвращается, когда пользователь не администратор поля
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("access: internal error")
)

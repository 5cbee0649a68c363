package access

import (
	"context"

	"github.com/google/uuid"
)

// ProfileRepository интерфейс репозитория профилей и владельцев полей
type ProfileRepository interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
	IsOwner(ctx context.Context, userID, fieldID uuid.UUID) (bool, error)
	ListFieldIDsByOwner(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

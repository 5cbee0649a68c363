package lessons

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
)

// LessonRepository интерфейс репозитория уроков
type LessonRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AccessChecker проверка прав администратора поля
type AccessChecker interface {
	CheckFieldAdmin(ctx context.Context, userID, fieldID uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

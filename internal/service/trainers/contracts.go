package trainers

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
)

// TrainerRepository интерфейс репозитория тренеров
type TrainerRepository interface {
	Create(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Trainer, error)
	ListActiveByField(ctx context.Context, fieldID uuid.UUID) ([]*domain.Trainer, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
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

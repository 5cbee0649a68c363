package rules

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
)

// RulesRepository интерфейс репозитория правил бронирования
type RulesRepository interface {
	GetByFieldID(ctx context.Context, fieldID uuid.UUID) (*domain.BookingRules, error)
	Upsert(ctx context.Context, rules *domain.BookingRules) (*domain.BookingRules, error)
}

// FieldRepository интерфейс для проверки существования поля
type FieldRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Field, error)
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

package memberships

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
)

// MembershipRepository интерфейс репозитория абонементов
type MembershipRepository interface {
	Create(ctx context.Context, m *domain.Membership) (*domain.Membership, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Membership, error)
	ListByField(ctx context.Context, fieldID uuid.UUID) ([]*domain.Membership, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CourtRepository интерфейс для проверки корта
type CourtRepository interface {
	GetCourt(ctx context.Context, courtID uuid.UUID) (*domain.Court, error)
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

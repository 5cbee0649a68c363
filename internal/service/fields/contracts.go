package fields

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
)

// FieldRepository интерфейс репозитория полей
type FieldRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Field, error)
	ListActive(ctx context.Context, sport *string) ([]*domain.Field, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Field, error)
	UpdateBlock(ctx context.Context, fieldID uuid.UUID, block domain.Block) error
	ListCourts(ctx context.Context, fieldID uuid.UUID, onlyActive bool) ([]*domain.Court, error)
	GetCourt(ctx context.Context, courtID uuid.UUID) (*domain.Court, error)
	UpdateCourtBlock(ctx context.Context, courtID uuid.UUID, block domain.Block) error
	ListAmenities(ctx context.Context, fieldID uuid.UUID) ([]*domain.Amenity, error)
}

// AccessChecker проверка прав администратора поля
type AccessChecker interface {
	CheckFieldAdmin(ctx context.Context, userID, fieldID uuid.UUID) error
	OwnedFieldIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

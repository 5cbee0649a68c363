package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
)

// FieldRepository поле и его корты
type FieldRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Field, error)
	ListCourts(ctx context.Context, fieldID uuid.UUID, onlyActive bool) ([]*domain.Court, error)
}

// BookingRepository бронирования поля
type BookingRepository interface {
	GetByFieldWithFilter(ctx context.Context, filter domain.FieldBookingsFilter) ([]*domain.Booking, error)
}

// LessonRepository занятия с тренером
type LessonRepository interface {
	GetByFieldAndDate(ctx context.Context, fieldID uuid.UUID, date time.Time) ([]*domain.Lesson, error)
}

// MembershipRepository абонементы
type MembershipRepository interface {
	ListActiveOn(ctx context.Context, fieldID uuid.UUID, date time.Time) ([]*domain.Membership, error)
}

package get_day_schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/availability"
	"github.com/m04kA/SMC-FieldBooking/internal/domain"
)

// Request модель запроса расписания дня
type Request struct {
	UserID  uuid.UUID // Администратор поля
	FieldID uuid.UUID // ID поля
	Date    time.Time // Дата (без времени)
}

// Response расписание дня: занятость и сетка слотов для длительности по умолчанию
type Response struct {
	Field           *domain.Field
	Courts          []*domain.Court
	Date            time.Time
	Blocked         bool
	DurationMinutes int
	Bookings        []*domain.Booking
	Lessons         []*domain.Lesson
	Memberships     []*domain.Membership
	Slots           []availability.SlotAvailability
}

package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	"github.com/m04kA/SMC-FieldBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID          uuid.UUID            // Пользователь или администратор (для телефонного бронирования)
	FieldID         uuid.UUID            // ID поля
	CourtID         *uuid.UUID           // ID корта (обязателен, если у поля есть корты)
	Date            time.Time            // Дата бронирования (без времени)
	StartTime       types.TimeString     // Время начала (например, "18:00")
	DurationMinutes int                  // 60, 90 или 120
	Source          domain.BookingSource // user или admin

	// Только для телефонного бронирования
	CustomerName  *string
	CustomerPhone *string
	Notes         *string
}

// IsPhoneBooking возвращает true для бронирования, созданного администратором
func (r *Request) IsPhoneBooking() bool {
	return r.Source == domain.SourceAdmin
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}

package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	"github.com/m04kA/SMC-FieldBooking/internal/service/schedule"
)

// ScheduleLoader загрузчик расписания поля на дату
type ScheduleLoader interface {
	Load(ctx context.Context, fieldID uuid.UUID, date time.Time) (*schedule.Schedule, error)
}

// RulesProvider действующие правила бронирования поля
type RulesProvider interface {
	Effective(ctx context.Context, fieldID uuid.UUID) (*domain.BookingRules, error)
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

package get_day_schedule

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

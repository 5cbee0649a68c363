package create_lesson

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	"github.com/m04kA/SMC-FieldBooking/pkg/types"
)

// Request модель запроса на создание урока
type Request struct {
	UserID    uuid.UUID        // Администратор поля
	FieldID   uuid.UUID        // ID поля
	TrainerID uuid.UUID        // ID тренера этого поля
	CourtID   *uuid.UUID       // nil - урок занимает всё поле
	Date      time.Time        // Дата урока (без времени)
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время окончания
	Notes     *string
}

// Response модель ответа с созданным уроком
type Response struct {
	Lesson *domain.Lesson
}

package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/availability"
	"github.com/m04kA/SMC-FieldBooking/pkg/types"
)

// Request модель запроса на получение сетки слотов
type Request struct {
	FieldID         uuid.UUID // ID поля
	Date            time.Time // Дата (без времени)
	DurationMinutes int       // 0 - длительность по умолчанию из правил поля
}

// Response модель ответа с сеткой слотов
type Response struct {
	FieldID         uuid.UUID
	Date            time.Time
	DurationMinutes int
	SlotStepMinutes int
	Blocked         bool       // Поле заблокировано на дату - слотов нет
	BlockedReason   *string    // Причина блокировки
	BlockedUntil    *time.Time // Дата окончания блокировки (nil - бессрочно)
	Slots           []Slot
}

// Slot слот сетки с ценой
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
	Price     float64             // Цена с учетом скидки за позднее время
	Reason    availability.Reason // Для поля без кортов
	Label     string              // Для поля без кортов
	Courts    []availability.CourtAvailability
}

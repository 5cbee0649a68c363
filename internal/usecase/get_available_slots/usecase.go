package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	"github.com/m04kA/SMC-FieldBooking/internal/service/schedule"
	"github.com/m04kA/SMC-FieldBooking/pkg/types"
)

// UseCase use case для получения сетки слотов поля на дату
type UseCase struct {
	loader       ScheduleLoader
	rules        RulesProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	loader ScheduleLoader,
	rules RulesProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		loader:       loader,
		rules:        rules,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: field=%s, date=%s, duration=%d",
		req.FieldID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Правила бронирования поля
	rules, err := uc.rules.Effective(ctx, req.FieldID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get rules field=%s: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get rules: %v", ErrInternal, err)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = rules.DefaultDurationMinutes
	}

	// 4. Валидация даты с учетом правил
	if err := validateDate(req.Date, now, rules); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 5. Расписание дня
	sched, err := uc.loader.Load(ctx, req.FieldID, req.Date)
	if err != nil {
		if errors.Is(err, schedule.ErrFieldNotFound) {
			uc.logger.Warn("GetAvailableSlots: field=%s not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to load schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}
	field := sched.Day.Field
	if !field.IsActive {
		uc.logger.Warn("GetAvailableSlots: field=%s is inactive", req.FieldID)
		return nil, ErrFieldNotFound
	}

	resp := &Response{
		FieldID:         req.FieldID,
		Date:            sched.Day.Date,
		DurationMinutes: duration,
		SlotStepMinutes: rules.SlotStepMinutes,
		Slots:           []Slot{},
	}

	// 6. Заблокированное поле - пустая сетка
	if sched.Day.FieldBlocked() {
		uc.logger.Info("GetAvailableSlots: field=%s is blocked on %s", req.FieldID, req.Date.Format(domain.DateFormat))
		resp.Blocked = true
		resp.BlockedReason = field.Block.Reason
		resp.BlockedUntil = field.Block.BlockedUntil
		return resp, nil
	}

	// 7. Сетка слотов с ценой
	// На сегодня слоты раньше now + notice не показываются
	var notBefore *types.TimeString
	if earliest, ok := rules.EarliestStart(req.Date, now); ok {
		notBefore = &earliest
	}
	for _, s := range sched.Day.Slots(rules.SlotStepMinutes, duration, notBefore) {
		resp.Slots = append(resp.Slots, Slot{
			StartTime: s.Start,
			EndTime:   s.End,
			Available: s.Available,
			Price:     rules.PriceFor(field.PricePerHour, s.Start, duration),
			Reason:    s.Reason,
			Label:     s.Label,
			Courts:    s.Courts,
		})
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for field=%s, date=%s",
		len(resp.Slots), req.FieldID, req.Date.Format(domain.DateFormat))

	return resp, nil
}

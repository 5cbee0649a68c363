package get_day_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	"github.com/m04kA/SMC-FieldBooking/internal/service/access"
	"github.com/m04kA/SMC-FieldBooking/internal/service/schedule"
)

// UseCase use case для расписания дня в панели администратора
type UseCase struct {
	loader        ScheduleLoader
	rules         RulesProvider
	accessChecker AccessChecker
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	loader ScheduleLoader,
	rules RulesProvider,
	accessChecker AccessChecker,
	logger Logger,
) *UseCase {
	return &UseCase{
		loader:        loader,
		rules:         rules,
		accessChecker: accessChecker,
		logger:        logger,
	}
}

// Execute выполняет use case получения расписания дня.
// Администратор видит и прошедшие даты, ограничения правил к нему не применяются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: user=%s, field=%s, date=%s",
		req.UserID, req.FieldID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.FieldID == uuid.Nil || req.Date.IsZero() {
		uc.logger.Warn("GetDaySchedule: fieldID and date are required")
		return nil, fmt.Errorf("%w: fieldID and date are required", ErrInvalidInput)
	}

	// 2. Права администратора
	if err := uc.accessChecker.CheckFieldAdmin(ctx, req.UserID, req.FieldID); err != nil {
		if errors.Is(err, access.ErrAccessDenied) {
			return nil, ErrAccessDenied
		}
		uc.logger.Error("GetDaySchedule: access check failed: %v", err)
		return nil, fmt.Errorf("%w: access check: %v", ErrInternal, err)
	}

	// 3. Правила поля
	rules, err := uc.rules.Effective(ctx, req.FieldID)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get rules: %v", ErrInternal, err)
	}

	// 4. Расписание дня
	sched, err := uc.loader.Load(ctx, req.FieldID, req.Date)
	if err != nil {
		if errors.Is(err, schedule.ErrFieldNotFound) {
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("GetDaySchedule: failed to load schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}
	day := sched.Day

	resp := &Response{
		Field:           day.Field,
		Courts:          day.Courts,
		Date:            day.Date,
		Blocked:         day.FieldBlocked(),
		DurationMinutes: rules.DefaultDurationMinutes,
		Bookings:        sched.Bookings,
		Lessons:         sched.Lessons,
		Memberships:     sched.Memberships,
		Slots:           day.Slots(rules.SlotStepMinutes, rules.DefaultDurationMinutes, nil),
	}

	uc.logger.Info("GetDaySchedule: field=%s, bookings=%d, lessons=%d, memberships=%d",
		req.FieldID, len(resp.Bookings), len(resp.Lessons), len(resp.Memberships))

	return resp, nil
}

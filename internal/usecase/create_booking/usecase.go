package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FieldBooking/internal/availability"
	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	bookingStorage "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-FieldBooking/internal/service/access"
	"github.com/m04kA/SMC-FieldBooking/internal/service/schedule"
	"github.com/m04kA/SMC-FieldBooking/pkg/ptr"
)

// UseCase use case для создания бронирования (пользователем или администратором по телефону)
type UseCase struct {
	bookingRepo   BookingRepository
	loader        ScheduleLoader
	rules         RulesProvider
	accessChecker AccessChecker
	txManager     TransactionManager
	metrics       Metrics
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	loader ScheduleLoader,
	rules RulesProvider,
	accessChecker AccessChecker,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		loader:        loader,
		rules:         rules,
		accessChecker: accessChecker,
		txManager:     txManager,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка конфликтов и вставка выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, field=%s, court=%v, date=%s, time=%s, duration=%d, source=%s",
		req.UserID, req.FieldID, req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime,
		req.DurationMinutes, req.Source)

	// 1. Валидация входных данных
	endTime, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Телефонное бронирование - только администратор поля
	if req.IsPhoneBooking() {
		if err := uc.accessChecker.CheckFieldAdmin(ctx, req.UserID, req.FieldID); err != nil {
			if errors.Is(err, access.ErrAccessDenied) {
				uc.logger.Warn("CreateBooking: user=%s is not admin of field=%s", req.UserID, req.FieldID)
				return nil, ErrAccessDenied
			}
			uc.logger.Error("CreateBooking: access check failed: %v", err)
			return nil, fmt.Errorf("%w: access check: %v", ErrInternal, err)
		}
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Правила бронирования поля
	rules, err := uc.rules.Effective(ctx, req.FieldID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get rules field=%s: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get rules: %v", ErrInternal, err)
	}

	// 5. Валидация даты и времени. Администратор не ограничен лимитами правил.
	if req.IsPhoneBooking() {
		if domain.DateOnly(req.Date).Before(domain.DateOnly(now)) {
			uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
			return nil, ErrInvalidDate
		}
	} else {
		if err := validateDate(req.Date, now, rules); err != nil {
			uc.logger.Warn("CreateBooking: date validation failed: %v", err)
			return nil, err
		}
		if err := validateBookingTime(req.Date, req.StartTime, now, rules); err != nil {
			uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
			return nil, err
		}
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Расписание дня с блокировкой прочитанных строк
		sched, err := uc.loader.Load(txCtx, req.FieldID, req.Date)
		if err != nil {
			if errors.Is(err, schedule.ErrFieldNotFound) {
				return ErrFieldNotFound
			}
			// %w дважды: ошибка сериализации должна дойти до txmanager
			return fmt.Errorf("%w: failed to load schedule: %w", ErrInternal, err)
		}
		day := sched.Day
		field := day.Field

		// 6.2. Поле активно и не заблокировано
		if !field.IsActive {
			return ErrFieldNotFound
		}
		if day.FieldBlocked() {
			return &BlockedError{Reason: field.Block.Reason, BlockedUntil: field.Block.BlockedUntil}
		}

		// 6.3. Корт обязателен, если у поля есть корты, и должен принадлежать полю
		if day.HasCourts() && req.CourtID == nil {
			return ErrCourtRequired
		}
		if req.CourtID != nil {
			if _, ok := day.Court(*req.CourtID); !ok {
				return ErrCourtNotFound
			}
		}

		// 6.4. Проверяем конфликты
		if conflict := day.Check(req.CourtID, req.StartTime, endTime); conflict != nil {
			uc.logger.Warn("CreateBooking: conflict on field=%s: %v", req.FieldID, conflict)
			uc.metrics.IncBookingConflict(string(conflict.Reason))
			return &ConflictError{Conflict: conflict}
		}

		// 6.5. Создаем бронирование с ценой по правилам поля
		booking := &domain.Booking{
			FieldID:         req.FieldID,
			CourtID:         req.CourtID,
			UserID:          req.UserID,
			BookingDate:     day.Date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			DurationMinutes: req.DurationMinutes,
			PricePerHour:    field.PricePerHour,
			TotalPrice:      rules.PriceFor(field.PricePerHour, req.StartTime, req.DurationMinutes),
			Status:          domain.StatusConfirmed,
			PaymentStatus:   domain.PaymentUnpaid,
			Source:          req.Source,
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingStorage.ErrSlotTaken) {
				uc.metrics.IncBookingConflict(string(availability.ReasonBooking))
				return &ConflictError{Conflict: &availability.Conflict{
					Reason:  availability.ReasonBooking,
					Message: msgSlotTaken,
				}}
			}
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		created.FieldName = field.Name
		if req.CourtID != nil {
			if court, ok := day.Court(*req.CourtID); ok {
				created.CourtName = ptr.Ptr(court.Name)
			}
		}
		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateBooking: %v", err)
		} else {
			uc.logger.Warn("CreateBooking: rejected: %v", err)
		}
		return nil, err
	}

	uc.metrics.IncBookingCreated(string(req.Source))
	uc.logger.Info("CreateBooking: successfully created booking id=%s, price=%.2f", result.ID, result.TotalPrice)

	return &Response{Booking: result}, nil
}

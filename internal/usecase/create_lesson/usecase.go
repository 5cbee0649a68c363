package create_lesson

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	trainerRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/trainer"
	"github.com/m04kA/SMC-FieldBooking/internal/service/access"
	"github.com/m04kA/SMC-FieldBooking/internal/service/schedule"
)

// UseCase use case для создания урока с тренером
type UseCase struct {
	lessonRepo    LessonRepository
	trainerRepo   TrainerRepository
	loader        ScheduleLoader
	accessChecker AccessChecker
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	lessonRepo LessonRepository,
	trainerRepo TrainerRepository,
	loader ScheduleLoader,
	accessChecker AccessChecker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		lessonRepo:    lessonRepo,
		trainerRepo:   trainerRepo,
		loader:        loader,
		accessChecker: accessChecker,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания урока.
// Урок проверяется на конфликты так же, как бронирование.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateLesson: user=%s, field=%s, trainer=%s, court=%v, date=%s, %s-%s",
		req.UserID, req.FieldID, req.TrainerID, req.CourtID, req.Date.Format(domain.DateFormat),
		req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateLesson: validation failed: %v", err)
		return nil, err
	}

	// 2. Права администратора
	if err := uc.accessChecker.CheckFieldAdmin(ctx, req.UserID, req.FieldID); err != nil {
		if errors.Is(err, access.ErrAccessDenied) {
			uc.logger.Warn("CreateLesson: user=%s is not admin of field=%s", req.UserID, req.FieldID)
			return nil, ErrAccessDenied
		}
		uc.logger.Error("CreateLesson: access check failed: %v", err)
		return nil, fmt.Errorf("%w: access check: %v", ErrInternal, err)
	}

	// 3. Дата не в прошлом
	if domain.DateOnly(req.Date).Before(domain.DateOnly(uc.timeProvider.Now())) {
		uc.logger.Warn("CreateLesson: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 4. Тренер активен и работает на этом поле
	trainer, err := uc.trainerRepo.GetByID(ctx, req.TrainerID)
	if err != nil {
		if errors.Is(err, trainerRepo.ErrTrainerNotFound) {
			uc.logger.Warn("CreateLesson: trainer=%s not found", req.TrainerID)
			return nil, ErrTrainerNotFound
		}
		uc.logger.Error("CreateLesson: failed to get trainer=%s: %v", req.TrainerID, err)
		return nil, fmt.Errorf("%w: failed to get trainer: %v", ErrInternal, err)
	}
	if !trainer.IsActive || trainer.FieldID != req.FieldID {
		uc.logger.Warn("CreateLesson: trainer=%s is inactive or belongs to another field", req.TrainerID)
		return nil, ErrTrainerNotFound
	}

	var result *domain.Lesson

	// 5. Проверка конфликтов и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		sched, err := uc.loader.Load(txCtx, req.FieldID, req.Date)
		if err != nil {
			if errors.Is(err, schedule.ErrFieldNotFound) {
				return ErrFieldNotFound
			}
			return fmt.Errorf("%w: failed to load schedule: %w", ErrInternal, err)
		}
		day := sched.Day

		if day.FieldBlocked() {
			block := day.Field.Block
			uc.logger.Warn("CreateLesson: field=%s is blocked on %s", req.FieldID, day.Date.Format(domain.DateFormat))
			return &BlockedError{Reason: block.Reason, BlockedUntil: block.BlockedUntil}
		}

		if req.CourtID != nil {
			if _, ok := day.Court(*req.CourtID); !ok {
				return ErrCourtNotFound
			}
		}

		if conflict := day.Check(req.CourtID, req.StartTime, req.EndTime); conflict != nil {
			uc.logger.Warn("CreateLesson: conflict on field=%s: %v", req.FieldID, conflict)
			return &ConflictError{Conflict: conflict}
		}

		// Данные тренера денормализуются для расписания
		lesson := &domain.Lesson{
			FieldID:         req.FieldID,
			CourtID:         req.CourtID,
			TrainerID:       trainer.ID,
			TrainerName:     trainer.Name,
			TrainerPhone:    trainer.Phone,
			LessonDate:      day.Date,
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			DurationMinutes: req.EndTime.Sub(req.StartTime),
			Notes:           req.Notes,
			CreatedBy:       req.UserID,
		}

		created, err := uc.lessonRepo.Create(txCtx, lesson)
		if err != nil {
			return fmt.Errorf("%w: failed to create lesson: %w", ErrInternal, err)
		}
		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateLesson: %v", err)
		} else {
			uc.logger.Warn("CreateLesson: rejected: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateLesson: successfully created lesson id=%s", result.ID)
	return &Response{Lesson: result}, nil
}

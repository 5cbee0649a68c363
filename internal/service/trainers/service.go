package trainers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	trainerRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/trainer"
	"github.com/m04kA/SMC-FieldBooking/internal/service/access"
	"github.com/m04kA/SMC-FieldBooking/internal/service/trainers/models"
)

// Service сервис управления тренерами поля
type Service struct {
	trainerRepo   TrainerRepository
	accessChecker AccessChecker
	logger        Logger
}

// NewService создает новый экземпляр сервиса тренеров
func NewService(trainerRepo TrainerRepository, accessChecker AccessChecker, logger Logger) *Service {
	return &Service{
		trainerRepo:   trainerRepo,
		accessChecker: accessChecker,
		logger:        logger,
	}
}

// List возвращает активных тренеров поля
func (s *Service) List(ctx context.Context, userID, fieldID uuid.UUID) (*models.TrainerListResponse, error) {
	s.logger.Info("List: trainers of field=%s by user=%s", fieldID, userID)

	if err := s.checkFieldAdmin(ctx, userID, fieldID); err != nil {
		return nil, err
	}

	trainers, err := s.trainerRepo.ListActiveByField(ctx, fieldID)
	if err != nil {
		s.logger.Error("List: repository error field=%s: %v", fieldID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTrainerList(trainers), nil
}

// Create добавляет тренера к полю
func (s *Service) Create(ctx context.Context, req *models.CreateTrainerRequest) (*models.TrainerResponse, error) {
	s.logger.Info("Create: trainer %q for field=%s by user=%s", req.Name, req.FieldID, req.UserID)

	if err := req.Validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.checkFieldAdmin(ctx, req.UserID, req.FieldID); err != nil {
		return nil, err
	}

	trainer, err := s.trainerRepo.Create(ctx, req.ToDomainTrainer())
	if err != nil {
		s.logger.Error("Create: repository error field=%s: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: trainer id=%s created", trainer.ID)
	resp := models.FromDomainTrainer(trainer)
	return &resp, nil
}

// Deactivate деактивирует тренера (мягкое удаление)
func (s *Service) Deactivate(ctx context.Context, userID, trainerID uuid.UUID) error {
	s.logger.Info("Deactivate: trainer=%s by user=%s", trainerID, userID)

	trainer, err := s.trainerRepo.GetByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, trainerRepo.ErrTrainerNotFound) {
			s.logger.Warn("Deactivate: trainer=%s not found", trainerID)
			return ErrTrainerNotFound
		}
		s.logger.Error("Deactivate: repository error trainer=%s: %v", trainerID, err)
		return fmt.Errorf("%w: Deactivate - get trainer: %v", ErrInternal, err)
	}

	if err := s.checkFieldAdmin(ctx, userID, trainer.FieldID); err != nil {
		return err
	}

	if err := s.trainerRepo.Deactivate(ctx, trainerID); err != nil {
		if errors.Is(err, trainerRepo.ErrTrainerNotFound) {
			return ErrTrainerNotFound
		}
		s.logger.Error("Deactivate: repository error trainer=%s: %v", trainerID, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: trainer=%s deactivated", trainerID)
	return nil
}

func (s *Service) checkFieldAdmin(ctx context.Context, userID, fieldID uuid.UUID) error {
	err := s.accessChecker.CheckFieldAdmin(ctx, userID, fieldID)
	if err == nil {
		return nil
	}
	if errors.Is(err, access.ErrAccessDenied) {
		return ErrAccessDenied
	}
	return fmt.Errorf("%w: access check: %v", ErrInternal, err)
}

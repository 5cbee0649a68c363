package lessons

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	lessonRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/lesson"
	"github.com/m04kA/SMC-FieldBooking/internal/service/access"
)

// Service сервис управления уроками (создание - в usecase create_lesson)
type Service struct {
	lessonRepo    LessonRepository
	accessChecker AccessChecker
	logger        Logger
}

// NewService создает новый экземпляр сервиса уроков
func NewService(lessonRepo LessonRepository, accessChecker AccessChecker, logger Logger) *Service {
	return &Service{
		lessonRepo:    lessonRepo,
		accessChecker: accessChecker,
		logger:        logger,
	}
}

// Delete удаляет урок
func (s *Service) Delete(ctx context.Context, userID, lessonID uuid.UUID) error {
	s.logger.Info("Delete: lesson=%s by user=%s", lessonID, userID)

	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		if errors.Is(err, lessonRepo.ErrLessonNotFound) {
			s.logger.Warn("Delete: lesson=%s not found", lessonID)
			return ErrLessonNotFound
		}
		s.logger.Error("Delete: repository error lesson=%s: %v", lessonID, err)
		return fmt.Errorf("%w: Delete - get lesson: %v", ErrInternal, err)
	}

	if err := s.accessChecker.CheckFieldAdmin(ctx, userID, lesson.FieldID); err != nil {
		if errors.Is(err, access.ErrAccessDenied) {
			return ErrAccessDenied
		}
		return fmt.Errorf("%w: access check: %v", ErrInternal, err)
	}

	if err := s.lessonRepo.Delete(ctx, lessonID); err != nil {
		if errors.Is(err, lessonRepo.ErrLessonNotFound) {
			return ErrLessonNotFound
		}
		s.logger.Error("Delete: repository error lesson=%s: %v", lessonID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: lesson=%s deleted", lessonID)
	return nil
}

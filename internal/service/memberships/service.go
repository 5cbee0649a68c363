package memberships

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	fieldRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/field"
	membershipRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/membership"
	"github.com/m04kA/SMC-FieldBooking/internal/service/access"
	"github.com/m04kA/SMC-FieldBooking/internal/service/memberships/models"
)

// Service сервис управления абонементами
type Service struct {
	membershipRepo MembershipRepository
	courtRepo      CourtRepository
	accessChecker  AccessChecker
	logger         Logger
}

// NewService создает новый экземпляр сервиса абонементов
func NewService(
	membershipRepo MembershipRepository,
	courtRepo CourtRepository,
	accessChecker AccessChecker,
	logger Logger,
) *Service {
	return &Service{
		membershipRepo: membershipRepo,
		courtRepo:      courtRepo,
		accessChecker:  accessChecker,
		logger:         logger,
	}
}

// List возвращает абонементы поля
func (s *Service) List(ctx context.Context, userID, fieldID uuid.UUID) (*models.MembershipListResponse, error) {
	s.logger.Info("List: memberships of field=%s by user=%s", fieldID, userID)

	if err := s.checkFieldAdmin(ctx, userID, fieldID); err != nil {
		return nil, err
	}

	memberships, err := s.membershipRepo.ListByField(ctx, fieldID)
	if err != nil {
		s.logger.Error("List: repository error field=%s: %v", fieldID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMembershipList(memberships), nil
}

// Create создает абонемент
func (s *Service) Create(ctx context.Context, req *models.CreateMembershipRequest) (*models.MembershipResponse, error) {
	s.logger.Info("Create: membership %q for field=%s, day=%d, %s-%s by user=%s",
		req.MemberName, req.FieldID, req.DayOfWeek, req.StartTime, req.EndTime, req.UserID)

	// 1. Валидация входных данных
	membership, err := req.ToDomainMembership()
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Права администратора
	if err := s.checkFieldAdmin(ctx, req.UserID, req.FieldID); err != nil {
		return nil, err
	}

	// 3. Корт должен принадлежать полю
	if req.CourtID != nil {
		court, err := s.courtRepo.GetCourt(ctx, *req.CourtID)
		if err != nil {
			if errors.Is(err, fieldRepo.ErrCourtNotFound) {
				s.logger.Warn("Create: court=%s not found", *req.CourtID)
				return nil, ErrCourtNotFound
			}
			s.logger.Error("Create: failed to get court=%s: %v", *req.CourtID, err)
			return nil, fmt.Errorf("%w: Create - get court: %v", ErrInternal, err)
		}
		if court.FieldID != req.FieldID {
			s.logger.Warn("Create: court=%s belongs to field=%s, not %s", court.ID, court.FieldID, req.FieldID)
			return nil, ErrCourtNotFound
		}
	}

	// 4. Сохраняем
	created, err := s.membershipRepo.Create(ctx, membership)
	if err != nil {
		s.logger.Error("Create: repository error field=%s: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: membership id=%s created", created.ID)
	resp := models.FromDomainMembership(created)
	return &resp, nil
}

// Delete удаляет абонемент
func (s *Service) Delete(ctx context.Context, userID, membershipID uuid.UUID) error {
	s.logger.Info("Delete: membership=%s by user=%s", membershipID, userID)

	membership, err := s.membershipRepo.GetByID(ctx, membershipID)
	if err != nil {
		if errors.Is(err, membershipRepo.ErrMembershipNotFound) {
			s.logger.Warn("Delete: membership=%s not found", membershipID)
			return ErrMembershipNotFound
		}
		s.logger.Error("Delete: repository error membership=%s: %v", membershipID, err)
		return fmt.Errorf("%w: Delete - get membership: %v", ErrInternal, err)
	}

	if err := s.checkFieldAdmin(ctx, userID, membership.FieldID); err != nil {
		return err
	}

	if err := s.membershipRepo.Delete(ctx, membershipID); err != nil {
		if errors.Is(err, membershipRepo.ErrMembershipNotFound) {
			return ErrMembershipNotFound
		}
		s.logger.Error("Delete: repository error membership=%s: %v", membershipID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: membership=%s deleted", membershipID)
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

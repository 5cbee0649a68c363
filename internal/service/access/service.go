package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Service проверяет права администраторов полей.
// Администратор поля - пользователь с флагом is_admin, указанный в field_owners.
type Service struct {
	profileRepo ProfileRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса прав доступа
func NewService(profileRepo ProfileRepository, logger Logger) *Service {
	return &Service{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// RequireAdmin проверяет флаг администратора
func (s *Service) RequireAdmin(ctx context.Context, userID uuid.UUID) error {
	isAdmin, err := s.profileRepo.IsAdmin(ctx, userID)
	if err != nil {
		s.logger.Error("RequireAdmin: failed to load profile user=%s: %v", userID, err)
		return fmt.Errorf("%w: RequireAdmin - repository error: %v", ErrInternal, err)
	}
	if !isAdmin {
		s.logger.Warn("RequireAdmin: user=%s is not an admin", userID)
		return ErrAccessDenied
	}
	return nil
}

// CheckFieldAdmin проверяет, что пользователь администратор и управляет полем
func (s *Service) CheckFieldAdmin(ctx context.Context, userID, fieldID uuid.UUID) error {
	if err := s.RequireAdmin(ctx, userID); err != nil {
		return err
	}

	owner, err := s.profileRepo.IsOwner(ctx, userID, fieldID)
	if err != nil {
		s.logger.Error("CheckFieldAdmin: failed to check owner user=%s field=%s: %v", userID, fieldID, err)
		return fmt.Errorf("%w: CheckFieldAdmin - repository error: %v", ErrInternal, err)
	}
	if !owner {
		s.logger.Warn("CheckFieldAdmin: user=%s does not manage field=%s", userID, fieldID)
		return ErrAccessDenied
	}

	return nil
}

// IsFieldAdmin аналог CheckFieldAdmin, возвращающий false вместо ErrAccessDenied
func (s *Service) IsFieldAdmin(ctx context.Context, userID, fieldID uuid.UUID) (bool, error) {
	err := s.CheckFieldAdmin(ctx, userID, fieldID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrAccessDenied):
		return false, nil
	default:
		return false, err
	}
}

// OwnedFieldIDs возвращает поля, которыми управляет администратор
func (s *Service) OwnedFieldIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if err := s.RequireAdmin(ctx, userID); err != nil {
		return nil, err
	}

	ids, err := s.profileRepo.ListFieldIDsByOwner(ctx, userID)
	if err != nil {
		s.logger.Error("OwnedFieldIDs: repository error user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: OwnedFieldIDs - repository error: %v", ErrInternal, err)
	}
	return ids, nil
}

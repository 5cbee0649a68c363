package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	profileRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/profile"
	"github.com/m04kA/SMC-FieldBooking/internal/service/profiles/models"
)

// Service сервис профилей пользователей
type Service struct {
	profileRepo ProfileRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса профилей
func NewService(profileRepo ProfileRepository, logger Logger) *Service {
	return &Service{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Get возвращает профиль пользователя.
// Профиль создается при первом сохранении, до этого возвращается пустой профиль.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*models.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return models.FromDomainProfile(&domain.Profile{ID: userID}), nil
		}
		s.logger.Error("Get: failed to get profile user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfile(profile), nil
}

// Update сохраняет имя и телефон пользователя
func (s *Service) Update(ctx context.Context, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	s.logger.Info("Update: profile of user=%s", req.UserID)

	profile, err := req.ToDomainProfile()
	if err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.profileRepo.Upsert(ctx, profile)
	if err != nil {
		s.logger.Error("Update: failed to save profile user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfile(saved), nil
}

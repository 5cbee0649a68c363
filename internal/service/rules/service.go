package rules

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	fieldRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/field"
	rulesRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/rules"
	"github.com/m04kA/SMC-FieldBooking/internal/service/access"
	"github.com/m04kA/SMC-FieldBooking/internal/service/rules/models"
)

// Service сервис правил бронирования.
// Поле без собственных правил получает значения по умолчанию из config.toml.
type Service struct {
	rulesRepo     RulesRepository
	fieldRepo     FieldRepository
	accessChecker AccessChecker
	defaults      domain.BookingRules
	logger        Logger
}

// NewService создает новый экземпляр сервиса правил бронирования
func NewService(
	rulesRepo RulesRepository,
	fieldRepo FieldRepository,
	accessChecker AccessChecker,
	defaults domain.BookingRules,
	logger Logger,
) *Service {
	return &Service{
		rulesRepo:     rulesRepo,
		fieldRepo:     fieldRepo,
		accessChecker: accessChecker,
		defaults:      defaults,
		logger:        logger,
	}
}

// Effective возвращает действующие правила поля (собственные или по умолчанию)
func (s *Service) Effective(ctx context.Context, fieldID uuid.UUID) (*domain.BookingRules, error) {
	rules, err := s.rulesRepo.GetByFieldID(ctx, fieldID)
	if err == nil {
		return rules, nil
	}
	if !errors.Is(err, rulesRepo.ErrRulesNotFound) {
		s.logger.Error("Effective: repository error field=%s: %v", fieldID, err)
		return nil, fmt.Errorf("%w: Effective - repository error: %v", ErrInternal, err)
	}

	defaults := s.defaults
	defaults.FieldID = fieldID
	defaults.IsDefault = true
	return &defaults, nil
}

// Get возвращает действующие правила поля для публичного API
func (s *Service) Get(ctx context.Context, fieldID uuid.UUID) (*models.RulesResponse, error) {
	s.logger.Info("Get: rules of field=%s", fieldID)

	if _, err := s.fieldRepo.GetByID(ctx, fieldID); err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("Get: field=%s not found", fieldID)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("Get: failed to get field=%s: %v", fieldID, err)
		return nil, fmt.Errorf("%w: Get - get field: %v", ErrInternal, err)
	}

	rules, err := s.Effective(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainRules(rules), nil
}

// Update создает или заменяет правила поля. Доступно только администратору поля.
func (s *Service) Update(ctx context.Context, req *models.UpdateRulesRequest) (*models.RulesResponse, error) {
	s.logger.Info("Update: rules of field=%s by user=%s: step=%d, duration=%d, advance=%d, notice=%d, discount=%v%%",
		req.FieldID, req.UserID, req.SlotStepMinutes, req.DefaultDurationMinutes,
		req.AdvanceBookingDays, req.MinBookingNoticeMinutes, req.LateDiscountPercent)

	// 1. Валидация
	if err := req.Validate(); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Права администратора
	if err := s.accessChecker.CheckFieldAdmin(ctx, req.UserID, req.FieldID); err != nil {
		if errors.Is(err, access.ErrAccessDenied) {
			return nil, ErrAccessDenied
		}
		return nil, fmt.Errorf("%w: access check: %v", ErrInternal, err)
	}

	// 3. Сохраняем
	saved, err := s.rulesRepo.Upsert(ctx, req.ToDomainRules())
	if err != nil {
		s.logger.Error("Update: repository error field=%s: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: rules of field=%s saved", req.FieldID)
	return models.FromDomainRules(saved), nil
}

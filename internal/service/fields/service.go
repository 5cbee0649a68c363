package fields

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	fieldRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/field"
	"github.com/m04kA/SMC-FieldBooking/internal/service/access"
	"github.com/m04kA/SMC-FieldBooking/internal/service/fields/models"
	"github.com/m04kA/SMC-FieldBooking/pkg/textnorm"
)

// Service сервис для работы с полями и кортами
type Service struct {
	fieldRepo     FieldRepository
	accessChecker AccessChecker
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса полей
func NewService(
	fieldRepo FieldRepository,
	accessChecker AccessChecker,
	logger Logger,
) *Service {
	return &Service{
		fieldRepo:     fieldRepo,
		accessChecker: accessChecker,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Search ищет активные поля по городу без учета регистра и диакритики.
// Поля, заблокированные на сегодня, в выдачу не попадают.
func (s *Service) Search(ctx context.Context, req *models.SearchRequest) (*models.FieldListResponse, error) {
	city := strings.TrimSpace(req.City)
	if city == "" {
		return nil, fmt.Errorf("%w: city is required", ErrInvalidInput)
	}
	s.logger.Info("Search: city=%q, sport=%v", city, req.Sport)

	fields, err := s.fieldRepo.ListActive(ctx, req.Sport)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	today := s.timeProvider.Now()
	found := make([]*domain.Field, 0, len(fields))
	for _, f := range fields {
		if !textnorm.Contains(f.City, city) {
			continue
		}
		if f.Block.ActiveOn(today) {
			continue
		}
		found = append(found, f)
	}

	s.logger.Info("Search: found %d fields for city=%q", len(found), city)
	return models.FromDomainFieldList(found), nil
}

// GetDetails возвращает поле с активными кортами и удобствами.
// Для заблокированного сегодня поля возвращает *BlockedError.
func (s *Service) GetDetails(ctx context.Context, fieldID uuid.UUID) (*models.FieldDetailsResponse, error) {
	s.logger.Info("GetDetails: field=%s", fieldID)

	field, err := s.getActiveField(ctx, fieldID, "GetDetails")
	if err != nil {
		return nil, err
	}

	if field.Block.ActiveOn(s.timeProvider.Now()) {
		s.logger.Warn("GetDetails: field=%s is blocked", fieldID)
		return nil, &BlockedError{Reason: field.Block.Reason, BlockedUntil: field.Block.BlockedUntil}
	}

	courts, err := s.fieldRepo.ListCourts(ctx, fieldID, true)
	if err != nil {
		s.logger.Error("GetDetails: failed to list courts field=%s: %v", fieldID, err)
		return nil, fmt.Errorf("%w: GetDetails - list courts: %v", ErrInternal, err)
	}

	amenities, err := s.fieldRepo.ListAmenities(ctx, fieldID)
	if err != nil {
		s.logger.Error("GetDetails: failed to list amenities field=%s: %v", fieldID, err)
		return nil, fmt.Errorf("%w: GetDetails - list amenities: %v", ErrInternal, err)
	}

	return &models.FieldDetailsResponse{
		Field:     models.FromDomainField(field),
		Courts:    models.FromDomainCourts(courts),
		Amenities: models.FromDomainAmenities(amenities),
	}, nil
}

// ListOwned возвращает поля, которыми управляет администратор (включая заблокированные)
func (s *Service) ListOwned(ctx context.Context, userID uuid.UUID) (*models.FieldListResponse, error) {
	s.logger.Info("ListOwned: user=%s", userID)

	ids, err := s.accessChecker.OwnedFieldIDs(ctx, userID)
	if err != nil {
		return nil, mapAccessError(err)
	}

	fields, err := s.fieldRepo.ListByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("ListOwned: repository error user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: ListOwned - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainFieldList(fields), nil
}

// ListCourts возвращает все корты поля для панели администратора
func (s *Service) ListCourts(ctx context.Context, userID, fieldID uuid.UUID) ([]models.CourtResponse, error) {
	if err := s.accessChecker.CheckFieldAdmin(ctx, userID, fieldID); err != nil {
		return nil, mapAccessError(err)
	}

	courts, err := s.fieldRepo.ListCourts(ctx, fieldID, false)
	if err != nil {
		s.logger.Error("ListCourts: repository error field=%s: %v", fieldID, err)
		return nil, fmt.Errorf("%w: ListCourts - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCourts(courts), nil
}

// BlockField блокирует или разблокирует поле
func (s *Service) BlockField(ctx context.Context, fieldID uuid.UUID, req *models.BlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("BlockField: field=%s, blocked=%t by user=%s", fieldID, req.IsBlocked, req.UserID)

	block, err := req.ToDomainBlock()
	if err != nil {
		s.logger.Warn("BlockField: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.accessChecker.CheckFieldAdmin(ctx, req.UserID, fieldID); err != nil {
		return nil, mapAccessError(err)
	}

	if err := s.fieldRepo.UpdateBlock(ctx, fieldID, block); err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			return nil, ErrFieldNotFound
		}
		s.logger.Error("BlockField: repository error field=%s: %v", fieldID, err)
		return nil, fmt.Errorf("%w: BlockField - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BlockField: field=%s updated", fieldID)
	resp := models.FromDomainBlock(block)
	return &resp, nil
}

// BlockCourt блокирует или разблокирует корт
func (s *Service) BlockCourt(ctx context.Context, courtID uuid.UUID, req *models.BlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("BlockCourt: court=%s, blocked=%t by user=%s", courtID, req.IsBlocked, req.UserID)

	block, err := req.ToDomainBlock()
	if err != nil {
		s.logger.Warn("BlockCourt: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	court, err := s.fieldRepo.GetCourt(ctx, courtID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrCourtNotFound) {
			s.logger.Warn("BlockCourt: court=%s not found", courtID)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("BlockCourt: repository error court=%s: %v", courtID, err)
		return nil, fmt.Errorf("%w: BlockCourt - get court: %v", ErrInternal, err)
	}

	if err := s.accessChecker.CheckFieldAdmin(ctx, req.UserID, court.FieldID); err != nil {
		return nil, mapAccessError(err)
	}

	if err := s.fieldRepo.UpdateCourtBlock(ctx, courtID, block); err != nil {
		if errors.Is(err, fieldRepo.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		s.logger.Error("BlockCourt: repository error court=%s: %v", courtID, err)
		return nil, fmt.Errorf("%w: BlockCourt - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BlockCourt: court=%s updated", courtID)
	resp := models.FromDomainBlock(block)
	return &resp, nil
}

func (s *Service) getActiveField(ctx context.Context, fieldID uuid.UUID, op string) (*domain.Field, error) {
	field, err := s.fieldRepo.GetByID(ctx, fieldID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("%s: field=%s not found", op, fieldID)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("%s: repository error field=%s: %v", op, fieldID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	if !field.IsActive {
		s.logger.Warn("%s: field=%s is inactive", op, fieldID)
		return nil, ErrFieldNotFound
	}
	return field, nil
}

func mapAccessError(err error) error {
	if errors.Is(err, access.ErrAccessDenied) {
		return ErrAccessDenied
	}
	return fmt.Errorf("%w: access check: %v", ErrInternal, err)
}

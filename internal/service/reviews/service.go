package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/booking"
	fieldRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/field"
	reviewRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/review"
	"github.com/m04kA/SMC-FieldBooking/internal/service/reviews/models"
)

// Service сервис отзывов о полях
type Service struct {
	reviewRepo  ReviewRepository
	bookingRepo BookingRepository
	fieldRepo   FieldRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(
	reviewRepo ReviewRepository,
	bookingRepo BookingRepository,
	fieldRepo FieldRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		fieldRepo:   fieldRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// List возвращает отзывы поля, новые первыми
func (s *Service) List(ctx context.Context, fieldID uuid.UUID) (*models.ReviewListResponse, error) {
	if _, err := s.fieldRepo.GetByID(ctx, fieldID); err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			return nil, ErrFieldNotFound
		}
		s.logger.Error("List: failed to get field=%s: %v", fieldID, err)
		return nil, fmt.Errorf("%w: List - get field: %v", ErrInternal, err)
	}

	reviews, err := s.reviewRepo.ListByField(ctx, fieldID)
	if err != nil {
		s.logger.Error("List: failed to list reviews field=%s: %v", fieldID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	stats, err := s.reviewRepo.Stats(ctx, fieldID)
	if err != nil {
		s.logger.Error("List: failed to get stats field=%s: %v", fieldID, err)
		return nil, fmt.Errorf("%w: List - stats: %v", ErrInternal, err)
	}

	return models.FromDomainReviewList(reviews, stats), nil
}

// Create сохраняет отзыв и пересчитывает рейтинг поля в одной транзакции.
// Отзыв можно оставить только на собственное завершенное бронирование этого поля.
func (s *Service) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Create: review of field=%s by user=%s, booking=%s, rating=%d",
		req.FieldID, req.UserID, req.BookingID, req.Rating)

	// 1. Валидация
	review, err := req.ToDomainReview()
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var created *domain.Review
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// 2. Бронирование автора
		booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Create - get booking: %v", ErrInternal, err)
		}
		if booking.UserID != req.UserID {
			return ErrAccessDenied
		}
		if booking.FieldID != req.FieldID || booking.Status != domain.StatusCompleted {
			return ErrNotReviewable
		}

		// 3. Строка поля блокируется до коммита: параллельный отзыв ждет и затем видит наш
		if err := s.fieldRepo.LockForUpdate(ctx, req.FieldID); err != nil {
			if errors.Is(err, fieldRepo.ErrFieldNotFound) {
				return ErrFieldNotFound
			}
			return fmt.Errorf("%w: Create - lock field: %w", ErrInternal, err)
		}

		// 4. Отзыв
		created, err = s.reviewRepo.Create(ctx, review)
		if err != nil {
			if errors.Is(err, reviewRepo.ErrDuplicateReview) {
				return ErrAlreadyReviewed
			}
			return fmt.Errorf("%w: Create - save review: %v", ErrInternal, err)
		}

		// 5. Рейтинг поля
		stats, err := s.reviewRepo.Stats(ctx, req.FieldID)
		if err != nil {
			return fmt.Errorf("%w: Create - stats: %v", ErrInternal, err)
		}
		if err := s.fieldRepo.UpdateRating(ctx, req.FieldID, domain.RoundMoney(stats.Average), stats.Count); err != nil {
			return fmt.Errorf("%w: Create - update rating: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("Create: %v", err)
		} else {
			s.logger.Warn("Create: rejected booking=%s: %v", req.BookingID, err)
		}
		return nil, err
	}

	s.logger.Info("Create: review=%s created for field=%s", created.ID, req.FieldID)
	resp := models.FromDomainReview(created)
	return &resp, nil
}

package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-FieldBooking/internal/service/access"
	"github.com/m04kA/SMC-FieldBooking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo   BookingRepository
	accessChecker AccessChecker
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	accessChecker AccessChecker,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		accessChecker: accessChecker,
		txManager:     txManager,
		logger:        logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит своё бронирование, администратор поля - любое бронирование поля
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, userID)

	booking, err := s.getBooking(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает бронирования пользователя (новые первыми)
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil && *req.Status != "" {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%s", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetFieldBookings получает бронирования поля для администратора
// Статус "all" (по умолчанию) означает confirmed + cancelled
func (s *Service) GetFieldBookings(ctx context.Context, req *models.GetFieldBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetFieldBookings: fetching bookings for field=%s, user=%s", req.FieldID, req.UserID)
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format(domain.DateFormat))
	}
	if req.CourtID != nil {
		logMsg += fmt.Sprintf(", court=%s", *req.CourtID)
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetFieldBookings: invalid filter for field=%s: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	if err := s.checkFieldAdmin(ctx, req.UserID, req.FieldID); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.GetByFieldWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetFieldBookings: repository error for field=%s: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: GetFieldBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetFieldBookings: successfully fetched %d bookings for field=%s", len(bookings), req.FieldID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование (владелец или администратор поля)
func (s *Service) Cancel(ctx context.Context, bookingID, userID uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", bookingID, userID)

	booking, err := s.transition(ctx, bookingID, userID, "Cancel", func(b *domain.Booking) (domain.BookingStatus, error) {
		if !b.CanBeCancelled() {
			return "", ErrCannotCancel
		}
		return domain.StatusCancelled, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return models.FromDomainBooking(booking), nil
}

// Complete помечает бронирование завершенным (владелец или администратор поля)
func (s *Service) Complete(ctx context.Context, bookingID, userID uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("Complete: completing booking id=%s by user=%s", bookingID, userID)

	booking, err := s.transition(ctx, bookingID, userID, "Complete", func(b *domain.Booking) (domain.BookingStatus, error) {
		if !b.CanBeCompleted() {
			return "", ErrCannotComplete
		}
		return domain.StatusCompleted, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Complete: successfully completed booking id=%s", bookingID)
	return models.FromDomainBooking(booking), nil
}

// UpdatePaymentStatus меняет статус оплаты. Доступно только администратору поля.
func (s *Service) UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, req *models.UpdatePaymentRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdatePaymentStatus: booking id=%s to %s by user=%s", bookingID, req.PaymentStatus, req.UserID)

	paymentStatus, err := models.ToDomainPaymentStatus(req.PaymentStatus)
	if err != nil {
		s.logger.Warn("UpdatePaymentStatus: invalid payment status=%s", req.PaymentStatus)
		return nil, fmt.Errorf("%w: invalid payment status", ErrInvalidInput)
	}

	var booking *domain.Booking
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		booking, err = s.getBooking(txCtx, bookingID, "UpdatePaymentStatus")
		if err != nil {
			return err
		}

		if err := s.checkFieldAdmin(txCtx, req.UserID, booking.FieldID); err != nil {
			return err
		}

		if err := s.bookingRepo.UpdatePaymentStatus(txCtx, bookingID, paymentStatus); err != nil {
			return s.mapRepoError(err, bookingID, "UpdatePaymentStatus")
		}
		booking.PaymentStatus = paymentStatus
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdatePaymentStatus: booking id=%s is now %s", bookingID, paymentStatus)
	return models.FromDomainBooking(booking), nil
}

// Вспомогательные методы

// transition меняет статус бронирования внутри транзакции (строка блокируется FOR UPDATE)
func (s *Service) transition(
	ctx context.Context,
	bookingID, userID uuid.UUID,
	op string,
	next func(b *domain.Booking) (domain.BookingStatus, error),
) (*domain.Booking, error) {
	var booking *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		booking, err = s.getBooking(txCtx, bookingID, op)
		if err != nil {
			return err
		}

		if err := s.checkUserAccess(txCtx, booking, userID); err != nil {
			s.logger.Warn("%s: access denied for user=%s to booking id=%s", op, userID, bookingID)
			return err
		}

		status, err := next(booking)
		if err != nil {
			s.logger.Warn("%s: booking id=%s has status=%s: %v", op, bookingID, booking.Status, err)
			return err
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, status); err != nil {
			return s.mapRepoError(err, bookingID, op)
		}
		booking.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}

func (s *Service) getBooking(ctx context.Context, id uuid.UUID, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(err, id, op)
	}
	return booking, nil
}

func (s *Service) mapRepoError(err error, id uuid.UUID, op string) error {
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		s.logger.Warn("%s: booking id=%s not found", op, id)
		return ErrBookingNotFound
	}
	s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

// checkUserAccess проверяет, что пользователь владелец бронирования или администратор поля
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID uuid.UUID) error {
	if booking.UserID == userID {
		return nil
	}

	ok, err := s.accessChecker.IsFieldAdmin(ctx, userID, booking.FieldID)
	if err != nil {
		s.logger.Error("checkUserAccess: access check failed for user=%s: %v", userID, err)
		return fmt.Errorf("%w: checkUserAccess: %v", ErrInternal, err)
	}
	if !ok {
		return ErrAccessDenied
	}
	return nil
}

// checkFieldAdmin проверяет, что пользователь администратор поля
func (s *Service) checkFieldAdmin(ctx context.Context, userID, fieldID uuid.UUID) error {
	err := s.accessChecker.CheckFieldAdmin(ctx, userID, fieldID)
	if err == nil {
		return nil
	}
	if errors.Is(err, access.ErrAccessDenied) {
		return ErrAccessDenied
	}
	s.logger.Error("checkFieldAdmin: access check failed for user=%s field=%s: %v", userID, fieldID, err)
	return fmt.Errorf("%w: checkFieldAdmin: %v", ErrInternal, err)
}

package reviews

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/booking"
	fieldRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/field"
	reviewRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/review"
	"github.com/m04kA/SMC-FieldBooking/internal/service/reviews/models"
	"github.com/m04kA/SMC-FieldBooking/pkg/logger"
	"github.com/m04kA/SMC-FieldBooking/pkg/ptr"
)

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	args := m.Called(ctx, review)
	r, _ := args.Get(0).(*domain.Review)
	return r, args.Error(1)
}

func (m *mockReviewRepo) ListByField(ctx context.Context, fieldID uuid.UUID) ([]*domain.Review, error) {
	args := m.Called(ctx, fieldID)
	r, _ := args.Get(0).([]*domain.Review)
	return r, args.Error(1)
}

func (m *mockReviewRepo) Stats(ctx context.Context, fieldID uuid.UUID) (domain.ReviewStats, error) {
	args := m.Called(ctx, fieldID)
	return args.Get(0).(domain.ReviewStats), args.Error(1)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

type mockFieldRepo struct {
	mock.Mock
}

func (m *mockFieldRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Field, error) {
	args := m.Called(ctx, id)
	f, _ := args.Get(0).(*domain.Field)
	return f, args.Error(1)
}

func (m *mockFieldRepo) LockForUpdate(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockFieldRepo) UpdateRating(ctx context.Context, fieldID uuid.UUID, rating float64, reviewCount int) error {
	return m.Called(ctx, fieldID, rating, reviewCount).Error(0)
}

// passTx выполняет функцию без транзакции
type passTx struct{}

func (passTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	svc      *Service
	reviews  *mockReviewRepo
	bookings *mockBookingRepo
	fields   *mockFieldRepo
}

func newFixture() *fixture {
	f := &fixture{
		reviews:  new(mockReviewRepo),
		bookings: new(mockBookingRepo),
		fields:   new(mockFieldRepo),
	}
	f.svc = NewService(f.reviews, f.bookings, f.fields, passTx{}, logger.NewNop())
	return f
}

func TestList(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	fieldID := uuid.New()

	f.fields.On("GetByID", ctx, fieldID).Return(&domain.Field{ID: fieldID}, nil)
	f.reviews.On("ListByField", ctx, fieldID).Return([]*domain.Review{
		{ID: uuid.New(), FieldID: fieldID, Rating: 5, AuthorName: ptr.Ptr("Ana")},
		{ID: uuid.New(), FieldID: fieldID, Rating: 4},
	}, nil)
	f.reviews.On("Stats", ctx, fieldID).Return(domain.ReviewStats{Average: 4.5, Count: 2}, nil)

	resp, err := f.svc.List(ctx, fieldID)
	require.NoError(t, err)
	assert.Len(t, resp.Reviews, 2)
	assert.Equal(t, 4.5, resp.Average)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "Ana", *resp.Reviews[0].AuthorName)
}

func TestList_UnknownField(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	fieldID := uuid.New()

	f.fields.On("GetByID", ctx, fieldID).Return(nil, fieldRepo.ErrFieldNotFound)

	_, err := f.svc.List(ctx, fieldID)
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	userID, fieldID, bookingID := uuid.New(), uuid.New(), uuid.New()

	var calls []string
	record := func(name string) func(mock.Arguments) {
		return func(mock.Arguments) { calls = append(calls, name) }
	}

	f.bookings.On("GetByID", ctx, bookingID).Return(&domain.Booking{
		ID: bookingID, UserID: userID, FieldID: fieldID, Status: domain.StatusCompleted,
	}, nil)
	f.fields.On("LockForUpdate", ctx, fieldID).Run(record("lock")).Return(nil)
	f.reviews.On("Create", ctx, mock.MatchedBy(func(r *domain.Review) bool {
		return r.BookingID == bookingID && r.Rating == 4 && *r.Comment == "Teren bun"
	})).Run(record("insert")).Return(&domain.Review{ID: uuid.New(), FieldID: fieldID, BookingID: bookingID, Rating: 4}, nil)
	f.reviews.On("Stats", ctx, fieldID).Run(record("stats")).Return(domain.ReviewStats{Average: 13.0 / 3.0, Count: 3}, nil)
	f.fields.On("UpdateRating", ctx, fieldID, 4.33, 3).Run(record("rating")).Return(nil)

	resp, err := f.svc.Create(ctx, &models.CreateReviewRequest{
		UserID:    userID,
		FieldID:   fieldID,
		BookingID: bookingID,
		Rating:    4,
		Comment:   ptr.Ptr(" Teren bun "),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Rating)
	// рейтинг считается только под блокировкой строки поля
	assert.Equal(t, []string{"lock", "insert", "stats", "rating"}, calls)
	f.fields.AssertExpectations(t)
}

func TestCreate_LockFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	userID, fieldID, bookingID := uuid.New(), uuid.New(), uuid.New()

	f.bookings.On("GetByID", ctx, bookingID).Return(&domain.Booking{
		ID: bookingID, UserID: userID, FieldID: fieldID, Status: domain.StatusCompleted,
	}, nil)
	f.fields.On("LockForUpdate", ctx, fieldID).Return(errors.New("lock timeout"))

	_, err := f.svc.Create(ctx, &models.CreateReviewRequest{
		UserID: userID, FieldID: fieldID, BookingID: bookingID, Rating: 5,
	})
	assert.ErrorIs(t, err, ErrInternal)
	f.reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.reviews.AssertNotCalled(t, "Stats", mock.Anything, mock.Anything)
}

func TestCreate_Rejections(t *testing.T) {
	userID, fieldID, bookingID := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name    string
		booking *domain.Booking
		repoErr error
		wantErr error
	}{
		{
			name:    "booking missing",
			repoErr: bookingRepo.ErrBookingNotFound,
			wantErr: ErrBookingNotFound,
		},
		{
			name:    "someone else's booking",
			booking: &domain.Booking{ID: bookingID, UserID: uuid.New(), FieldID: fieldID, Status: domain.StatusCompleted},
			wantErr: ErrAccessDenied,
		},
		{
			name:    "not completed",
			booking: &domain.Booking{ID: bookingID, UserID: userID, FieldID: fieldID, Status: domain.StatusConfirmed},
			wantErr: ErrNotReviewable,
		},
		{
			name:    "other field",
			booking: &domain.Booking{ID: bookingID, UserID: userID, FieldID: uuid.New(), Status: domain.StatusCompleted},
			wantErr: ErrNotReviewable,
		},
		{
			name:    "repository failure",
			repoErr: errors.New("db down"),
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture()
			f.bookings.On("GetByID", ctx, bookingID).Return(tt.booking, tt.repoErr)

			_, err := f.svc.Create(ctx, &models.CreateReviewRequest{
				UserID: userID, FieldID: fieldID, BookingID: bookingID, Rating: 5,
			})
			assert.ErrorIs(t, err, tt.wantErr)
			f.reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreate_Duplicate(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	userID, fieldID, bookingID := uuid.New(), uuid.New(), uuid.New()

	f.bookings.On("GetByID", ctx, bookingID).Return(&domain.Booking{
		ID: bookingID, UserID: userID, FieldID: fieldID, Status: domain.StatusCompleted,
	}, nil)
	f.fields.On("LockForUpdate", ctx, fieldID).Return(nil)
	f.reviews.On("Create", ctx, mock.Anything).Return(nil, reviewRepo.ErrDuplicateReview)

	_, err := f.svc.Create(ctx, &models.CreateReviewRequest{
		UserID: userID, FieldID: fieldID, BookingID: bookingID, Rating: 3,
	})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	f.fields.AssertNotCalled(t, "UpdateRating", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_InvalidRating(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Create(context.Background(), &models.CreateReviewRequest{
		UserID: uuid.New(), FieldID: uuid.New(), BookingID: uuid.New(), Rating: 6,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

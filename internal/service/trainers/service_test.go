package trainers

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	trainerRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/trainer"
	"github.com/m04kA/SMC-FieldBooking/internal/service/access"
	"github.com/m04kA/SMC-FieldBooking/internal/service/trainers/models"
	"github.com/m04kA/SMC-FieldBooking/pkg/logger"
)

type mockTrainerRepo struct {
	mock.Mock
}

func (m *mockTrainerRepo) Create(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error) {
	args := m.Called(ctx, trainer)
	t, _ := args.Get(0).(*domain.Trainer)
	return t, args.Error(1)
}

func (m *mockTrainerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Trainer, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*domain.Trainer)
	return t, args.Error(1)
}

func (m *mockTrainerRepo) ListActiveByField(ctx context.Context, fieldID uuid.UUID) ([]*domain.Trainer, error) {
	args := m.Called(ctx, fieldID)
	t, _ := args.Get(0).([]*domain.Trainer)
	return t, args.Error(1)
}

func (m *mockTrainerRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockAccess struct {
	mock.Mock
}

func (m *mockAccess) CheckFieldAdmin(ctx context.Context, userID, fieldID uuid.UUID) error {
	return m.Called(ctx, userID, fieldID).Error(0)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	admin, fieldID := uuid.New(), uuid.New()

	repo := new(mockTrainerRepo)
	acc := new(mockAccess)
	acc.On("CheckFieldAdmin", ctx, admin, fieldID).Return(nil)
	repo.On("Create", ctx, mock.MatchedBy(func(tr *domain.Trainer) bool {
		return tr.Name == "Ion Ionescu" && tr.FieldID == fieldID
	})).Return(&domain.Trainer{ID: uuid.New(), FieldID: fieldID, Name: "Ion Ionescu", IsActive: true}, nil)

	resp, err := NewService(repo, acc, logger.NewNop()).Create(ctx, &models.CreateTrainerRequest{
		UserID:  admin,
		FieldID: fieldID,
		Name:    "  Ion Ionescu ",
	})
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
	repo.AssertExpectations(t)
}

func TestCreate_Validation(t *testing.T) {
	_, err := NewService(new(mockTrainerRepo), new(mockAccess), logger.NewNop()).
		Create(context.Background(), &models.CreateTrainerRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeactivate(t *testing.T) {
	ctx := context.Background()
	admin, fieldID := uuid.New(), uuid.New()
	trainerID := uuid.New()

	t.Run("success", func(t *testing.T) {
		repo := new(mockTrainerRepo)
		acc := new(mockAccess)
		repo.On("GetByID", ctx, trainerID).Return(&domain.Trainer{ID: trainerID, FieldID: fieldID}, nil)
		acc.On("CheckFieldAdmin", ctx, admin, fieldID).Return(nil)
		repo.On("Deactivate", ctx, trainerID).Return(nil)

		require.NoError(t, NewService(repo, acc, logger.NewNop()).Deactivate(ctx, admin, trainerID))
		repo.AssertExpectations(t)
	})

	t.Run("other field admin", func(t *testing.T) {
		repo := new(mockTrainerRepo)
		acc := new(mockAccess)
		repo.On("GetByID", ctx, trainerID).Return(&domain.Trainer{ID: trainerID, FieldID: fieldID}, nil)
		acc.On("CheckFieldAdmin", ctx, admin, fieldID).Return(access.ErrAccessDenied)

		err := NewService(repo, acc, logger.NewNop()).Deactivate(ctx, admin, trainerID)
		assert.ErrorIs(t, err, ErrAccessDenied)
		repo.AssertNotCalled(t, "Deactivate", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mockTrainerRepo)
		repo.On("GetByID", ctx, trainerID).Return(nil, trainerRepo.ErrTrainerNotFound)

		err := NewService(repo, new(mockAccess), logger.NewNop()).Deactivate(ctx, admin, trainerID)
		assert.ErrorIs(t, err, ErrTrainerNotFound)
	})
}

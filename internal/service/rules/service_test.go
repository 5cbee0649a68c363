package rules

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	fieldRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/field"
	rulesRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/rules"
	"github.com/m04kA/SMC-FieldBooking/internal/service/rules/models"
	"github.com/m04kA/SMC-FieldBooking/pkg/logger"
	"github.com/m04kA/SMC-FieldBooking/pkg/ptr"
	"github.com/m04kA/SMC-FieldBooking/pkg/types"
)

type mockRulesRepo struct {
	mock.Mock
}

func (m *mockRulesRepo) GetByFieldID(ctx context.Context, fieldID uuid.UUID) (*domain.BookingRules, error) {
	args := m.Called(ctx, fieldID)
	r, _ := args.Get(0).(*domain.BookingRules)
	return r, args.Error(1)
}

func (m *mockRulesRepo) Upsert(ctx context.Context, rules *domain.BookingRules) (*domain.BookingRules, error) {
	args := m.Called(ctx, rules)
	r, _ := args.Get(0).(*domain.BookingRules)
	return r, args.Error(1)
}

type mockFieldRepo struct {
	mock.Mock
}

func (m *mockFieldRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Field, error) {
	args := m.Called(ctx, id)
	f, _ := args.Get(0).(*domain.Field)
	return f, args.Error(1)
}

type mockAccess struct {
	mock.Mock
}

func (m *mockAccess) CheckFieldAdmin(ctx context.Context, userID, fieldID uuid.UUID) error {
	return m.Called(ctx, userID, fieldID).Error(0)
}

var defaults = domain.BookingRules{
	SlotStepMinutes:        60,
	DefaultDurationMinutes: 60,
	AdvanceBookingDays:     30,
	LateDiscountFrom:       ptr.Ptr(types.MustTimeString("22:00")),
	LateDiscountPercent:    20,
}

func TestEffective_FallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	fieldID := uuid.New()

	repo := new(mockRulesRepo)
	repo.On("GetByFieldID", ctx, fieldID).Return(nil, rulesRepo.ErrRulesNotFound)

	rules, err := NewService(repo, new(mockFieldRepo), new(mockAccess), defaults, logger.NewNop()).Effective(ctx, fieldID)
	require.NoError(t, err)
	assert.True(t, rules.IsDefault)
	assert.Equal(t, fieldID, rules.FieldID)
	assert.Equal(t, 30, rules.AdvanceBookingDays)
	assert.True(t, rules.HasLateDiscount())
}

func TestEffective_FieldOverride(t *testing.T) {
	ctx := context.Background()
	fieldID := uuid.New()
	own := &domain.BookingRules{FieldID: fieldID, SlotStepMinutes: 30, DefaultDurationMinutes: 90}

	repo := new(mockRulesRepo)
	repo.On("GetByFieldID", ctx, fieldID).Return(own, nil)

	rules, err := NewService(repo, new(mockFieldRepo), new(mockAccess), defaults, logger.NewNop()).Effective(ctx, fieldID)
	require.NoError(t, err)
	assert.Same(t, own, rules)
}

func TestEffective_RepositoryError(t *testing.T) {
	ctx := context.Background()
	fieldID := uuid.New()

	repo := new(mockRulesRepo)
	repo.On("GetByFieldID", ctx, fieldID).Return(nil, errors.New("db down"))

	_, err := NewService(repo, new(mockFieldRepo), new(mockAccess), defaults, logger.NewNop()).Effective(ctx, fieldID)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGet_UnknownField(t *testing.T) {
	ctx := context.Background()
	fieldID := uuid.New()

	fields := new(mockFieldRepo)
	fields.On("GetByID", ctx, fieldID).Return(nil, fieldRepo.ErrFieldNotFound)

	_, err := NewService(new(mockRulesRepo), fields, new(mockAccess), defaults, logger.NewNop()).Get(ctx, fieldID)
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestGet_Defaults(t *testing.T) {
	ctx := context.Background()
	fieldID := uuid.New()

	fields := new(mockFieldRepo)
	fields.On("GetByID", ctx, fieldID).Return(&domain.Field{ID: fieldID}, nil)
	repo := new(mockRulesRepo)
	repo.On("GetByFieldID", ctx, fieldID).Return(nil, rulesRepo.ErrRulesNotFound)

	resp, err := NewService(repo, fields, new(mockAccess), defaults, logger.NewNop()).Get(ctx, fieldID)
	require.NoError(t, err)
	assert.True(t, resp.IsDefault)
	assert.Equal(t, "22:00", *resp.LateDiscountFrom)
	assert.Equal(t, []int{60, 90, 120}, resp.AllowedDurations)
	assert.Nil(t, resp.UpdatedAt)
}

func validUpdate(userID, fieldID uuid.UUID) *models.UpdateRulesRequest {
	return &models.UpdateRulesRequest{
		UserID:                  userID,
		FieldID:                 fieldID,
		SlotStepMinutes:         30,
		DefaultDurationMinutes:  90,
		AdvanceBookingDays:      14,
		MinBookingNoticeMinutes: 60,
		LateDiscountPercent:     0,
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	admin, fieldID := uuid.New(), uuid.New()

	repo := new(mockRulesRepo)
	acc := new(mockAccess)
	acc.On("CheckFieldAdmin", ctx, admin, fieldID).Return(nil)
	repo.On("Upsert", ctx, mock.MatchedBy(func(r *domain.BookingRules) bool {
		return r.FieldID == fieldID && r.SlotStepMinutes == 30 && r.LateDiscountFrom == nil
	})).Return(&domain.BookingRules{FieldID: fieldID, SlotStepMinutes: 30, DefaultDurationMinutes: 90}, nil)

	resp, err := NewService(repo, new(mockFieldRepo), acc, defaults, logger.NewNop()).Update(ctx, validUpdate(admin, fieldID))
	require.NoError(t, err)
	assert.False(t, resp.IsDefault)
	assert.Nil(t, resp.LateDiscountFrom)
	repo.AssertExpectations(t)
}

func TestUpdate_Validation(t *testing.T) {
	admin, fieldID := uuid.New(), uuid.New()

	tests := []struct {
		name   string
		modify func(r *models.UpdateRulesRequest)
	}{
		{name: "step too small", modify: func(r *models.UpdateRulesRequest) { r.SlotStepMinutes = 10 }},
		{name: "step too big", modify: func(r *models.UpdateRulesRequest) { r.SlotStepMinutes = 180 }},
		{name: "duration not allowed", modify: func(r *models.UpdateRulesRequest) { r.DefaultDurationMinutes = 45 }},
		{name: "advance too far", modify: func(r *models.UpdateRulesRequest) { r.AdvanceBookingDays = 400 }},
		{name: "negative notice", modify: func(r *models.UpdateRulesRequest) { r.MinBookingNoticeMinutes = -1 }},
		{name: "discount over 100", modify: func(r *models.UpdateRulesRequest) { r.LateDiscountPercent = 120 }},
		{name: "unset discount time", modify: func(r *models.UpdateRulesRequest) { r.LateDiscountFrom = &types.TimeString{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpdate(admin, fieldID)
			tt.modify(req)

			_, err := NewService(new(mockRulesRepo), new(mockFieldRepo), new(mockAccess), defaults, logger.NewNop()).
				Update(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

package get_day_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldBooking/internal/availability"
	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	"github.com/m04kA/SMC-FieldBooking/internal/service/access"
	"github.com/m04kA/SMC-FieldBooking/internal/service/schedule"
	"github.com/m04kA/SMC-FieldBooking/pkg/logger"
	"github.com/m04kA/SMC-FieldBooking/pkg/types"
)

type mockLoader struct {
	mock.Mock
}

func (m *mockLoader) Load(ctx context.Context, fieldID uuid.UUID, date time.Time) (*schedule.Schedule, error) {
	args := m.Called(ctx, fieldID, date)
	s, _ := args.Get(0).(*schedule.Schedule)
	return s, args.Error(1)
}

type mockRules struct {
	mock.Mock
}

func (m *mockRules) Effective(ctx context.Context, fieldID uuid.UUID) (*domain.BookingRules, error) {
	args := m.Called(ctx, fieldID)
	r, _ := args.Get(0).(*domain.BookingRules)
	return r, args.Error(1)
}

type mockAccess struct {
	mock.Mock
}

func (m *mockAccess) CheckFieldAdmin(ctx context.Context, userID, fieldID uuid.UUID) error {
	return m.Called(ctx, userID, fieldID).Error(0)
}

func TestExecute(t *testing.T) {
	ctx := context.Background()
	admin := uuid.New()
	date := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	field := &domain.Field{
		ID:          uuid.New(),
		IsActive:    true,
		OpeningTime: types.MustTimeString("18:00"),
		ClosingTime: types.MustTimeString("22:00"),
	}

	lesson := &domain.Lesson{
		ID:          uuid.New(),
		StartTime:   types.MustTimeString("18:00"),
		EndTime:     types.MustTimeString("19:00"),
		TrainerName: "Mihai",
	}
	day := availability.NewDay(field, nil, date)
	day.Add(availability.FromLessons([]*domain.Lesson{lesson})...)

	loader := new(mockLoader)
	rules := new(mockRules)
	acc := new(mockAccess)
	acc.On("CheckFieldAdmin", ctx, admin, field.ID).Return(nil)
	rules.On("Effective", ctx, field.ID).Return(&domain.BookingRules{SlotStepMinutes: 60, DefaultDurationMinutes: 60}, nil)
	loader.On("Load", ctx, field.ID, date).Return(&schedule.Schedule{Day: day, Lessons: []*domain.Lesson{lesson}}, nil)

	resp, err := NewUseCase(loader, rules, acc, logger.NewNop()).Execute(ctx, &Request{UserID: admin, FieldID: field.ID, Date: date})
	require.NoError(t, err)

	assert.False(t, resp.Blocked)
	assert.Len(t, resp.Lessons, 1)
	require.Len(t, resp.Slots, 4)
	assert.False(t, resp.Slots[0].Available)
	assert.Equal(t, availability.ReasonLesson, resp.Slots[0].Reason)
	assert.Equal(t, "Lecție: Mihai (18:00-19:00)", resp.Slots[0].Label)
	assert.True(t, resp.Slots[1].Available)
}

func TestExecute_AccessDenied(t *testing.T) {
	ctx := context.Background()
	user, fieldID := uuid.New(), uuid.New()

	loader := new(mockLoader)
	acc := new(mockAccess)
	acc.On("CheckFieldAdmin", ctx, user, fieldID).Return(access.ErrAccessDenied)

	_, err := NewUseCase(loader, new(mockRules), acc, logger.NewNop()).
		Execute(ctx, &Request{UserID: user, FieldID: fieldID, Date: time.Now()})
	assert.ErrorIs(t, err, ErrAccessDenied)
	loader.AssertNotCalled(t, "Load", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_FieldNotFound(t *testing.T) {
	ctx := context.Background()
	admin, fieldID := uuid.New(), uuid.New()
	date := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)

	loader := new(mockLoader)
	rules := new(mockRules)
	acc := new(mockAccess)
	acc.On("CheckFieldAdmin", ctx, admin, fieldID).Return(nil)
	rules.On("Effective", ctx, fieldID).Return(&domain.BookingRules{SlotStepMinutes: 60, DefaultDurationMinutes: 60}, nil)
	loader.On("Load", ctx, fieldID, date).Return(nil, schedule.ErrFieldNotFound)

	_, err := NewUseCase(loader, rules, acc, logger.NewNop()).Execute(ctx, &Request{UserID: admin, FieldID: fieldID, Date: date})
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

package lessons

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBooking/internal/availability"
	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	"github.com/m04kA/SMC-FieldBooking/internal/service/lessons"
	"github.com/m04kA/SMC-FieldBooking/internal/service/lessons/models"
	createLesson "github.com/m04kA/SMC-FieldBooking/internal/usecase/create_lesson"
	"github.com/m04kA/SMC-FieldBooking/pkg/logger"
	"github.com/m04kA/SMC-FieldBooking/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createLesson.Request) (*createLesson.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createLesson.Response), args.Error(1)
}

type mockService struct {
	mock.Mock
}

func (m *mockService) Delete(ctx context.Context, userID, lessonID uuid.UUID) error {
	args := m.Called(ctx, userID, lessonID)
	return args.Error(0)
}

func createRequest(userID uuid.UUID, fieldID, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/fields/"+fieldID+"/lessons", strings.NewReader(body))
	req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	return mux.SetURLVars(req, map[string]string{"fieldId": fieldID})
}

func TestCreate_Success(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, &mockService{}, logger.NewNop())

	userID := uuid.New()
	fieldID := uuid.New()
	trainerID := uuid.New()
	lessonID := uuid.New()

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createLesson.Request) bool {
		return req.UserID == userID && req.FieldID == fieldID && req.TrainerID == trainerID &&
			req.CourtID == nil && req.StartTime.String() == "18:00" && req.EndTime.String() == "19:30" &&
			req.Date.Format(domain.DateFormat) == "2025-10-15"
	})).Return(&createLesson.Response{Lesson: &domain.Lesson{
		ID:              lessonID,
		FieldID:         fieldID,
		TrainerID:       trainerID,
		TrainerName:     "Andrei Popescu",
		LessonDate:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       types.MustTimeString("18:00"),
		EndTime:         types.MustTimeString("19:30"),
		DurationMinutes: 90,
	}}, nil)

	body := fmt.Sprintf(`{"trainerId":"%s","date":"2025-10-15","startTime":"18:00","endTime":"19:30"}`, trainerID)
	rec := httptest.NewRecorder()
	h.Create(rec, createRequest(userID, fieldID.String(), body))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.LessonResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, lessonID, resp.ID)
	assert.Equal(t, "Andrei Popescu", resp.TrainerName)
	assert.Equal(t, 90, resp.DurationMinutes)
	uc.AssertExpectations(t)
}

func TestCreate_Conflict(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, &mockService{}, logger.NewNop())

	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, &createLesson.ConflictError{
		Conflict: &availability.Conflict{Reason: availability.ReasonMembership, Message: "abonament existent"},
	})

	body := fmt.Sprintf(`{"trainerId":"%s","date":"2025-10-15","startTime":"18:00","endTime":"19:00"}`, uuid.New())
	rec := httptest.NewRecorder()
	h.Create(rec, createRequest(uuid.New(), uuid.NewString(), body))

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp handlers.ConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "abonament existent", resp.Error)
	assert.Equal(t, "membership", resp.Reason)
}

func TestCreate_FieldBlocked(t *testing.T) {
	until := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	reason := "Turneu local"
	uc := &mockUseCase{}
	h := NewHandler(uc, &mockService{}, logger.NewNop())

	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, &createLesson.BlockedError{
		Reason:       &reason,
		BlockedUntil: &until,
	})

	body := fmt.Sprintf(`{"trainerId":"%s","date":"2025-10-15","startTime":"18:00","endTime":"19:00"}`, uuid.New())
	rec := httptest.NewRecorder()
	h.Create(rec, createRequest(uuid.New(), uuid.NewString(), body))

	require.Equal(t, http.StatusLocked, rec.Code)

	var resp handlers.ConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "field_blocked", resp.Reason)
	require.NotNil(t, resp.BlockedUntil)
	assert.Equal(t, "2025-10-20", *resp.BlockedUntil)
}

func TestCreate_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		fieldID string
		body    string
	}{
		{name: "invalid field id", fieldID: "abc", body: `{}`},
		{name: "empty body", fieldID: uuid.NewString(), body: ``},
		{name: "unknown field", fieldID: uuid.NewString(), body: `{"foo":1}`},
		{name: "invalid date", fieldID: uuid.NewString(), body: `{"date":"15/10/2025","startTime":"18:00","endTime":"19:00"}`},
		{name: "invalid time", fieldID: uuid.NewString(), body: `{"date":"2025-10-15","startTime":"6pm","endTime":"19:00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			h := NewHandler(uc, &mockService{}, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Create(rec, createRequest(uuid.New(), tt.fieldID, tt.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestCreate_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: createLesson.ErrAccessDenied, want: http.StatusForbidden},
		{err: createLesson.ErrFieldNotFound, want: http.StatusNotFound},
		{err: createLesson.ErrTrainerNotFound, want: http.StatusNotFound},
		{err: createLesson.ErrCourtNotFound, want: http.StatusNotFound},
		{err: createLesson.ErrInvalidDate, want: http.StatusBadRequest},
		{err: createLesson.ErrInvalidInput, want: http.StatusBadRequest},
		{err: createLesson.ErrSlotNotAvailable, want: http.StatusConflict},
		{err: createLesson.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			h := NewHandler(uc, &mockService{}, logger.NewNop())

			body := fmt.Sprintf(`{"trainerId":"%s","date":"2025-10-15","startTime":"18:00","endTime":"19:00"}`, uuid.New())
			rec := httptest.NewRecorder()
			h.Create(rec, createRequest(uuid.New(), uuid.NewString(), body))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "deleted", want: http.StatusNoContent},
		{name: "not found", err: lessons.ErrLessonNotFound, want: http.StatusNotFound},
		{name: "access denied", err: lessons.ErrAccessDenied, want: http.StatusForbidden},
		{name: "internal", err: lessons.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			h := NewHandler(&mockUseCase{}, svc, logger.NewNop())

			userID := uuid.New()
			lessonID := uuid.New()
			svc.On("Delete", mock.Anything, userID, lessonID).Return(tt.err)

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/lessons/"+lessonID.String(), nil)
			req = req.WithContext(middleware.WithUserID(req.Context(), userID))
			req = mux.SetURLVars(req, map[string]string{"lessonId": lessonID.String()})

			rec := httptest.NewRecorder()
			h.Delete(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

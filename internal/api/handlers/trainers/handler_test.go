package trainers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBooking/internal/service/trainers"
	"github.com/m04kA/SMC-FieldBooking/internal/service/trainers/models"
	"github.com/m04kA/SMC-FieldBooking/pkg/logger"
	"github.com/m04kA/SMC-FieldBooking/pkg/ptr"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context, userID, fieldID uuid.UUID) (*models.TrainerListResponse, error) {
	args := m.Called(ctx, userID, fieldID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TrainerListResponse), args.Error(1)
}

func (m *mockService) Create(ctx context.Context, req *models.CreateTrainerRequest) (*models.TrainerResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TrainerResponse), args.Error(1)
}

func (m *mockService) Deactivate(ctx context.Context, userID, trainerID uuid.UUID) error {
	args := m.Called(ctx, userID, trainerID)
	return args.Error(0)
}

func request(method string, userID uuid.UUID, vars map[string]string, body string) *http.Request {
	req := httptest.NewRequest(method, "/api/v1/admin/trainers", strings.NewReader(body))
	req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	return mux.SetURLVars(req, vars)
}

func TestList(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, logger.NewNop())

	userID := uuid.New()
	fieldID := uuid.New()
	svc.On("List", mock.Anything, userID, fieldID).Return(&models.TrainerListResponse{
		Trainers: []models.TrainerResponse{{ID: uuid.New(), FieldID: fieldID, Name: "Maria Ionescu", IsActive: true}},
	}, nil)

	rec := httptest.NewRecorder()
	h.List(rec, request(http.MethodGet, userID, map[string]string{"fieldId": fieldID.String()}, ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TrainerListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Trainers, 1)
	assert.Equal(t, "Maria Ionescu", resp.Trainers[0].Name)
	svc.AssertExpectations(t)
}

func TestList_AccessDenied(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, mock.Anything, mock.Anything).Return(nil, trainers.ErrAccessDenied)
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.List(rec, request(http.MethodGet, uuid.New(), map[string]string{"fieldId": uuid.NewString()}, ""))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreate(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, logger.NewNop())

	userID := uuid.New()
	fieldID := uuid.New()
	trainerID := uuid.New()
	svc.On("Create", mock.Anything, mock.MatchedBy(func(req *models.CreateTrainerRequest) bool {
		return req.UserID == userID && req.FieldID == fieldID && req.Name == "Maria Ionescu" &&
			req.Phone != nil && *req.Phone == "+40 722 000 111"
	})).Return(&models.TrainerResponse{
		ID:       trainerID,
		FieldID:  fieldID,
		Name:     "Maria Ionescu",
		Phone:    ptr.Ptr("+40 722 000 111"),
		IsActive: true,
	}, nil)

	rec := httptest.NewRecorder()
	h.Create(rec, request(http.MethodPost, userID, map[string]string{"fieldId": fieldID.String()},
		`{"name":"Maria Ionescu","phone":"+40 722 000 111"}`))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.TrainerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, trainerID, resp.ID)
	svc.AssertExpectations(t)
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fieldID string
		body    string
		err     error
		want    int
	}{
		{name: "invalid field id", fieldID: "abc", body: `{"name":"A"}`, want: http.StatusBadRequest},
		{name: "invalid body", fieldID: uuid.NewString(), body: `{"name":`, want: http.StatusBadRequest},
		{name: "invalid data", fieldID: uuid.NewString(), body: `{"name":""}`, err: trainers.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "access denied", fieldID: uuid.NewString(), body: `{"name":"A"}`, err: trainers.ErrAccessDenied, want: http.StatusForbidden},
		{name: "internal", fieldID: uuid.NewString(), body: `{"name":"A"}`, err: trainers.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Create", mock.Anything, mock.Anything).Return(nil, tt.err).Maybe()
			h := NewHandler(svc, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Create(rec, request(http.MethodPost, uuid.New(), map[string]string{"fieldId": tt.fieldID}, tt.body))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestDeactivate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "deactivated", want: http.StatusNoContent},
		{name: "not found", err: trainers.ErrTrainerNotFound, want: http.StatusNotFound},
		{name: "access denied", err: trainers.ErrAccessDenied, want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			h := NewHandler(svc, logger.NewNop())

			userID := uuid.New()
			trainerID := uuid.New()
			svc.On("Deactivate", mock.Anything, userID, trainerID).Return(tt.err)

			rec := httptest.NewRecorder()
			h.Deactivate(rec, request(http.MethodDelete, userID, map[string]string{"trainerId": trainerID.String()}, ""))

			assert.Equal(t, tt.want, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestUnauthorized(t *testing.T) {
	h := NewHandler(&mockService{}, logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/fields/x/trainers", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

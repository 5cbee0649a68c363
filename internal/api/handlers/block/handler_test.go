package block

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-FieldBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBooking/internal/service/fields"
	"github.com/m04kA/SMC-FieldBooking/internal/service/fields/models"
	"github.com/m04kA/SMC-FieldBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) BlockField(ctx context.Context, fieldID uuid.UUID, req *models.BlockRequest) (*models.BlockResponse, error) {
	args := m.Called(ctx, fieldID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlockResponse), args.Error(1)
}

func (m *mockService) BlockCourt(ctx context.Context, courtID uuid.UUID, req *models.BlockRequest) (*models.BlockResponse, error) {
	args := m.Called(ctx, courtID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlockResponse), args.Error(1)
}

func request(userID uuid.UUID, vars map[string]string, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/block", strings.NewReader(body))
	req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	return mux.SetURLVars(req, vars)
}

func TestField(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, logger.NewNop())

	userID := uuid.New()
	fieldID := uuid.New()
	svc.On("BlockField", mock.Anything, fieldID, mock.MatchedBy(func(req *models.BlockRequest) bool {
		return req.UserID == userID && req.IsBlocked &&
			req.BlockedUntil != nil && *req.BlockedUntil == "2025-07-01"
	})).Return(&models.BlockResponse{IsBlocked: true}, nil)

	rec := httptest.NewRecorder()
	h.Field(rec, request(userID, map[string]string{"fieldId": fieldID.String()},
		`{"isBlocked":true,"reason":"Renovare","blockedUntil":"2025-07-01"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestCourt(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, logger.NewNop())

	courtID := uuid.New()
	svc.On("BlockCourt", mock.Anything, courtID, mock.Anything).Return(&models.BlockResponse{}, nil)

	rec := httptest.NewRecorder()
	h.Court(rec, request(uuid.New(), map[string]string{"courtId": courtID.String()}, `{"isBlocked":false}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestCourt_Errors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{err: fields.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{err: fields.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{err: fields.ErrCourtNotFound, wantStatus: http.StatusNotFound},
		{err: fields.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			svc := &mockService{}
			svc.On("BlockCourt", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)
			h := NewHandler(svc, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Court(rec, request(uuid.New(), map[string]string{"courtId": uuid.NewString()}, `{"isBlocked":true}`))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

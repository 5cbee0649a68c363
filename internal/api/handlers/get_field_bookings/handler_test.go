package get_field_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBooking/internal/service/bookings"
	"github.com/m04kA/SMC-FieldBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-FieldBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetFieldBookings(ctx context.Context, req *models.GetFieldBookingsRequest) (*models.BookingListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingListResponse), args.Error(1)
}

func request(userID uuid.UUID, fieldID, query string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/fields/"+fieldID+"/bookings"+query, nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	return mux.SetURLVars(req, map[string]string{"fieldId": fieldID})
}

func TestHandle_PassesFilters(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, logger.NewNop())

	userID := uuid.New()
	fieldID := uuid.New()
	courtID := uuid.New()

	svc.On("GetFieldBookings", mock.Anything, mock.MatchedBy(func(req *models.GetFieldBookingsRequest) bool {
		return req.UserID == userID && req.FieldID == fieldID &&
			req.Date != nil && req.Date.Equal(time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)) &&
			req.CourtID != nil && *req.CourtID == courtID &&
			req.Status != nil && *req.Status == "cancelled"
	})).Return(&models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil)

	rec := httptest.NewRecorder()
	h.Handle(rec, request(userID, fieldID.String(), "?date=2025-06-12&status=cancelled&courtId="+courtID.String()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"bookings":[]}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestHandle_NoFilters(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, logger.NewNop())

	svc.On("GetFieldBookings", mock.Anything, mock.MatchedBy(func(req *models.GetFieldBookingsRequest) bool {
		return req.Date == nil && req.CourtID == nil && req.Status == nil
	})).Return(&models.BookingListResponse{}, nil)

	rec := httptest.NewRecorder()
	h.Handle(rec, request(uuid.New(), uuid.NewString(), ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	t.Run("invalid court id", func(t *testing.T) {
		svc := &mockService{}
		h := NewHandler(svc, logger.NewNop())

		rec := httptest.NewRecorder()
		h.Handle(rec, request(uuid.New(), uuid.NewString(), "?courtId=7"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "GetFieldBookings", mock.Anything, mock.Anything)
	})

	tests := []struct {
		err        error
		wantStatus int
	}{
		{err: bookings.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{err: bookings.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{err: bookings.ErrInternal, wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			svc := &mockService{}
			svc.On("GetFieldBookings", mock.Anything, mock.Anything).Return(nil, tt.err)
			h := NewHandler(svc, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, request(uuid.New(), uuid.NewString(), "?status=all"))

			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

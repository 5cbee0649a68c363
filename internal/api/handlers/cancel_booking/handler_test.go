package cancel_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

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

func (m *mockService) Cancel(ctx context.Context, bookingID, userID uuid.UUID) (*models.BookingResponse, error) {
	args := m.Called(ctx, bookingID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResponse), args.Error(1)
}

func request(userID uuid.UUID, bookingID string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+bookingID+"/cancel", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	return mux.SetURLVars(req, map[string]string{"bookingId": bookingID})
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, logger.NewNop())

	userID := uuid.New()
	bookingID := uuid.New()
	svc.On("Cancel", mock.Anything, bookingID, userID).
		Return(&models.BookingResponse{ID: bookingID, Status: "cancelled"}, nil)

	rec := httptest.NewRecorder()
	h.Handle(rec, request(userID, bookingID.String()))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{err: bookings.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{err: bookings.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{err: bookings.ErrCannotCancel, wantStatus: http.StatusBadRequest},
		{err: fmt.Errorf("%w: db down", bookings.ErrInternal), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			svc := &mockService{}
			svc.On("Cancel", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)
			h := NewHandler(svc, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, request(uuid.New(), uuid.NewString()))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_InvalidID(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, request(uuid.New(), "abc"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
}

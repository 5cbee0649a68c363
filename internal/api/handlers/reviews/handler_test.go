package reviews

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-FieldBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBooking/internal/service/reviews"
	"github.com/m04kA/SMC-FieldBooking/internal/service/reviews/models"
	"github.com/m04kA/SMC-FieldBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context, fieldID uuid.UUID) (*models.ReviewListResponse, error) {
	args := m.Called(ctx, fieldID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReviewListResponse), args.Error(1)
}

func (m *mockService) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReviewResponse), args.Error(1)
}

func TestList(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "ok", want: http.StatusOK},
		{name: "field not found", err: reviews.ErrFieldNotFound, want: http.StatusNotFound},
		{name: "internal", err: reviews.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			h := NewHandler(svc, logger.NewNop())

			fieldID := uuid.New()
			if tt.err != nil {
				svc.On("List", mock.Anything, fieldID).Return(nil, tt.err)
			} else {
				svc.On("List", mock.Anything, fieldID).Return(&models.ReviewListResponse{
					Reviews: []models.ReviewResponse{},
					Average: 4.5,
					Count:   2,
				}, nil)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/fields/"+fieldID.String()+"/reviews", nil)
			req = mux.SetURLVars(req, map[string]string{"fieldId": fieldID.String()})
			rec := httptest.NewRecorder()
			h.List(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "created", want: http.StatusCreated},
		{name: "invalid rating", err: reviews.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "booking not found", err: reviews.ErrBookingNotFound, want: http.StatusNotFound},
		{name: "foreign booking", err: reviews.ErrAccessDenied, want: http.StatusForbidden},
		{name: "not completed", err: reviews.ErrNotReviewable, want: http.StatusBadRequest},
		{name: "already reviewed", err: reviews.ErrAlreadyReviewed, want: http.StatusConflict},
		{name: "internal", err: reviews.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			h := NewHandler(svc, logger.NewNop())

			userID := uuid.New()
			fieldID := uuid.New()
			bookingID := uuid.New()

			matcher := mock.MatchedBy(func(req *models.CreateReviewRequest) bool {
				return req.UserID == userID && req.FieldID == fieldID && req.BookingID == bookingID && req.Rating == 5
			})
			if tt.err != nil {
				svc.On("Create", mock.Anything, matcher).Return(nil, tt.err)
			} else {
				svc.On("Create", mock.Anything, matcher).Return(&models.ReviewResponse{
					ID:        uuid.New(),
					FieldID:   fieldID,
					BookingID: bookingID,
					Rating:    5,
				}, nil)
			}

			body := fmt.Sprintf(`{"bookingId":"%s","rating":5,"comment":"Teren excelent"}`, bookingID)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/fields/"+fieldID.String()+"/reviews", strings.NewReader(body))
			req = req.WithContext(middleware.WithUserID(req.Context(), userID))
			req = mux.SetURLVars(req, map[string]string{"fieldId": fieldID.String()})
			rec := httptest.NewRecorder()
			h.Create(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestCreate_Unauthorized(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, logger.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/fields/x/reviews", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

package get_field

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldBooking/internal/service/fields"
	"github.com/m04kA/SMC-FieldBooking/internal/service/fields/models"
	"github.com/m04kA/SMC-FieldBooking/pkg/logger"
	"github.com/m04kA/SMC-FieldBooking/pkg/ptr"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetDetails(ctx context.Context, fieldID uuid.UUID) (*models.FieldDetailsResponse, error) {
	args := m.Called(ctx, fieldID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FieldDetailsResponse), args.Error(1)
}

func request(fieldID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/fields/"+fieldID, nil)
	return mux.SetURLVars(req, map[string]string{"fieldId": fieldID})
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, logger.NewNop())

	fieldID := uuid.New()
	svc.On("GetDetails", mock.Anything, fieldID).Return(&models.FieldDetailsResponse{
		Field:     models.FieldResponse{ID: fieldID, Name: "Arena"},
		Courts:    []models.CourtResponse{{Name: "Teren 1"}},
		Amenities: []models.AmenityResponse{},
	}, nil)

	rec := httptest.NewRecorder()
	h.Handle(rec, request(fieldID.String()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Teren 1"`)
}

func TestHandle_Blocked(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, logger.NewNop())

	until := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	svc.On("GetDetails", mock.Anything, mock.Anything).
		Return(nil, &fields.BlockedError{Reason: ptr.Ptr("Renovare"), BlockedUntil: &until})

	rec := httptest.NewRecorder()
	h.Handle(rec, request(uuid.NewString()))

	require.Equal(t, http.StatusLocked, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "field_blocked", body["reason"])
	assert.Equal(t, "2025-07-01", body["blockedUntil"])
	assert.Contains(t, body["error"], "Renovare")
}

func TestHandle_NotFound(t *testing.T) {
	svc := &mockService{}
	svc.On("GetDetails", mock.Anything, mock.Anything).Return(nil, fields.ErrFieldNotFound)
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, request(uuid.NewString()))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

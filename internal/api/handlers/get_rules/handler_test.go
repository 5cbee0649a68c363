package get_rules

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldBooking/internal/service/rules"
	"github.com/m04kA/SMC-FieldBooking/internal/service/rules/models"
	"github.com/m04kA/SMC-FieldBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Get(ctx context.Context, fieldID uuid.UUID) (*models.RulesResponse, error) {
	args := m.Called(ctx, fieldID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RulesResponse), args.Error(1)
}

func request(fieldID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/fields/"+fieldID+"/rules", nil)
	return mux.SetURLVars(req, map[string]string{"fieldId": fieldID})
}

func TestHandle_Defaults(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, logger.NewNop())

	fieldID := uuid.New()
	svc.On("Get", mock.Anything, fieldID).Return(&models.RulesResponse{
		FieldID:                fieldID,
		SlotStepMinutes:        60,
		DefaultDurationMinutes: 60,
		AllowedDurations:       []int{60, 90, 120},
		AdvanceBookingDays:     30,
		LateDiscountPercent:    20,
		IsDefault:              true,
	}, nil)

	rec := httptest.NewRecorder()
	h.Handle(rec, request(fieldID.String()))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.RulesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.IsDefault)
	assert.Equal(t, []int{60, 90, 120}, resp.AllowedDurations)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fieldID string
		err     error
		want    int
	}{
		{name: "invalid field id", fieldID: "abc", want: http.StatusBadRequest},
		{name: "field not found", fieldID: uuid.NewString(), err: rules.ErrFieldNotFound, want: http.StatusNotFound},
		{name: "internal", fieldID: uuid.NewString(), err: rules.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Get", mock.Anything, mock.Anything).Return(nil, tt.err).Maybe()
			h := NewHandler(svc, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, request(tt.fieldID))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

package revenue

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

	"github.com/m04kA/SMC-FieldBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBooking/internal/service/revenue"
	"github.com/m04kA/SMC-FieldBooking/internal/service/revenue/models"
	"github.com/m04kA/SMC-FieldBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Report(ctx context.Context, req *models.ReportRequest) (*models.ReportResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReportResponse), args.Error(1)
}

func (m *mockService) Export(ctx context.Context, req *models.ReportRequest) (*models.ExportResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExportResponse), args.Error(1)
}

func request(userID uuid.UUID, fieldID, path string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	return mux.SetURLVars(req, map[string]string{"fieldId": fieldID})
}

func TestReport(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, logger.NewNop())

	userID := uuid.New()
	fieldID := uuid.New()
	svc.On("Report", mock.Anything, mock.MatchedBy(func(req *models.ReportRequest) bool {
		return req.UserID == userID && req.FieldID == fieldID &&
			req.From != nil && *req.From == "2025-10-01" && req.To == nil
	})).Return(&models.ReportResponse{
		FieldID: fieldID,
		From:    "2025-10-01",
		To:      "2025-10-15",
		Rows:    []models.RevenueRowResponse{{Date: "2025-10-03", Revenue: 300, Bookings: 2}},
		Totals:  models.TotalsResponse{TotalRevenue: 300, TotalBookings: 2, PaidBookings: 2},
	}, nil)

	rec := httptest.NewRecorder()
	h.Report(rec, request(userID, fieldID.String(), "/api/v1/admin/fields/"+fieldID.String()+"/revenue?from=2025-10-01"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 300.0, resp.Totals.TotalRevenue)
	require.Len(t, resp.Rows, 1)
	svc.AssertExpectations(t)
}

func TestReport_Errors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: revenue.ErrInvalidInput, want: http.StatusBadRequest},
		{err: revenue.ErrAccessDenied, want: http.StatusForbidden},
		{err: revenue.ErrFieldNotFound, want: http.StatusNotFound},
		{err: revenue.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			svc := &mockService{}
			svc.On("Report", mock.Anything, mock.Anything).Return(nil, tt.err)
			h := NewHandler(svc, logger.NewNop())

			fieldID := uuid.NewString()
			rec := httptest.NewRecorder()
			h.Report(rec, request(uuid.New(), fieldID, "/api/v1/admin/fields/"+fieldID+"/revenue"))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestExport(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, logger.NewNop())

	content := []byte("PK\x03\x04xlsx")
	svc.On("Export", mock.Anything, mock.Anything).Return(&models.ExportResponse{
		FileName: "venituri_2025-10-01_2025-10-15.xlsx",
		Content:  content,
	}, nil)

	fieldID := uuid.NewString()
	rec := httptest.NewRecorder()
	h.Export(rec, request(uuid.New(), fieldID, "/api/v1/admin/fields/"+fieldID+"/revenue/export"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="venituri_2025-10-01_2025-10-15.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, content, rec.Body.Bytes())
}

func TestExport_InvalidFieldID(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Export(rec, request(uuid.New(), "abc", "/api/v1/admin/fields/abc/revenue/export"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Export", mock.Anything, mock.Anything)
}

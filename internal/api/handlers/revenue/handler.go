package revenue

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-FieldBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBooking/internal/service/revenue"
	"github.com/m04kA/SMC-FieldBooking/internal/service/revenue/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	msgUnauthorized   = "utilizator neautentificat"
	msgInvalidFieldID = "ID-ul terenului este invalid"
	msgInvalidPeriod  = "perioada selectată este invalidă"
	msgFieldNotFound  = "terenul nu a fost găsit"
	msgForbidden      = "acces interzis"
)

type Handler struct {
	service RevenueService
	logger  Logger
}

func NewHandler(service RevenueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Report GET /api/v1/admin/fields/{fieldId}/revenue?from=&to=
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseRequest(w, r, "GET /admin/fields/{id}/revenue")
	if !ok {
		return
	}

	result, err := h.service.Report(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, "GET /admin/fields/{id}/revenue", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Export GET /api/v1/admin/fields/{fieldId}/revenue/export?from=&to=
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseRequest(w, r, "GET /admin/fields/{id}/revenue/export")
	if !ok {
		return
	}

	result, err := h.service.Export(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, "GET /admin/fields/{id}/revenue/export", err)
		return
	}

	h.logger.Info("GET /admin/fields/{id}/revenue/export - Report exported: field_id=%s, file=%s, size=%d",
		req.FieldID, result.FileName, len(result.Content))

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Content); err != nil {
		h.logger.Warn("GET /admin/fields/{id}/revenue/export - Failed to write response: %v", err)
	}
}

func (h *Handler) parseRequest(w http.ResponseWriter, r *http.Request, route string) (*models.ReportRequest, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return nil, false
	}

	fieldID, err := handlers.PathUUID(r, "fieldId")
	if err != nil {
		h.logger.Warn("%s - Invalid field ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return nil, false
	}

	return &models.ReportRequest{
		UserID:  userID,
		FieldID: fieldID,
		From:    handlers.QueryString(r, "from"),
		To:      handlers.QueryString(r, "to"),
	}, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, revenue.ErrInvalidInput):
		h.logger.Warn("%s - Invalid period: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
	case errors.Is(err, revenue.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: %v", route, err)
		handlers.RespondForbidden(w, msgForbidden)
	case errors.Is(err, revenue.ErrFieldNotFound):
		handlers.RespondNotFound(w, msgFieldNotFound)
	default:
		h.logger.Error("%s - Service error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}

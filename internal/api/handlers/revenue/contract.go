package revenue

import (
	"context"

	"github.com/m04kA/SMC-FieldBooking/internal/service/revenue/models"
)

type RevenueService interface {
	Report(ctx context.Context, req *models.ReportRequest) (*models.ReportResponse, error)
	Export(ctx context.Context, req *models.ReportRequest) (*models.ExportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package search_fields

import (
	"context"

	"github.com/m04kA/SMC-FieldBooking/internal/service/fields/models"
)

type FieldService interface {
	Search(ctx context.Context, req *models.SearchRequest) (*models.FieldListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

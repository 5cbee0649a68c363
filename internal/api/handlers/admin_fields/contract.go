package admin_fields

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/service/fields/models"
)

type FieldService interface {
	ListOwned(ctx context.Context, userID uuid.UUID) (*models.FieldListResponse, error)
	ListCourts(ctx context.Context, userID, fieldID uuid.UUID) ([]models.CourtResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

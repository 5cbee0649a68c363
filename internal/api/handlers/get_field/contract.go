package get_field

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/service/fields/models"
)

type FieldService interface {
	GetDetails(ctx context.Context, fieldID uuid.UUID) (*models.FieldDetailsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

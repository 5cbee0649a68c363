package block

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/service/fields/models"
)

type FieldService interface {
	BlockField(ctx context.Context, fieldID uuid.UUID, req *models.BlockRequest) (*models.BlockResponse, error)
	BlockCourt(ctx context.Context, courtID uuid.UUID, req *models.BlockRequest) (*models.BlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

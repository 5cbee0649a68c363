package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/service/profiles/models"
)

type ProfileService interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.ProfileResponse, error)
	Update(ctx context.Context, req *models.UpdateProfileRequest) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

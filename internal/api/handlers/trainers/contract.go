package trainers

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/service/trainers/models"
)

type TrainerService interface {
	List(ctx context.Context, userID, fieldID uuid.UUID) (*models.TrainerListResponse, error)
	Create(ctx context.Context, req *models.CreateTrainerRequest) (*models.TrainerResponse, error)
	Deactivate(ctx context.Context, userID, trainerID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

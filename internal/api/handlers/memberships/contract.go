package memberships

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/service/memberships/models"
)

type MembershipService interface {
	List(ctx context.Context, userID, fieldID uuid.UUID) (*models.MembershipListResponse, error)
	Create(ctx context.Context, req *models.CreateMembershipRequest) (*models.MembershipResponse, error)
	Delete(ctx context.Context, userID, membershipID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

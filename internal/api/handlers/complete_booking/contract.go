package complete_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/service/bookings/models"
)

type BookingService interface {
	Complete(ctx context.Context, bookingID, userID uuid.UUID) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

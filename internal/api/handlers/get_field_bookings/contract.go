package get_field_bookings

import (
	"context"

	"github.com/m04kA/SMC-FieldBooking/internal/service/bookings/models"
)

type BookingService interface {
	GetFieldBookings(ctx context.Context, req *models.GetFieldBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_field_bookings

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBooking/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос к сервису из query параметров date, status, courtId
func ToServiceRequest(r *http.Request, userID, fieldID uuid.UUID) (*models.GetFieldBookingsRequest, error) {
	req := &models.GetFieldBookingsRequest{
		UserID:  userID,
		FieldID: fieldID,
		Status:  handlers.QueryString(r, "status"),
	}

	date, ok, err := handlers.QueryDate(r, "date")
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}
	if ok {
		req.Date = &date
	}

	if raw := handlers.QueryString(r, "courtId"); raw != nil {
		courtID, err := uuid.Parse(*raw)
		if err != nil {
			return nil, fmt.Errorf("courtId: %w", err)
		}
		req.CourtID = &courtID
	}

	return req, nil
}

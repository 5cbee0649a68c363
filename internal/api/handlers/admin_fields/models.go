package admin_fields

import (
	"github.com/m04kA/SMC-FieldBooking/internal/service/fields/models"
)

// CourtListResponse HTTP response model со списком кортов поля
type CourtListResponse struct {
	Courts []models.CourtResponse `json:"courts"`
}

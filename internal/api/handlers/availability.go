package handlers

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/availability"
)

// CourtAvailabilityResponse доступность корта в слоте
type CourtAvailabilityResponse struct {
	CourtID   uuid.UUID `json:"courtId"`
	Name      string    `json:"name"`
	Available bool      `json:"available"`
	Reason    string    `json:"reason,omitempty"`
	Label     string    `json:"label,omitempty"`
}

// FromCourtAvailability конвертирует доступность кортов слота
func FromCourtAvailability(courts []availability.CourtAvailability) []CourtAvailabilityResponse {
	resp := make([]CourtAvailabilityResponse, 0, len(courts))
	for _, c := range courts {
		resp = append(resp, CourtAvailabilityResponse{
			CourtID:   c.CourtID,
			Name:      c.Name,
			Available: c.Available,
			Reason:    string(c.Reason),
			Label:     c.Label,
		})
	}
	return resp
}

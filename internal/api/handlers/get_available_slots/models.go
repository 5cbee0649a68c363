package get_available_slots

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-FieldBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-FieldBooking/pkg/ptr"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	FieldID         uuid.UUID       `json:"fieldId"`
	Date            string          `json:"date"`
	DurationMinutes int             `json:"durationMinutes"`
	SlotStepMinutes int             `json:"slotStepMinutes"`
	Blocked         bool            `json:"blocked"`
	BlockedReason   *string         `json:"blockedReason,omitempty"`
	BlockedUntil    *string         `json:"blockedUntil,omitempty"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot слот сетки с ценой
type AvailableSlot struct {
	StartTime string                               `json:"startTime"`
	EndTime   string                               `json:"endTime"`
	Available bool                                 `json:"available"`
	Price     float64                              `json:"price"`
	Reason    string                               `json:"reason,omitempty"`
	Label     string                               `json:"label,omitempty"`
	Courts    []handlers.CourtAvailabilityResponse `json:"courts"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		FieldID:         resp.FieldID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		SlotStepMinutes: resp.SlotStepMinutes,
		Blocked:         resp.Blocked,
		BlockedReason:   resp.BlockedReason,
		Slots:           make([]AvailableSlot, 0, len(resp.Slots)),
	}
	if resp.BlockedUntil != nil {
		out.BlockedUntil = ptr.Ptr(resp.BlockedUntil.Format(domain.DateFormat))
	}

	for _, slot := range resp.Slots {
		out.Slots = append(out.Slots, AvailableSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Available: slot.Available,
			Price:     slot.Price,
			Reason:    string(slot.Reason),
			Label:     slot.Label,
			Courts:    handlers.FromCourtAvailability(slot.Courts),
		})
	}

	return out
}

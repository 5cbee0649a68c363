package get_day_schedule

import (
	"github.com/m04kA/SMC-FieldBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	bookingModels "github.com/m04kA/SMC-FieldBooking/internal/service/bookings/models"
	fieldModels "github.com/m04kA/SMC-FieldBooking/internal/service/fields/models"
	lessonModels "github.com/m04kA/SMC-FieldBooking/internal/service/lessons/models"
	membershipModels "github.com/m04kA/SMC-FieldBooking/internal/service/memberships/models"
	getDaySchedule "github.com/m04kA/SMC-FieldBooking/internal/usecase/get_day_schedule"
)

// DayScheduleResponse HTTP response model
type DayScheduleResponse struct {
	Field           fieldModels.FieldResponse             `json:"field"`
	Courts          []fieldModels.CourtResponse           `json:"courts"`
	Date            string                                `json:"date"`
	Blocked         bool                                  `json:"blocked"`
	DurationMinutes int                                   `json:"durationMinutes"`
	Bookings        []bookingModels.BookingResponse       `json:"bookings"`
	Lessons         []lessonModels.LessonResponse         `json:"lessons"`
	Memberships     []membershipModels.MembershipResponse `json:"memberships"`
	Slots           []ScheduleSlot                        `json:"slots"`
}

// ScheduleSlot слот сетки расписания
type ScheduleSlot struct {
	StartTime string                               `json:"startTime"`
	EndTime   string                               `json:"endTime"`
	Available bool                                 `json:"available"`
	Reason    string                               `json:"reason,omitempty"`
	Label     string                               `json:"label,omitempty"`
	Courts    []handlers.CourtAvailabilityResponse `json:"courts"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response) *DayScheduleResponse {
	out := &DayScheduleResponse{
		Field:           fieldModels.FromDomainField(resp.Field),
		Courts:          fieldModels.FromDomainCourts(resp.Courts),
		Date:            resp.Date.Format(domain.DateFormat),
		Blocked:         resp.Blocked,
		DurationMinutes: resp.DurationMinutes,
		Bookings:        bookingModels.FromDomainBookingList(resp.Bookings).Bookings,
		Lessons:         lessonModels.FromDomainLessons(resp.Lessons),
		Memberships:     membershipModels.FromDomainMembershipList(resp.Memberships).Memberships,
		Slots:           make([]ScheduleSlot, 0, len(resp.Slots)),
	}

	for _, slot := range resp.Slots {
		out.Slots = append(out.Slots, ScheduleSlot{
			StartTime: slot.Start.String(),
			EndTime:   slot.End.String(),
			Available: slot.Available,
			Reason:    string(slot.Reason),
			Label:     slot.Label,
			Courts:    handlers.FromCourtAvailability(slot.Courts),
		})
	}

	return out
}

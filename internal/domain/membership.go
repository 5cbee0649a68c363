package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/pkg/types"
)

// Membership represents a recurring weekly reservation ("abonament")
type Membership struct {
	ID         uuid.UUID
	FieldID    uuid.UUID
	CourtID    *uuid.UUID // nil = the whole field
	MemberName string
	UserID     *uuid.UUID
	DayOfWeek  int // 0 = Sunday ... 6 = Saturday
	StartTime  types.TimeString
	EndTime    types.TimeString
	StartDate  time.Time
	EndDate    time.Time
	Notes      *string
	CreatedBy  uuid.UUID
	CreatedAt  time.Time
}

// AppliesOn returns true if the membership occupies its time range on the given date
func (m *Membership) AppliesOn(date time.Time) bool {
	if int(date.Weekday()) != m.DayOfWeek {
		return false
	}
	d := DateOnly(date)
	return !d.Before(DateOnly(m.StartDate)) && !d.After(DateOnly(m.EndDate))
}

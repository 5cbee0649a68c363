package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/pkg/types"
)

// Lesson represents a training session that occupies a court
type Lesson struct {
	ID              uuid.UUID
	FieldID         uuid.UUID
	CourtID         *uuid.UUID // nil = the whole field
	TrainerID       uuid.UUID
	LessonDate      time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Notes           *string
	CreatedBy       uuid.UUID

	// Denormalized trainer data for the schedule
	TrainerName  string
	TrainerPhone *string

	CreatedAt time.Time
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trainer represents a coach attached to a field.
// Trainers are never physically deleted, only deactivated.
type Trainer struct {
	ID        uuid.UUID
	FieldID   uuid.UUID
	Name      string
	Phone     *string
	Email     *string
	Notes     *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

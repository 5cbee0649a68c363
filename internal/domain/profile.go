package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents a user profile. ID equals the auth subject.
type Profile struct {
	ID        uuid.UUID
	FullName  *string
	Phone     *string
	AvatarURL *string
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

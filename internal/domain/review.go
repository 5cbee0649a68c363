package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinReviewRating        = 1
	MaxReviewRating        = 5
	MaxReviewCommentLength = 1000
)

// Review represents a user's rating of a field after a completed booking.
// One review per booking.
type Review struct {
	ID         uuid.UUID
	FieldID    uuid.UUID
	UserID     uuid.UUID
	BookingID  uuid.UUID
	Rating     int
	Comment    *string
	AuthorName *string // profiles.full_name, read-only
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ReviewStats aggregated rating of a field
type ReviewStats struct {
	Average float64
	Count   int
}

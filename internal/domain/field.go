package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/pkg/types"
)

// Block represents a field- or court-level block.
// BlockedUntil == nil means the block is indefinite.
type Block struct {
	IsBlocked    bool
	Reason       *string
	BlockedUntil *time.Time
}

// ActiveOn returns true if the block is in force on the given date
func (b Block) ActiveOn(date time.Time) bool {
	if !b.IsBlocked {
		return false
	}
	if b.BlockedUntil == nil {
		return true
	}
	return !DateOnly(date).After(DateOnly(*b.BlockedUntil))
}

// Field represents a sports venue
type Field struct {
	ID           uuid.UUID
	Name         string
	Sport        string
	Surface      *string
	PricePerHour float64
	Location     string
	City         string
	ImageURL     *string
	Rating       float64
	ReviewCount  int
	IsActive     bool
	OpeningTime  types.TimeString
	ClosingTime  types.TimeString
	Block        Block

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpenBetween returns true if [start, end) lies within opening hours
func (f *Field) IsOpenBetween(start, end types.TimeString) bool {
	return !start.IsBefore(f.OpeningTime) && !end.IsAfter(f.ClosingTime)
}

// Court represents a bookable sub-unit of a field
type Court struct {
	ID        uuid.UUID
	FieldID   uuid.UUID
	Name      string
	IsActive  bool
	Block     Block
	CreatedAt time.Time
}

// Amenity represents a facility offered by a field (parking, showers, ...)
type Amenity struct {
	ID   uuid.UUID
	Name string
	Icon *string
}

// FieldSearchFilter filter for the public field search
type FieldSearchFilter struct {
	City  string  // Required, compared without case and diacritics
	Sport *string // Optional
}

// DateOnly returns the calendar date of t (in t's own location) as UTC midnight,
// the same representation the driver uses for DATE columns
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay returns true if both times fall on the same calendar date
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

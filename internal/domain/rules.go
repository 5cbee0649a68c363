package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/pkg/types"
)

// BookingRules represents the booking configuration of a field.
// A field without its own row gets the service-wide defaults (IsDefault = true).
type BookingRules struct {
	FieldID                 uuid.UUID
	SlotStepMinutes         int
	DefaultDurationMinutes  int
	AdvanceBookingDays      int // 0 = unlimited
	MinBookingNoticeMinutes int
	LateDiscountFrom        *types.TimeString // nil = no late discount
	LateDiscountPercent     float64
	IsDefault               bool
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made
func (r *BookingRules) HasAdvanceBookingLimit() bool {
	return r.AdvanceBookingDays > 0
}

// HasLateDiscount returns true if late-hour bookings are discounted
func (r *BookingRules) HasLateDiscount() bool {
	return r.LateDiscountFrom != nil && r.LateDiscountPercent > 0
}

// LastBookableDate returns the last date that may be booked from now
func (r *BookingRules) LastBookableDate(now time.Time) (time.Time, bool) {
	if !r.HasAdvanceBookingLimit() {
		return time.Time{}, false
	}
	return DateOnly(now).AddDate(0, 0, r.AdvanceBookingDays), true
}

// EarliestStart returns the earliest slot start that may still be booked on date.
// It applies only when date is today: now plus the notice, with a started minute counted as gone.
// The result is capped at 24:00, which leaves nothing bookable.
func (r *BookingRules) EarliestStart(date, now time.Time) (types.TimeString, bool) {
	if !SameDay(DateOnly(date), DateOnly(now)) {
		return types.TimeString{}, false
	}

	minutes := now.Hour()*60 + now.Minute() + r.MinBookingNoticeMinutes
	if now.Second() > 0 || now.Nanosecond() > 0 {
		minutes++
	}
	if minutes > types.MaxMinutes {
		minutes = types.MaxMinutes
	}
	earliest, _ := types.NewTimeStringFromMinutes(minutes)
	return earliest, true
}

// PriceFor returns the total price of a booking of the given length starting at start
func (r *BookingRules) PriceFor(pricePerHour float64, start types.TimeString, durationMinutes int) float64 {
	discount := 0.0
	if r.HasLateDiscount() && !start.IsBefore(*r.LateDiscountFrom) {
		discount = r.LateDiscountPercent
	}
	return CalculatePrice(pricePerHour, durationMinutes, discount)
}

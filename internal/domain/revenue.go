package domain

import (
	"time"

	"github.com/google/uuid"
)

// RevenueRow aggregated revenue of a single date
type RevenueRow struct {
	Date     time.Time
	Revenue  float64 // sum of total_price of paid bookings
	Bookings int
}

// RevenueReport revenue of a field over a date range
type RevenueReport struct {
	FieldID        uuid.UUID
	FieldName      string
	From           time.Time
	To             time.Time
	Rows           []RevenueRow
	TotalRevenue   float64
	TotalBookings  int
	PaidBookings   int
	UnpaidBookings int
}

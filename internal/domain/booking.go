package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// BookingSource tells who created the booking
type BookingSource string

const (
	SourceUser  BookingSource = "user"
	SourceAdmin BookingSource = "admin" // phone booking entered by a field admin
)

// Booking represents a court reservation
type Booking struct {
	ID              uuid.UUID
	FieldID         uuid.UUID
	CourtID         *uuid.UUID // nil for fields without courts
	UserID          uuid.UUID
	BookingDate     time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	PricePerHour    float64
	TotalPrice      float64
	Status          BookingStatus
	PaymentStatus   PaymentStatus
	Source          BookingSource

	// Phone bookings
	CustomerName  *string
	CustomerPhone *string
	Notes         *string

	// Joined for listings
	FieldName string
	CourtName *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesTime returns true if the booking takes its time range on the court
func (b *Booking) OccupiesTime() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCompleted returns true if the booking can be marked as completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsPaid returns true if the booking has been paid
func (b *Booking) IsPaid() bool {
	return b.PaymentStatus == PaymentPaid
}

// IsValidBookingStatus checks the status value
func IsValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsValidPaymentStatus checks the payment status value
func IsValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// OccupyingStatuses statuses of bookings that take time on a court
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

// RevenueStatuses statuses of bookings counted in revenue reports
var RevenueStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCompleted,
}

// AdminListStatuses statuses shown by the admin booking list when no status is selected
var AdminListStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCancelled,
}

// FieldBookingsFilter фильтр бронирований поля
type FieldBookingsFilter struct {
	FieldID   uuid.UUID       // Обязательный параметр
	CourtID   *uuid.UUID      // Фильтр по корту (опционально)
	StartDate *time.Time      // Начало периода (опционально)
	EndDate   *time.Time      // Конец периода (опционально)
	Statuses  []BookingStatus // Пустой список - все статусы
}

// IsSingleDay returns true if the filter selects exactly one date
func (f FieldBookingsFilter) IsSingleDay() bool {
	return f.StartDate != nil && f.EndDate != nil && SameDay(*f.StartDate, *f.EndDate)
}

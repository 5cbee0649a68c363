package create_booking

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-FieldBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-FieldBooking/pkg/types"
)

var (
	errInvalidDateFormat = errors.New("invalid date format")
	errInvalidTimeFormat = errors.New("invalid time format")
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FieldID         uuid.UUID  `json:"fieldId"`
	CourtID         *uuid.UUID `json:"courtId,omitempty"`
	Date            string     `json:"date"`      // "2025-10-15"
	StartTime       string     `json:"startTime"` // "18:00"
	DurationMinutes int        `json:"durationMinutes"`
	Notes           *string    `json:"notes,omitempty"`
}

// CreatePhoneBookingRequest HTTP request model телефонного бронирования (поле берется из URL)
type CreatePhoneBookingRequest struct {
	CourtID         *uuid.UUID `json:"courtId,omitempty"`
	Date            string     `json:"date"`
	StartTime       string     `json:"startTime"`
	DurationMinutes int        `json:"durationMinutes"`
	CustomerName    string     `json:"customerName"`
	CustomerPhone   string     `json:"customerPhone"`
	Notes           *string    `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID uuid.UUID) (*createBooking.Request, error) {
	date, start, err := parseDateTime(r.Date, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:          userID,
		FieldID:         r.FieldID,
		CourtID:         r.CourtID,
		Date:            date,
		StartTime:       start,
		DurationMinutes: r.DurationMinutes,
		Source:          domain.SourceUser,
		Notes:           r.Notes,
	}, nil
}

// ToUseCaseRequest конвертирует HTTP запрос администратора в модель use case
func (r *CreatePhoneBookingRequest) ToUseCaseRequest(adminID, fieldID uuid.UUID) (*createBooking.Request, error) {
	date, start, err := parseDateTime(r.Date, r.StartTime)
	if err != nil {
		return nil, err
	}

	name := r.CustomerName
	phone := r.CustomerPhone
	return &createBooking.Request{
		UserID:          adminID,
		FieldID:         fieldID,
		CourtID:         r.CourtID,
		Date:            date,
		StartTime:       start,
		DurationMinutes: r.DurationMinutes,
		Source:          domain.SourceAdmin,
		CustomerName:    &name,
		CustomerPhone:   &phone,
		Notes:           r.Notes,
	}, nil
}

func parseDateTime(date, start string) (time.Time, types.TimeString, error) {
	d, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return time.Time{}, types.TimeString{}, errInvalidDateFormat
	}
	t, err := types.NewTimeStringFromString(start)
	if err != nil {
		return time.Time{}, types.TimeString{}, errInvalidTimeFormat
	}
	return d, t, nil
}

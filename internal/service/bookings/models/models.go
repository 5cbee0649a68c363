package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
)

// StatusAll значение фильтра статуса в списке администратора: confirmed + cancelled
const StatusAll = "all"

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidPaymentStatus возвращается при некорректном статусе оплаты
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID uuid.UUID `json:"userId"`
	Status *string   `json:"status,omitempty"`
}

// GetFieldBookingsRequest запрос администратора на бронирования поля
type GetFieldBookingsRequest struct {
	UserID  uuid.UUID  `json:"userId"`
	FieldID uuid.UUID  `json:"fieldId"`
	Date    *time.Time `json:"date,omitempty"`    // Фильтр по дате (опционально)
	CourtID *uuid.UUID `json:"courtId,omitempty"` // Фильтр по корту (опционально)
	Status  *string    `json:"status,omitempty"`  // "all" или пусто - confirmed + cancelled
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetFieldBookingsRequest) ToDomainFilter() (domain.FieldBookingsFilter, error) {
	filter := domain.FieldBookingsFilter{
		FieldID:   r.FieldID,
		CourtID:   r.CourtID,
		StartDate: r.Date,
		EndDate:   r.Date,
		Statuses:  domain.AdminListStatuses,
	}

	if r.Status != nil && *r.Status != "" && *r.Status != StatusAll {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Statuses = []domain.BookingStatus{status}
	}

	return filter, nil
}

// UpdatePaymentRequest запрос на изменение статуса оплаты
type UpdatePaymentRequest struct {
	UserID        uuid.UUID `json:"-"`
	PaymentStatus string    `json:"paymentStatus"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              uuid.UUID  `json:"id"`
	FieldID         uuid.UUID  `json:"fieldId"`
	FieldName       string     `json:"fieldName"`
	CourtID         *uuid.UUID `json:"courtId,omitempty"`
	CourtName       *string    `json:"courtName,omitempty"`
	UserID          uuid.UUID  `json:"userId"`
	BookingDate     string     `json:"bookingDate"` // "2025-10-15"
	StartTime       string     `json:"startTime"`   // "10:00"
	EndTime         string     `json:"endTime"`     // "11:30"
	DurationMinutes int        `json:"durationMinutes"`
	PricePerHour    float64    `json:"pricePerHour"`
	TotalPrice      float64    `json:"totalPrice"`
	Status          string     `json:"status"`
	PaymentStatus   string     `json:"paymentStatus"`
	Source          string     `json:"source"`

	CustomerName  *string `json:"customerName,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		FieldID:         b.FieldID,
		FieldName:       b.FieldName,
		CourtID:         b.CourtID,
		CourtName:       b.CourtName,
		UserID:          b.UserID,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		DurationMinutes: b.DurationMinutes,
		PricePerHour:    b.PricePerHour,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		Source:          string(b.Source),
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	if !domain.IsValidBookingStatus(status) {
		return "", ErrInvalidStatus
	}
	return domain.BookingStatus(status), nil
}

// ToDomainPaymentStatus конвертирует строку в domain.PaymentStatus с валидацией
func ToDomainPaymentStatus(status string) (domain.PaymentStatus, error) {
	if !domain.IsValidPaymentStatus(status) {
		return "", ErrInvalidPaymentStatus
	}
	return domain.PaymentStatus(status), nil
}

package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
)

// ReportRequest запрос отчета по выручке. Пустые даты - с первого числа текущего месяца по сегодня.
type ReportRequest struct {
	UserID  uuid.UUID
	FieldID uuid.UUID
	From    *string // YYYY-MM-DD
	To      *string // YYYY-MM-DD
}

// Period разбирает период отчета относительно текущей даты
func (r *ReportRequest) Period(now time.Time) (time.Time, time.Time, error) {
	today := domain.DateOnly(now)
	from := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := today

	if r.From != nil && *r.From != "" {
		parsed, err := time.Parse(domain.DateFormat, *r.From)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from date: %s", *r.From)
		}
		from = parsed
	}
	if r.To != nil && *r.To != "" {
		parsed, err := time.Parse(domain.DateFormat, *r.To)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to date: %s", *r.To)
		}
		to = parsed
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("to date is before from date")
	}
	if to.Sub(from) > time.Duration(domain.MaxRevenueRangeDays)*24*time.Hour {
		return time.Time{}, time.Time{}, fmt.Errorf("period exceeds %d days", domain.MaxRevenueRangeDays)
	}
	return from, to, nil
}

// RevenueRowResponse выручка за дату
type RevenueRowResponse struct {
	Date     string  `json:"date"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

// TotalsResponse итоги за период
type TotalsResponse struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalBookings  int     `json:"totalBookings"`
	PaidBookings   int     `json:"paidBookings"`
	UnpaidBookings int     `json:"unpaidBookings"`
}

// ReportResponse отчет по выручке поля
type ReportResponse struct {
	FieldID   uuid.UUID            `json:"fieldId"`
	FieldName string               `json:"fieldName"`
	From      string               `json:"from"`
	To        string               `json:"to"`
	Rows      []RevenueRowResponse `json:"rows"`
	Totals    TotalsResponse       `json:"totals"`
}

// FromDomainReport конвертирует domain отчет в DTO
func FromDomainReport(r *domain.RevenueReport) *ReportResponse {
	rows := make([]RevenueRowResponse, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, RevenueRowResponse{
			Date:     row.Date.Format(domain.DateFormat),
			Revenue:  row.Revenue,
			Bookings: row.Bookings,
		})
	}

	return &ReportResponse{
		FieldID:   r.FieldID,
		FieldName: r.FieldName,
		From:      r.From.Format(domain.DateFormat),
		To:        r.To.Format(domain.DateFormat),
		Rows:      rows,
		Totals: TotalsResponse{
			TotalRevenue:   r.TotalRevenue,
			TotalBookings:  r.TotalBookings,
			PaidBookings:   r.PaidBookings,
			UnpaidBookings: r.UnpaidBookings,
		},
	}
}

// ExportResponse XLSX файл отчета
type ExportResponse struct {
	FileName string
	Content  []byte
}

package revenue

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	fieldRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/field"
	"github.com/m04kA/SMC-FieldBooking/internal/service/access"
	"github.com/m04kA/SMC-FieldBooking/internal/service/revenue/models"
)

// Service сервис отчетов по выручке
type Service struct {
	bookingRepo   BookingRepository
	fieldRepo     FieldRepository
	accessChecker AccessChecker
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса выручки
func NewService(
	bookingRepo BookingRepository,
	fieldRepo FieldRepository,
	accessChecker AccessChecker,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		fieldRepo:     fieldRepo,
		accessChecker: accessChecker,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Report возвращает отчет по выручке поля за период
func (s *Service) Report(ctx context.Context, req *models.ReportRequest) (*models.ReportResponse, error) {
	report, err := s.build(ctx, req)
	if err != nil {
		return nil, err
	}
	return models.FromDomainReport(report), nil
}

// Export возвращает отчет по выручке в виде XLSX книги
func (s *Service) Export(ctx context.Context, req *models.ReportRequest) (*models.ExportResponse, error) {
	report, err := s.build(ctx, req)
	if err != nil {
		return nil, err
	}

	content, err := renderWorkbook(report)
	if err != nil {
		s.logger.Error("Export: failed to render workbook field=%s: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: Export - render workbook: %v", ErrInternal, err)
	}

	return &models.ExportResponse{
		FileName: fmt.Sprintf("venituri_%s_%s.xlsx",
			report.From.Format(domain.DateFormat), report.To.Format(domain.DateFormat)),
		Content: content,
	}, nil
}

func (s *Service) build(ctx context.Context, req *models.ReportRequest) (*domain.RevenueReport, error) {
	// 1. Период отчета
	from, to, err := req.Period(s.timeProvider.Now())
	if err != nil {
		s.logger.Warn("Report: invalid period: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("Report: field=%s from=%s to=%s by user=%s",
		req.FieldID, from.Format(domain.DateFormat), to.Format(domain.DateFormat), req.UserID)

	// 2. Права администратора
	if err := s.accessChecker.CheckFieldAdmin(ctx, req.UserID, req.FieldID); err != nil {
		if errors.Is(err, access.ErrAccessDenied) {
			return nil, ErrAccessDenied
		}
		return nil, fmt.Errorf("%w: access check: %v", ErrInternal, err)
	}

	// 3. Поле
	field, err := s.fieldRepo.GetByID(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			return nil, ErrFieldNotFound
		}
		s.logger.Error("Report: failed to get field=%s: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: Report - get field: %v", ErrInternal, err)
	}

	// 4. Бронирования, учитываемые в выручке
	bookings, err := s.bookingRepo.GetByFieldWithFilter(ctx, domain.FieldBookingsFilter{
		FieldID:   req.FieldID,
		StartDate: &from,
		EndDate:   &to,
		Statuses:  domain.RevenueStatuses,
	})
	if err != nil {
		s.logger.Error("Report: failed to get bookings field=%s: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: Report - get bookings: %v", ErrInternal, err)
	}

	report := aggregate(bookings)
	report.FieldID = field.ID
	report.FieldName = field.Name
	report.From = from
	report.To = to

	s.logger.Info("Report: field=%s bookings=%d revenue=%.2f", req.FieldID, report.TotalBookings, report.TotalRevenue)
	return report, nil
}

// aggregate группирует бронирования по датам, строки упорядочены по дате
func aggregate(bookings []*domain.Booking) *domain.RevenueReport {
	report := &domain.RevenueReport{}
	byDate := make(map[time.Time]*domain.RevenueRow)

	for _, b := range bookings {
		date := domain.DateOnly(b.BookingDate)
		row, ok := byDate[date]
		if !ok {
			row = &domain.RevenueRow{Date: date}
			byDate[date] = row
		}

		row.Bookings++
		report.TotalBookings++
		if b.IsPaid() {
			row.Revenue = domain.RoundMoney(row.Revenue + b.TotalPrice)
			report.TotalRevenue = domain.RoundMoney(report.TotalRevenue + b.TotalPrice)
			report.PaidBookings++
		} else if b.PaymentStatus == domain.PaymentUnpaid {
			// возвращенные не считаются ни оплаченными, ни неоплаченными
			report.UnpaidBookings++
		}
	}

	report.Rows = make([]domain.RevenueRow, 0, len(byDate))
	for _, row := range byDate {
		report.Rows = append(report.Rows, *row)
	}
	sort.Slice(report.Rows, func(i, j int) bool {
		return report.Rows[i].Date.Before(report.Rows[j].Date)
	})

	return report
}

package booking

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	"github.com/m04kA/SMC-FieldBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-FieldBooking/pkg/ptr"
	"github.com/m04kA/SMC-FieldBooking/pkg/types"
	"github.com/m04kA/SMC-FieldBooking/pkg/txmanager"
)

var testDate = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock, *txmanager.TransactionManager) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	wrapped := dbmetrics.Wrap(db, nil)
	return NewRepository(wrapped), mock, txmanager.NewTransactionManager(wrapped)
}

func bookingRow(id, fieldID uuid.UUID, courtID *uuid.UUID, start, end string, status domain.BookingStatus) []driver.Value {
	var court, courtName driver.Value
	if courtID != nil {
		court = courtID.String()
		courtName = "Teren 1"
	}
	now := time.Now()
	return []driver.Value{
		id.String(), fieldID.String(), court, uuid.New().String(), testDate,
		start, end, 60, 150.0, 150.0, string(status), "unpaid", "user",
		nil, nil, nil, "Arena", courtName, now, now,
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := newRepo(t)
	courtID := uuid.New()
	newID := uuid.New()
	created := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings (field_id,court_id,user_id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(newID.String(), created, created))

	booking, err := repo.Create(context.Background(), &domain.Booking{
		FieldID:         uuid.New(),
		CourtID:         &courtID,
		UserID:          uuid.New(),
		BookingDate:     testDate,
		StartTime:       types.MustTimeString("10:00"),
		EndTime:         types.MustTimeString("11:00"),
		DurationMinutes: 60,
		PricePerHour:    150,
		TotalPrice:      150,
		Status:          domain.StatusConfirmed,
		PaymentStatus:   domain.PaymentUnpaid,
		Source:          domain.SourceUser,
	})

	require.NoError(t, err)
	assert.Equal(t, newID, booking.ID)
	assert.Equal(t, created, booking.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_KeepsDriverError(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "40001"})

	_, err := repo.Create(context.Background(), &domain.Booking{})
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.True(t, txmanager.IsRetryable(err))
}

func TestRepository_Create_SlotTaken(t *testing.T) {
	for _, code := range []pq.ErrorCode{"23P01", "23505"} {
		t.Run(string(code), func(t *testing.T) {
			repo, mock, _ := newRepo(t)

			mock.ExpectQuery("INSERT INTO bookings").
				WillReturnError(&pq.Error{Code: code, Constraint: "bookings_no_overlap"})

			_, err := repo.Create(context.Background(), &domain.Booking{})
			assert.ErrorIs(t, err, ErrSlotTaken)
			assert.NotErrorIs(t, err, ErrExecQuery)
			assert.False(t, txmanager.IsRetryable(err))
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock, _ := newRepo(t)
	id, fieldID, courtID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings b JOIN fields f ON f.id = b.field_id LEFT JOIN courts c ON c.id = b.court_id WHERE b.id = $1")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(bookingRow(id, fieldID, &courtID, "10:00:00", "11:30:00", domain.StatusConfirmed)...))

	booking, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, booking.ID)
	require.NotNil(t, booking.CourtID)
	assert.Equal(t, courtID, *booking.CourtID)
	assert.Equal(t, "11:30", booking.EndTime.String())
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
	assert.Equal(t, "Arena", booking.FieldName)
	assert.Equal(t, "Teren 1", *booking.CourtName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery("FROM bookings b").WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_GetByID_LocksInsideTransaction(t *testing.T) {
	repo, mock, tx := newRepo(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE b.id = $1 FOR UPDATE OF b")).
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(bookingRow(id, uuid.New(), nil, "10:00:00", "11:00:00", domain.StatusPending)...))
	mock.ExpectCommit()

	err := tx.Do(context.Background(), func(ctx context.Context) error {
		booking, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		assert.Nil(t, booking.CourtID)
		assert.Nil(t, booking.CourtName)
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByFieldWithFilter_SingleDayInTransaction(t *testing.T) {
	repo, mock, tx := newRepo(t)
	fieldID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE b.field_id = $1 AND b.booking_date >= $2 AND b.booking_date <= $3 AND b.status IN ($4,$5,$6) " +
			"ORDER BY b.start_time ASC, c.name ASC FOR UPDATE OF b")).
		WithArgs(fieldID, testDate, testDate, "pending", "confirmed", "completed").
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(bookingRow(uuid.New(), fieldID, nil, "10:00:00", "11:00:00", domain.StatusConfirmed)...).
			AddRow(bookingRow(uuid.New(), fieldID, nil, "12:00:00", "13:30:00", domain.StatusPending)...))
	mock.ExpectCommit()

	err := tx.DoSerializable(context.Background(), func(ctx context.Context) error {
		bookings, err := repo.GetByFieldWithFilter(ctx, domain.FieldBookingsFilter{
			FieldID:   fieldID,
			StartDate: &testDate,
			EndDate:   &testDate,
			Statuses:  domain.OccupyingStatuses,
		})
		if err != nil {
			return err
		}
		assert.Len(t, bookings, 2)
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByFieldWithFilter_Range(t *testing.T) {
	repo, mock, _ := newRepo(t)
	fieldID, courtID := uuid.New(), uuid.New()
	to := testDate.AddDate(0, 0, 7)

	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE b.field_id = $1 AND b.court_id = $2 AND b.booking_date >= $3 AND b.booking_date <= $4 " +
			"ORDER BY b.booking_date DESC, b.start_time DESC")).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	bookings, err := repo.GetByFieldWithFilter(context.Background(), domain.FieldBookingsFilter{
		FieldID:   fieldID,
		CourtID:   &courtID,
		StartDate: &testDate,
		EndDate:   &to,
	})
	require.NoError(t, err)
	assert.Empty(t, bookings)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByUserID_WithStatus(t *testing.T) {
	repo, mock, _ := newRepo(t)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE b.user_id = $1 AND b.status = $2 ORDER BY b.booking_date DESC, b.start_time DESC")).
		WithArgs(userID, "cancelled").
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := repo.GetByUserID(context.Background(), userID, ptr.Ptr(domain.StatusCancelled))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock, _ := newRepo(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs("cancelled", id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), id, domain.StatusCancelled))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdatePaymentStatus_NotFound(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectExec("UPDATE bookings SET payment_status").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePaymentStatus(context.Background(), uuid.New(), domain.PaymentPaid)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

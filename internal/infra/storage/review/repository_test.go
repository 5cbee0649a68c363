package review

import (
	"context"
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
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	newID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reviews (field_id,user_id,booking_id,rating,comment) VALUES ($1,$2,$3,$4,$5)")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(newID.String(), time.Now(), time.Now()))

	review, err := repo.Create(context.Background(), &domain.Review{
		FieldID:   uuid.New(),
		UserID:    uuid.New(),
		BookingID: uuid.New(),
		Rating:    5,
		Comment:   ptr.Ptr("Teren excelent"),
	})
	require.NoError(t, err)
	assert.Equal(t, newID, review.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_Duplicate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO reviews").WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.Review{Rating: 4})
	assert.ErrorIs(t, err, ErrDuplicateReview)
}

func TestRepository_ListByField(t *testing.T) {
	repo, mock := newRepo(t)
	fieldID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM reviews r LEFT JOIN profiles p ON p.id = r.user_id WHERE r.field_id = $1 ORDER BY r.created_at DESC")).
		WithArgs(fieldID).
		WillReturnRows(sqlmock.NewRows(reviewColumns).
			AddRow(uuid.New().String(), fieldID.String(), uuid.New().String(), uuid.New().String(),
				4, nil, "Radu", time.Now(), time.Now()))

	reviews, err := repo.ListByField(context.Background(), fieldID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 4, reviews[0].Rating)
	assert.Nil(t, reviews[0].Comment)
	assert.Equal(t, "Radu", *reviews[0].AuthorName)
}

func TestRepository_Stats(t *testing.T) {
	repo, mock := newRepo(t)
	fieldID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews WHERE field_id = $1")).
		WithArgs(fieldID).
		WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(4.5, 2))

	stats, err := repo.Stats(context.Background(), fieldID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, stats.Average)
	assert.Equal(t, 2, stats.Count)
}

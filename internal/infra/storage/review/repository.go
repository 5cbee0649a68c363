package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	"github.com/m04kA/SMC-FieldBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-FieldBooking/pkg/psqlbuilder"
)

// unique_violation
const uniqueViolation = "23505"

var reviewColumns = []string{
	"r.id",
	"r.field_id",
	"r.user_id",
	"r.booking_id",
	"r.rating",
	"r.comment",
	"p.full_name",
	"r.created_at",
	"r.updated_at",
}

// Repository репозиторий отзывов о полях
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет отзыв. Повторный отзыв на бронирование возвращает ErrDuplicateReview.
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns("field_id", "user_id", "booking_id", "rating", "comment").
		Values(review.FieldID, review.UserID, review.BookingID, review.Rating, review.Comment).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&review.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateReview
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	review.CreatedAt = createdAt.Time
	review.UpdatedAt = updatedAt.Time
	return review, nil
}

// ListByField возвращает отзывы поля, новые первыми
func (r *Repository) ListByField(ctx context.Context, fieldID uuid.UUID) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reviewColumns...).
		From("reviews r").
		LeftJoin("profiles p ON p.id = r.user_id").
		Where(squirrel.Eq{"r.field_id": fieldID}).
		OrderBy("r.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByField - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByField - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&review.ID,
			&review.FieldID,
			&review.UserID,
			&review.BookingID,
			&review.Rating,
			&review.Comment,
			&review.AuthorName,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByField - scan row: %v", ErrScanRow, err)
		}

		review.CreatedAt = createdAt.Time
		review.UpdatedAt = updatedAt.Time
		reviews = append(reviews, &review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByField - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}

// Stats возвращает средний рейтинг и количество отзывов поля
func (r *Repository) Stats(ctx context.Context, fieldID uuid.UUID) (domain.ReviewStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(AVG(rating), 0)", "COUNT(*)").
		From("reviews").
		Where(squirrel.Eq{"field_id": fieldID}).
		ToSql()
	if err != nil {
		return domain.ReviewStats{}, fmt.Errorf("%w: Stats - build select query: %v", ErrBuildQuery, err)
	}

	var stats domain.ReviewStats
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&stats.Average, &stats.Count); err != nil {
		return domain.ReviewStats{}, fmt.Errorf("%w: Stats - scan row: %v", ErrScanRow, err)
	}

	return stats, nil
}

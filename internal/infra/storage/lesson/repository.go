package lesson

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	"github.com/m04kA/SMC-FieldBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-FieldBooking/pkg/psqlbuilder"
)

var lessonColumns = []string{
	"id",
	"field_id",
	"court_id",
	"trainer_id",
	"trainer_name",
	"trainer_phone",
	"lesson_date",
	"start_time",
	"end_time",
	"duration_minutes",
	"notes",
	"created_by",
	"created_at",
}

// Repository репозиторий уроков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уроков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает урок
func (r *Repository) Create(ctx context.Context, lesson *domain.Lesson) (*domain.Lesson, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("lessons").
		Columns(
			"field_id",
			"court_id",
			"trainer_id",
			"trainer_name",
			"trainer_phone",
			"lesson_date",
			"start_time",
			"end_time",
			"duration_minutes",
			"notes",
			"created_by",
		).
		Values(
			lesson.FieldID,
			lesson.CourtID,
			lesson.TrainerID,
			lesson.TrainerName,
			lesson.TrainerPhone,
			lesson.LessonDate,
			lesson.StartTime,
			lesson.EndTime,
			lesson.DurationMinutes,
			lesson.Notes,
			lesson.CreatedBy,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&lesson.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	lesson.CreatedAt = createdAt.Time

	return lesson, nil
}

// GetByID получает урок по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(lessonColumns...).
		From("lessons").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	lessons, err := scanLessons(rows)
	if err != nil {
		return nil, err
	}
	if len(lessons) == 0 {
		return nil, ErrLessonNotFound
	}

	return lessons[0], nil
}

// GetByFieldAndDate получает уроки поля на дату, отсортированные по времени начала.
// Внутри транзакции строки блокируются (FOR UPDATE).
func (r *Repository) GetByFieldAndDate(ctx context.Context, fieldID uuid.UUID, date time.Time) ([]*domain.Lesson, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(lessonColumns...).
		From("lessons").
		Where(squirrel.Eq{"field_id": fieldID}).
		Where(squirrel.Eq{"lesson_date": date}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFieldAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFieldAndDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanLessons(rows)
}

// Delete удаляет урок
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("lessons").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrLessonNotFound
	}

	return nil
}

func scanLessons(rows *sql.Rows) ([]*domain.Lesson, error) {
	lessons := make([]*domain.Lesson, 0)

	for rows.Next() {
		var lesson domain.Lesson
		var createdAt sql.NullTime

		err := rows.Scan(
			&lesson.ID,
			&lesson.FieldID,
			&lesson.CourtID,
			&lesson.TrainerID,
			&lesson.TrainerName,
			&lesson.TrainerPhone,
			&lesson.LessonDate,
			&lesson.StartTime,
			&lesson.EndTime,
			&lesson.DurationMinutes,
			&lesson.Notes,
			&lesson.CreatedBy,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanLessons - scan row: %v", ErrScanRow, err)
		}

		lesson.CreatedAt = createdAt.Time
		lessons = append(lessons, &lesson)
	}

	if err := rows.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return lessons, nil
		}
		return nil, fmt.Errorf("%w: scanLessons - rows error: %v", ErrScanRow, err)
	}

	return lessons, nil
}

package trainer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	"github.com/m04kA/SMC-FieldBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-FieldBooking/pkg/psqlbuilder"
)

var trainerColumns = []string{
	"id",
	"field_id",
	"name",
	"phone",
	"email",
	"notes",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий тренеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тренеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает тренера
func (r *Repository) Create(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("trainers").
		Columns("field_id", "name", "phone", "email", "notes", "is_active").
		Values(trainer.FieldID, trainer.Name, trainer.Phone, trainer.Email, trainer.Notes, true).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&trainer.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	trainer.IsActive = true
	trainer.CreatedAt = createdAt.Time
	trainer.UpdatedAt = updatedAt.Time

	return trainer, nil
}

// GetByID получает тренера по ID (в том числе неактивного)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Trainer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(trainerColumns...).
		From("trainers").
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

	trainers, err := scanTrainers(rows)
	if err != nil {
		return nil, err
	}
	if len(trainers) == 0 {
		return nil, ErrTrainerNotFound
	}

	return trainers[0], nil
}

// ListActiveByField возвращает активных тренеров поля, отсортированных по имени
func (r *Repository) ListActiveByField(ctx context.Context, fieldID uuid.UUID) ([]*domain.Trainer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(trainerColumns...).
		From("trainers").
		Where(squirrel.Eq{"field_id": fieldID, "is_active": true}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByField - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByField - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTrainers(rows)
}

// Deactivate помечает тренера неактивным. Уже проведенные уроки сохраняют денормализованные данные.
func (r *Repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("trainers").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTrainerNotFound
	}

	return nil
}

func scanTrainers(rows *sql.Rows) ([]*domain.Trainer, error) {
	trainers := make([]*domain.Trainer, 0)

	for rows.Next() {
		var trainer domain.Trainer
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&trainer.ID,
			&trainer.FieldID,
			&trainer.Name,
			&trainer.Phone,
			&trainer.Email,
			&trainer.Notes,
			&trainer.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTrainers - scan row: %v", ErrScanRow, err)
		}

		trainer.CreatedAt = createdAt.Time
		trainer.UpdatedAt = updatedAt.Time
		trainers = append(trainers, &trainer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTrainers - rows error: %v", ErrScanRow, err)
	}

	return trainers, nil
}

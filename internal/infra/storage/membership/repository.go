package membership

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	"github.com/m04kA/SMC-FieldBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-FieldBooking/pkg/psqlbuilder"
)

var membershipColumns = []string{
	"id",
	"field_id",
	"court_id",
	"member_name",
	"user_id",
	"day_of_week",
	"start_time",
	"end_time",
	"start_date",
	"end_date",
	"notes",
	"created_by",
	"created_at",
}

// Repository репозиторий абонементов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория абонементов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает абонемент
func (r *Repository) Create(ctx context.Context, m *domain.Membership) (*domain.Membership, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("memberships").
		Columns(
			"field_id",
			"court_id",
			"member_name",
			"user_id",
			"day_of_week",
			"start_time",
			"end_time",
			"start_date",
			"end_date",
			"notes",
			"created_by",
		).
		Values(
			m.FieldID,
			m.CourtID,
			m.MemberName,
			m.UserID,
			m.DayOfWeek,
			m.StartTime,
			m.EndTime,
			m.StartDate,
			m.EndDate,
			m.Notes,
			m.CreatedBy,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&m.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	m.CreatedAt = createdAt.Time

	return m, nil
}

// GetByID получает абонемент по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Membership, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(membershipColumns...).
		From("memberships").
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

	memberships, err := scanMemberships(rows)
	if err != nil {
		return nil, err
	}
	if len(memberships) == 0 {
		return nil, ErrMembershipNotFound
	}

	return memberships[0], nil
}

// ListByField возвращает все абонементы поля
func (r *Repository) ListByField(ctx context.Context, fieldID uuid.UUID) ([]*domain.Membership, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(membershipColumns...).
		From("memberships").
		Where(squirrel.Eq{"field_id": fieldID}).
		OrderBy("day_of_week ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByField - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByField - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanMemberships(rows)
}

// ListActiveOn возвращает абонементы поля, действующие в указанную дату
// (совпадает день недели и дата попадает в период абонемента).
// Внутри транзакции строки блокируются (FOR UPDATE).
func (r *Repository) ListActiveOn(ctx context.Context, fieldID uuid.UUID, date time.Time) ([]*domain.Membership, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(membershipColumns...).
		From("memberships").
		Where(squirrel.Eq{"field_id": fieldID}).
		Where(squirrel.Eq{"day_of_week": int(date.Weekday())}).
		Where(squirrel.LtOrEq{"start_date": date}).
		Where(squirrel.GtOrEq{"end_date": date}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveOn - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveOn - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanMemberships(rows)
}

// Delete удаляет абонемент
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("memberships").
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
		return ErrMembershipNotFound
	}

	return nil
}

func scanMemberships(rows *sql.Rows) ([]*domain.Membership, error) {
	memberships := make([]*domain.Membership, 0)

	for rows.Next() {
		var m domain.Membership
		var createdAt sql.NullTime

		err := rows.Scan(
			&m.ID,
			&m.FieldID,
			&m.CourtID,
			&m.MemberName,
			&m.UserID,
			&m.DayOfWeek,
			&m.StartTime,
			&m.EndTime,
			&m.StartDate,
			&m.EndDate,
			&m.Notes,
			&m.CreatedBy,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanMemberships - scan row: %v", ErrScanRow, err)
		}

		m.CreatedAt = createdAt.Time
		memberships = append(memberships, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanMemberships - rows error: %v", ErrScanRow, err)
	}

	return memberships, nil
}

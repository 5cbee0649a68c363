package field

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	"github.com/m04kA/SMC-FieldBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-FieldBooking/pkg/psqlbuilder"
)

// Колонки таблицы fields (названия колонок исторические, на румынском)
var fieldColumns = []string{
	"id",
	"nume",
	"sport",
	"suprafata",
	"pret",
	"locatie",
	"city",
	"imagine",
	"rating",
	"review_count",
	"is_active",
	"opening_time",
	"closing_time",
	"is_blocked",
	"blocked_reason",
	"blocked_until",
	"created_at",
	"updated_at",
}

var courtColumns = []string{
	"id",
	"field_id",
	"name",
	"is_active",
	"is_blocked",
	"blocked_reason",
	"blocked_until",
	"created_at",
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий полей, кортов и удобств
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория полей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает поле по ID (включая неактивные)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Field, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(fieldColumns...).
		From("fields").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	field, err := scanField(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFieldNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan field: %w", ErrScanRow, err)
	}

	return field, nil
}

// LockForUpdate блокирует строку поля до конца текущей транзакции.
// Вне транзакции блокировка бессмысленна, поэтому возвращает ошибку.
func (r *Repository) LockForUpdate(ctx context.Context, id uuid.UUID) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return fmt.Errorf("%w: LockForUpdate - called outside transaction", ErrExecQuery)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("fields").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: LockForUpdate - build select query: %v", ErrBuildQuery, err)
	}

	var locked uuid.UUID
	err = executor.QueryRowContext(ctx, query, args...).Scan(&locked)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrFieldNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: LockForUpdate - scan row: %w", ErrScanRow, err)
	}

	return nil
}

// ListActive получает активные поля, отсортированные по названию.
// Фильтр по городу без учета диакритики выполняется в сервисе.
func (r *Repository) ListActive(ctx context.Context, sport *string) ([]*domain.Field, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(fieldColumns...).
		From("fields").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("nume ASC")

	if sport != nil {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"sport": *sport})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanFields(rows)
}

// ListByIDs получает поля по списку ID (для панели администратора)
func (r *Repository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Field, error) {
	if len(ids) == 0 {
		return []*domain.Field{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(fieldColumns...).
		From("fields").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("nume ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanFields(rows)
}

// UpdateBlock устанавливает или снимает блокировку поля
func (r *Repository) UpdateBlock(ctx context.Context, fieldID uuid.UUID, block domain.Block) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("fields").
		Set("is_blocked", block.IsBlocked).
		Set("blocked_reason", block.Reason).
		Set("blocked_until", block.BlockedUntil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": fieldID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateBlock - build update query: %v", ErrBuildQuery, err)
	}

	return execAffectingOne(ctx, executor, query, args, ErrFieldNotFound, "UpdateBlock")
}

// UpdateRating обновляет рейтинг поля и количество отзывов
func (r *Repository) UpdateRating(ctx context.Context, fieldID uuid.UUID, rating float64, reviewCount int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("fields").
		Set("rating", rating).
		Set("review_count", reviewCount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": fieldID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateRating - build update query: %v", ErrBuildQuery, err)
	}

	return execAffectingOne(ctx, executor, query, args, ErrFieldNotFound, "UpdateRating")
}

// ListCourts получает корты поля, отсортированные по названию
func (r *Repository) ListCourts(ctx context.Context, fieldID uuid.UUID, onlyActive bool) ([]*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(courtColumns...).
		From("courts").
		Where(squirrel.Eq{"field_id": fieldID}).
		OrderBy("name ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCourts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCourts - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	courts := make([]*domain.Court, 0)
	for rows.Next() {
		court, err := scanCourt(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListCourts - scan row: %w", ErrScanRow, err)
		}
		courts = append(courts, court)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCourts - rows error: %w", ErrScanRow, err)
	}

	return courts, nil
}

// GetCourt получает корт по ID
func (r *Repository) GetCourt(ctx context.Context, courtID uuid.UUID) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courtColumns...).
		From("courts").
		Where(squirrel.Eq{"id": courtID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCourt - build select query: %v", ErrBuildQuery, err)
	}

	court, err := scanCourt(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCourt - scan court: %v", ErrScanRow, err)
	}

	return court, nil
}

// UpdateCourtBlock устанавливает или снимает блокировку корта
func (r *Repository) UpdateCourtBlock(ctx context.Context, courtID uuid.UUID, block domain.Block) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("courts").
		Set("is_blocked", block.IsBlocked).
		Set("blocked_reason", block.Reason).
		Set("blocked_until", block.BlockedUntil).
		Where(squirrel.Eq{"id": courtID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateCourtBlock - build update query: %v", ErrBuildQuery, err)
	}

	return execAffectingOne(ctx, executor, query, args, ErrCourtNotFound, "UpdateCourtBlock")
}

// ListAmenities получает удобства поля
func (r *Repository) ListAmenities(ctx context.Context, fieldID uuid.UUID) ([]*domain.Amenity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("a.id", "a.name", "a.icon").
		From("amenities a").
		Join("field_amenities fa ON fa.amenity_id = a.id").
		Where(squirrel.Eq{"fa.field_id": fieldID}).
		OrderBy("a.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAmenities - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAmenities - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	amenities := make([]*domain.Amenity, 0)
	for rows.Next() {
		var a domain.Amenity
		if err := rows.Scan(&a.ID, &a.Name, &a.Icon); err != nil {
			return nil, fmt.Errorf("%w: ListAmenities - scan row: %v", ErrScanRow, err)
		}
		amenities = append(amenities, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAmenities - rows error: %v", ErrScanRow, err)
	}

	return amenities, nil
}

func execAffectingOne(ctx context.Context, executor DBExecutor, query string, args []interface{}, notFound error, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}

func scanField(row rowScanner) (*domain.Field, error) {
	var field domain.Field
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&field.ID,
		&field.Name,
		&field.Sport,
		&field.Surface,
		&field.PricePerHour,
		&field.Location,
		&field.City,
		&field.ImageURL,
		&field.Rating,
		&field.ReviewCount,
		&field.IsActive,
		&field.OpeningTime,
		&field.ClosingTime,
		&field.Block.IsBlocked,
		&field.Block.Reason,
		&field.Block.BlockedUntil,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	field.CreatedAt = createdAt.Time
	field.UpdatedAt = updatedAt.Time

	return &field, nil
}

func scanFields(rows *sql.Rows) ([]*domain.Field, error) {
	fields := make([]*domain.Field, 0)

	for rows.Next() {
		field, err := scanField(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanFields - scan row: %v", ErrScanRow, err)
		}
		fields = append(fields, field)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanFields - rows error: %v", ErrScanRow, err)
	}

	return fields, nil
}

func scanCourt(row rowScanner) (*domain.Court, error) {
	var court domain.Court
	var createdAt sql.NullTime

	err := row.Scan(
		&court.ID,
		&court.FieldID,
		&court.Name,
		&court.IsActive,
		&court.Block.IsBlocked,
		&court.Block.Reason,
		&court.Block.BlockedUntil,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	court.CreatedAt = createdAt.Time
	return &court, nil
}

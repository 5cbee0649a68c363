package rules

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

var rulesColumns = []string{
	"field_id",
	"slot_step_minutes",
	"default_duration_minutes",
	"advance_booking_days",
	"min_booking_notice_minutes",
	"late_discount_from",
	"late_discount_percent",
	"created_at",
	"updated_at",
}

// Repository репозиторий правил бронирования полей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил бронирования
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByFieldID получает собственные правила поля.
// Если правил нет, возвращает ErrRulesNotFound - значения по умолчанию подставляет сервис.
func (r *Repository) GetByFieldID(ctx context.Context, fieldID uuid.UUID) (*domain.BookingRules, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rulesColumns...).
		From("field_booking_rules").
		Where(squirrel.Eq{"field_id": fieldID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFieldID - build select query: %v", ErrBuildQuery, err)
	}

	rules, err := scanRules(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRulesNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFieldID - scan rules: %v", ErrScanRow, err)
	}

	return rules, nil
}

// Upsert создает или полностью заменяет правила поля
func (r *Repository) Upsert(ctx context.Context, rules *domain.BookingRules) (*domain.BookingRules, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("field_booking_rules").
		Columns(
			"field_id",
			"slot_step_minutes",
			"default_duration_minutes",
			"advance_booking_days",
			"min_booking_notice_minutes",
			"late_discount_from",
			"late_discount_percent",
		).
		Values(
			rules.FieldID,
			rules.SlotStepMinutes,
			rules.DefaultDurationMinutes,
			rules.AdvanceBookingDays,
			rules.MinBookingNoticeMinutes,
			rules.LateDiscountFrom,
			rules.LateDiscountPercent,
		).
		Suffix(`ON CONFLICT (field_id) DO UPDATE SET
			slot_step_minutes = EXCLUDED.slot_step_minutes,
			default_duration_minutes = EXCLUDED.default_duration_minutes,
			advance_booking_days = EXCLUDED.advance_booking_days,
			min_booking_notice_minutes = EXCLUDED.min_booking_notice_minutes,
			late_discount_from = EXCLUDED.late_discount_from,
			late_discount_percent = EXCLUDED.late_discount_percent,
			updated_at = NOW()`).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	rules.IsDefault = false
	rules.CreatedAt = createdAt.Time
	rules.UpdatedAt = updatedAt.Time

	return rules, nil
}

func scanRules(row *sql.Row) (*domain.BookingRules, error) {
	var rules domain.BookingRules
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rules.FieldID,
		&rules.SlotStepMinutes,
		&rules.DefaultDurationMinutes,
		&rules.AdvanceBookingDays,
		&rules.MinBookingNoticeMinutes,
		&rules.LateDiscountFrom,
		&rules.LateDiscountPercent,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rules.CreatedAt = createdAt.Time
	rules.UpdatedAt = updatedAt.Time
	return &rules, nil
}

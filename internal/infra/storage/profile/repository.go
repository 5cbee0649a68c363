package profile

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

var profileColumns = []string{
	"id",
	"full_name",
	"phone",
	"avatar_url",
	"is_admin",
	"created_at",
	"updated_at",
}

// Repository репозиторий профилей и владельцев полей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает профиль пользователя
func (r *Repository) GetByID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(profileColumns...).
		From("profiles").
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	profile, err := scanProfile(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}

	return profile, nil
}

// Upsert создает профиль или обновляет имя и телефон существующего.
// Флаг is_admin через этот метод не меняется.
func (r *Repository) Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("profiles").
		Columns("id", "full_name", "phone").
		Values(profile.ID, profile.FullName, profile.Phone).
		Suffix("ON CONFLICT (id) DO UPDATE SET full_name = EXCLUDED.full_name, phone = EXCLUDED.phone, updated_at = NOW()").
		Suffix("RETURNING id, full_name, phone, avatar_url, is_admin, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	saved, err := scanProfile(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return saved, nil
}

// IsAdmin проверяет флаг администратора. Отсутствующий профиль - не администратор.
func (r *Repository) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	profile, err := r.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return false, nil
		}
		return false, err
	}
	return profile.IsAdmin, nil
}

// IsOwner проверяет, что пользователь управляет полем
func (r *Repository) IsOwner(ctx context.Context, userID, fieldID uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("field_owners").
		Where(squirrel.Eq{"user_id": userID, "field_id": fieldID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsOwner - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%w: IsOwner - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// ListFieldIDsByOwner возвращает ID полей, которыми управляет пользователь
func (r *Repository) ListFieldIDsByOwner(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("field_id").
		From("field_owners").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListFieldIDsByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFieldIDsByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListFieldIDsByOwner - scan row: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListFieldIDsByOwner - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

func scanProfile(row *sql.Row) (*domain.Profile, error) {
	var profile domain.Profile
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&profile.ID,
		&profile.FullName,
		&profile.Phone,
		&profile.AvatarURL,
		&profile.IsAdmin,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	profile.CreatedAt = createdAt.Time
	profile.UpdatedAt = updatedAt.Time
	return &profile, nil
}

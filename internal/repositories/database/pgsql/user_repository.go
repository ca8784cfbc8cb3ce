package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_accounting_app/internal/core/ports/repositories"
	"github.com/SscSPs/procurement_accounting_app/internal/models"
	"github.com/SscSPs/procurement_accounting_app/internal/utils/mapping"
	"github.com/SscSPs/procurement_accounting_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, email, password_hash, display_name, role, country_code, native_language_id,
	ui_language_id, refresh_tokens, last_active_at, created_at, updated_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Email,
		&m.PasswordHash,
		&m.DisplayName,
		&m.Role,
		&m.CountryCode,
		&m.NativeLanguageID,
		&m.UILanguageID,
		&m.RefreshTokens,
		&m.LastActiveAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u := mapping.ToDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
        INSERT INTO users (` + userColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Email,
		m.PasswordHash,
		m.DisplayName,
		m.Role,
		m.CountryCode,
		m.NativeLanguageID,
		m.UILanguageID,
		m.RefreshTokens,
		m.LastActiveAt,
		m.CreatedAt,
		m.UpdatedAt,
	)
	return mapPgError(err, "failed to save user")
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1;`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to find user by ID %s", userID))
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1);`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, strings.TrimSpace(email)))
	if err != nil {
		return nil, mapPgError(err, "failed to find user by email")
	}
	return user, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, filter domain.UserListFilter) ([]domain.User, int64, error) {
	w := &whereBuilder{}
	if filter.Role != "" {
		w.add("role = $%[1]d", string(filter.Role))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		w.add("(email ILIKE $%[1]d OR display_name ILIKE $%[1]d)", "%"+escapeLike(search)+"%")
	}
	where := w.sql()

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT count(*) FROM users`+where, w.args...).Scan(&total); err != nil {
		return nil, 0, mapPgError(err, "failed to count users")
	}

	page, limit := pagination.Normalize(filter.Page, filter.Limit)
	args := append(w.args, limit, pagination.Offset(page, limit))
	query := fmt.Sprintf(`SELECT %s FROM users%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		userColumns, where, len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, mapPgError(err, "failed to query users")
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *u)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}
	return users, total, nil
}

func (r *PgxUserRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.Pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n); err != nil {
		return 0, mapPgError(err, "failed to count users")
	}
	return n, nil
}

func (r *PgxUserRepository) CountActiveUsersSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	if err := r.Pool.QueryRow(ctx, `SELECT count(*) FROM users WHERE last_active_at >= $1`, since).Scan(&n); err != nil {
		return 0, mapPgError(err, "failed to count active users")
	}
	return n, nil
}

func (r *PgxUserRepository) CountRegistrationsByDay(ctx context.Context, since time.Time) ([]domain.DailyCount, error) {
	query := `
        SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, count(*)
        FROM users
        WHERE created_at >= $1
        GROUP BY day
        ORDER BY day;
    `
	rows, err := r.Pool.Query(ctx, query, since)
	if err != nil {
		return nil, mapPgError(err, "failed to count registrations")
	}
	defer rows.Close()

	counts := []domain.DailyCount{}
	for rows.Next() {
		var c domain.DailyCount
		if err := rows.Scan(&c.Date, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan registration row: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
        UPDATE users
        SET email = $2, password_hash = $3, display_name = $4, role = $5, country_code = $6,
            native_language_id = $7, ui_language_id = $8, updated_at = $9
        WHERE id = $1;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Email,
		m.PasswordHash,
		m.DisplayName,
		m.Role,
		m.CountryCode,
		m.NativeLanguageID,
		m.UILanguageID,
		m.UpdatedAt,
	)
	if err != nil {
		return mapPgError(err, "failed to execute update user query")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return mapPgError(err, "failed to delete user")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) PushRefreshToken(ctx context.Context, userID, token string, maxTokens int) error {
	query := `
        UPDATE users
        SET refresh_tokens = (array_append(refresh_tokens, $2::text))[GREATEST(cardinality(refresh_tokens) + 2 - $3::int, 1):],
            updated_at = now()
        WHERE id = $1;
    `
	return r.execSessionUpdate(ctx, query, "failed to push refresh token", userID, token, maxTokens)
}

func (r *PgxUserRepository) RemoveRefreshToken(ctx context.Context, userID, token string) error {
	query := `
        UPDATE users
        SET refresh_tokens = array_remove(refresh_tokens, $2::text), updated_at = now()
        WHERE id = $1 AND $2::text = ANY(refresh_tokens);
    `
	return r.execSessionUpdate(ctx, query, "failed to remove refresh token", userID, token)
}

func (r *PgxUserRepository) ReplaceRefreshToken(ctx context.Context, userID, oldToken, newToken string, maxTokens int) error {
	query := `
        UPDATE users
        SET refresh_tokens = (array_append(array_remove(refresh_tokens, $2::text), $3::text))
                [GREATEST(cardinality(array_remove(refresh_tokens, $2::text)) + 2 - $4::int, 1):],
            updated_at = now()
        WHERE id = $1 AND $2::text = ANY(refresh_tokens);
    `
	return r.execSessionUpdate(ctx, query, "failed to rotate refresh token", userID, oldToken, newToken, maxTokens)
}

func (r *PgxUserRepository) PruneRefreshTokens(ctx context.Context, userID string, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	query := `
        UPDATE users
        SET refresh_tokens = ARRAY(
                SELECT t FROM unnest(refresh_tokens) WITH ORDINALITY AS u(t, ord)
                WHERE NOT (t = ANY($2::text[]))
                ORDER BY ord),
            updated_at = now()
        WHERE id = $1;
    `
	return r.execSessionUpdate(ctx, query, "failed to prune refresh tokens", userID, tokens)
}

func (r *PgxUserRepository) TouchLastActivity(ctx context.Context, userID string, at time.Time) error {
	return r.execSessionUpdate(ctx, `UPDATE users SET last_active_at = $2 WHERE id = $1;`,
		"failed to record user activity", userID, at)
}

// execSessionUpdate runs a single-row update. No affected row means the user or the token is gone.
func (r *PgxUserRepository) execSessionUpdate(ctx context.Context, query, action string, args ...any) error {
	cmdTag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return mapPgError(err, action)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", action, apperrors.ErrNotFound)
	}
	return nil
}

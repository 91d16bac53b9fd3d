package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopward/shopward_backend/internal/apperrors"
	"github.com/shopward/shopward_backend/internal/core/domain"
	portsrepo "github.com/shopward/shopward_backend/internal/core/ports/repositories"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

const userColumns = `username, email, name, address, password, role, status, refresh_token, created_at, updated_at`

// userSortColumns whitelists the sortable columns for user search.
var userSortColumns = map[string]string{
	"username":  "username",
	"name":      "name",
	"email":     "email",
	"address":   "address",
	"createdAt": "created_at",
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.Username,
		&u.Email,
		&u.Name,
		&u.Address,
		&u.Password,
		&u.Role,
		&u.Status,
		&u.RefreshToken,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
        INSERT INTO users (` + userColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		user.Username,
		user.Email,
		user.Name,
		user.Address,
		user.Password,
		user.Role,
		user.Status,
		user.RefreshToken,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE username = $1;
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by username %s: %w", username, err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE refresh_token = $1 AND refresh_token <> '';
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, refreshToken))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by refresh token: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
        UPDATE users
        SET email = $1, name = $2, address = $3, password = $4, updated_at = $5
        WHERE username = $6;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		user.Email,
		user.Name,
		user.Address,
		user.Password,
		user.UpdatedAt,
		user.Username,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update user query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) UpdateUserStatus(ctx context.Context, username string, status domain.UserStatus) error {
	query := `
        UPDATE users
        SET status = $1, updated_at = NOW()
        WHERE username = $2;
    `
	cmdTag, err := r.db.Exec(ctx, query, status, username)
	if err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, username string, refreshToken string) error {
	query := `
        UPDATE users
        SET refresh_token = $1, updated_at = NOW()
        WHERE username = $2;
    `
	cmdTag, err := r.db.Exec(ctx, query, refreshToken, username)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) SearchUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	where := []string{}
	args := []any{}

	addContains := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		where = append(where, fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", column, len(args)))
	}
	addContains("username", filter.Username)
	addContains("name", filter.Name)
	addContains("email", filter.Email)
	addContains("address", filter.Address)

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	column, ok := userSortColumns[filter.Sort.SortOn]
	if !ok {
		column = "username"
	}
	direction := "ASC"
	if !filter.Sort.Ascending {
		direction = "DESC"
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE ` + cond +
		fmt.Sprintf(" ORDER BY %s %s", column, direction)

	if limit := filter.Paging.Limit(); limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filter.Paging.Offset())
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *user)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}

	return users, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-api-selfservice/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `user_id, username, email, first_name, last_name, role, phone_number, password_hash, enable, created_at, updated_at`

// updatableUserColumns lists the columns Update may touch. Field names come
// from application code, but they are still interpolated into SQL.
var updatableUserColumns = map[string]bool{
	"phone_number":  true,
	"password_hash": true,
	"enable":        true,
}

// UserRepo persists users in PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) Put(ctx context.Context, u *domain.User) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, `INSERT INTO users (`+userColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        ON CONFLICT (user_id) DO UPDATE SET
            username = EXCLUDED.username, email = EXCLUDED.email,
            first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name,
            role = EXCLUDED.role, phone_number = EXCLUDED.phone_number,
            password_hash = EXCLUDED.password_hash, enable = EXCLUDED.enable,
            updated_at = EXCLUDED.updated_at`,
		u.UserID, u.Username, u.Email, u.FirstName, u.LastName, u.Role,
		u.PhoneNumber, u.PasswordHash, u.Enable, u.CreatedAt.UTC(), u.UpdatedAt.UTC())
	return err
}

func (r *UserRepo) Get(ctx context.Context, userID string) (*domain.User, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	var u domain.User
	err = conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID).Scan(
		&u.UserID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.Role,
		&u.PhoneNumber, &u.PasswordHash, &u.Enable, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return &u, nil
}

func (r *UserRepo) Update(ctx context.Context, userID string, updates map[string]interface{}) error {
	query, args, err := buildUpdate(userID, updates)
	if err != nil {
		return err
	}

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	cmd, err := conn.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}

// buildUpdate renders a parameterised UPDATE with columns in sorted order.
func buildUpdate(userID string, updates map[string]interface{}) (string, []interface{}, error) {
	if len(updates) == 0 {
		return "", nil, errors.New("no fields to update")
	}
	cols := make([]string, 0, len(updates))
	for k := range updates {
		if !updatableUserColumns[k] {
			return "", nil, fmt.Errorf("unknown user field %q: %w", k, domain.ErrBadRequest)
		}
		cols = append(cols, k)
	}
	sort.Strings(cols)

	sets := make([]string, 0, len(cols)+1)
	args := make([]interface{}, 0, len(cols)+1)
	for i, c := range cols {
		sets = append(sets, fmt.Sprintf("%s = $%d", c, i+1))
		args = append(args, updates[c])
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, userID)
	query := fmt.Sprintf("UPDATE users SET %s WHERE user_id = $%d", strings.Join(sets, ", "), len(args))
	return query, args, nil
}

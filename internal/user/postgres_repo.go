package user

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Create(ctx context.Context, u *User) error {
	const query = `
	INSERT INTO users (id, username, email, password_hash, created_at)
	VALUES (gen_random_uuid(), $1, $2, $3, NOW())
	RETURNING id, created_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query, u.Username, u.Email, u.Password).Scan(&u.ID, &u.CreatedAt)
}

func (r *PostgresRepo) getByField(ctx context.Context, field, value string) (User, error) {
	query := `
	SELECT id, username, email, password_hash, created_at
	FROM users
	WHERE ` + field + ` = $1
	LIMIT 1
	`
	var u User
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, value).Scan(
		&u.ID, &u.Username, &u.Email, &u.Password, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (User, error) {
	return r.getByField(ctx, "id", id)
}

func (r *PostgresRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	return r.getByField(ctx, "email", email)
}

func (r *PostgresRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	return r.getByField(ctx, "username", username)
}

func (r *PostgresRepo) SearchByText(ctx context.Context, q string, limit, offset int) ([]User, error) {
	const query = `
	SELECT id, username, email, created_at
	FROM users
	WHERE username ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
	ORDER BY (username ILIKE $1 || '%') DESC, username
	LIMIT $2 OFFSET $3
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

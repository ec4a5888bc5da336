package review

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

func (r *PostgresRepo) Create(ctx context.Context, rv *Review) error {
	const query = `
		INSERT INTO reviews (id, album_id, user_id, content, rating, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query, rv.AlbumID, rv.UserID, rv.Content, rv.Rating).
		Scan(&rv.ID, &rv.CreatedAt)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Review, error) {
	const query = `
		SELECT id, album_id, user_id, content, rating, created_at, updated_at
		FROM reviews
		WHERE id = $1
		LIMIT 1
	`
	var rv Review
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&rv.ID, &rv.AlbumID, &rv.UserID, &rv.Content, &rv.Rating, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Review{}, ErrNotFound
		}
		return Review{}, err
	}
	return rv, nil
}

func (r *PostgresRepo) ListByAlbum(ctx context.Context, albumID string) ([]Review, error) {
	const query = `
		SELECT id, album_id, user_id, content, rating, created_at, updated_at
		FROM reviews
		WHERE album_id = $1
		ORDER BY created_at DESC
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, albumID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Review
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.AlbumID, &rv.UserID, &rv.Content, &rv.Rating, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Update(ctx context.Context, rv *Review) error {
	const query = `
		UPDATE reviews
		SET content = $1, rating = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, rv.Content, rv.Rating, rv.ID).Scan(&rv.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM reviews WHERE id = $1`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	commandTag, err := r.db.Exec(timeoutCtx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

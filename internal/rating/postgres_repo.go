package rating

import (
	"context"
	"time"

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

func (r *PostgresRepo) Upsert(ctx context.Context, userID, albumID string, value int) (Rating, error) {
	const existsSQL = `SELECT EXISTS(SELECT 1 FROM albums WHERE id = $1)`
	var albumExists bool
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, existsSQL, albumID).Scan(&albumExists); err != nil {
		return Rating{}, err
	}
	if !albumExists {
		return Rating{}, ErrNotFound
	}

	const upsertSQL = `
		INSERT INTO ratings (id, user_id, album_id, rating, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, NOW())
		ON CONFLICT (user_id, album_id)
		DO UPDATE SET rating = EXCLUDED.rating, updated_at = NOW()
		RETURNING id, album_id, user_id, rating, created_at, updated_at
	`
	var rt Rating
	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	err := r.db.QueryRow(timeoutCtx2, upsertSQL, userID, albumID, value).Scan(
		&rt.ID, &rt.AlbumID, &rt.UserID, &rt.Rating, &rt.CreatedAt, &rt.UpdatedAt,
	)
	return rt, err
}

func (r *PostgresRepo) ListByAlbum(ctx context.Context, albumID string) ([]Rating, error) {
	const query = `
		SELECT id, album_id, user_id, rating, created_at, updated_at
		FROM ratings
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

	var out []Rating
	for rows.Next() {
		var rt Rating
		if err := rows.Scan(&rt.ID, &rt.AlbumID, &rt.UserID, &rt.Rating, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetUserStats(ctx context.Context, userID string) (float64, int, error) {
	const query = `
		SELECT COALESCE(AVG(rating), 0)::FLOAT, COUNT(rating)
		FROM ratings
		WHERE user_id = $1
	`
	var average float64
	var count int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, query, userID).Scan(&average, &count); err != nil {
		return 0, 0, err
	}
	return average, count, nil
}

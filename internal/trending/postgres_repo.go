package trending

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
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

func (r *PostgresRepo) Top(ctx context.Context, limit int) ([]Entry, error) {
	const query = `
		SELECT t.id, t.album_id, t.rank, t.week_start,
		       a.id, a.title, a.artist, a.cover_url
		FROM trending_albums t
		JOIN albums a ON a.id = t.album_id
		WHERE t.week_start = (SELECT MAX(week_start) FROM trending_albums)
		ORDER BY t.rank ASC
		LIMIT $1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID, &e.AlbumID, &e.Rank, &e.WeekStart,
			&e.Album.ID, &e.Album.Title, &e.Album.Artist, &e.Album.CoverURL,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Insert(ctx context.Context, e *Entry) error {
	const query = `
		INSERT INTO trending_albums (id, album_id, rank, week_start)
		VALUES (gen_random_uuid(), $1, $2, $3)
		RETURNING id
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, e.AlbumID, e.Rank, e.WeekStart).Scan(&e.ID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return ErrAlbumNotFound
	}
	return err
}

// Rebuild runs in a transaction so readers never observe a half-built week.
func (r *PostgresRepo) Rebuild(ctx context.Context, weekStart time.Time, size int) (int, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(timeoutCtx)

	if _, err := tx.Exec(timeoutCtx,
		`DELETE FROM trending_albums WHERE week_start = $1`, weekStart); err != nil {
		return 0, err
	}

	const insertSQL = `
		INSERT INTO trending_albums (id, album_id, rank, week_start)
		SELECT gen_random_uuid(), album_id,
		       ROW_NUMBER() OVER (ORDER BY COUNT(*) DESC, AVG(rating) DESC),
		       $1
		FROM ratings
		WHERE created_at >= $1 - INTERVAL '7 days'
		GROUP BY album_id
		ORDER BY COUNT(*) DESC, AVG(rating) DESC
		LIMIT $2
	`
	tag, err := tx.Exec(timeoutCtx, insertSQL, weekStart, size)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(timeoutCtx); err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

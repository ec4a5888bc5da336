package album

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
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

const albumColumns = `id, title, artist, release_date, cover_url, COALESCE(description, ''),
	       runtime_minutes, musicbrainz_id, created_at, updated_at`

func scanAlbum(row pgx.Row, a *Album) error {
	return row.Scan(
		&a.ID, &a.Title, &a.Artist, &a.ReleaseDate, &a.CoverURL, &a.Description,
		&a.RuntimeMinutes, &a.MBID, &a.CreatedAt, &a.UpdatedAt,
	)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Album, error) {
	const query = `
		SELECT ` + albumColumns + `
		FROM albums
		WHERE id = $1
		LIMIT 1
	`
	var a Album
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := scanAlbum(r.db.QueryRow(timeoutCtx, query, id), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Album{}, ErrNotFound
		}
		return Album{}, err
	}
	return a, nil
}

func (r *PostgresRepo) SearchByText(ctx context.Context, q string, limit int) ([]Album, error) {
	const query = `
		SELECT ` + albumColumns + `
		FROM albums
		WHERE title ILIKE '%' || $1 || '%' OR artist ILIKE '%' || $1 || '%'
		ORDER BY title
		LIMIT $2
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Album
	for rows.Next() {
		var a Album
		if err := scanAlbum(rows, &a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) FindByIdentity(ctx context.Context, title, artist string) (Album, error) {
	const query = `
		SELECT ` + albumColumns + `
		FROM albums
		WHERE lower(btrim(title)) = lower(btrim($1))
		  AND lower(btrim(artist)) = lower(btrim($2))
		LIMIT 1
	`
	var a Album
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := scanAlbum(r.db.QueryRow(timeoutCtx, query, title, artist), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Album{}, ErrNotFound
		}
		return Album{}, err
	}
	return a, nil
}

// InsertIfAbsent relies on the unique index on
// (lower(btrim(title)), lower(btrim(artist))). The no-op DO UPDATE makes the
// conflicting row visible to RETURNING, so a concurrent duplicate import
// resolves to the already stored album instead of a second row.
func (r *PostgresRepo) InsertIfAbsent(ctx context.Context, a *Album) (bool, error) {
	const query = `
		INSERT INTO albums (id, title, artist, release_date, cover_url, description,
		                    runtime_minutes, musicbrainz_id, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, NULLIF($5, ''), $6, $7, NOW(), NOW())
		ON CONFLICT (lower(btrim(title)), lower(btrim(artist)))
		DO UPDATE SET title = albums.title
		RETURNING ` + albumColumns + `, (xmax = 0)
	`
	var created bool
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		a.Title, a.Artist, a.ReleaseDate, a.CoverURL, a.Description, a.RuntimeMinutes, a.MBID,
	).Scan(
		&a.ID, &a.Title, &a.Artist, &a.ReleaseDate, &a.CoverURL, &a.Description,
		&a.RuntimeMinutes, &a.MBID, &a.CreatedAt, &a.UpdatedAt, &created,
	)
	return created, err
}

func (r *PostgresRepo) Create(ctx context.Context, a *Album) error {
	const query = `
		INSERT INTO albums (id, title, artist, release_date, cover_url, description,
		                    runtime_minutes, musicbrainz_id, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, NULLIF($5, ''), $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		a.Title, a.Artist, a.ReleaseDate, a.CoverURL, a.Description, a.RuntimeMinutes, a.MBID,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyExists
	}
	return err
}

func (r *PostgresRepo) AverageRating(ctx context.Context, id string) (float64, int, error) {
	const query = `
		SELECT AVG(rating)::FLOAT, COUNT(rating)
		FROM ratings
		WHERE album_id = $1
	`
	var average sql.NullFloat64
	var count int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, query, id).Scan(&average, &count); err != nil {
		return 0, 0, err
	}
	if !average.Valid {
		return 0, 0, nil
	}
	return average.Float64, count, nil
}

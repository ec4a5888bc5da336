package search

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepo serves autocomplete completions straight from the albums and
// users tables. Prefix matching keeps the per-keystroke cost on the indexes.
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

func (r *PostgresRepo) scanStrings(ctx context.Context, query, prefix string, limit int) ([]string, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, prefix, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) TitleSuggestions(ctx context.Context, prefix string, limit int) ([]string, error) {
	const query = `
	SELECT title
	FROM albums
	WHERE title ILIKE $1 || '%'
	ORDER BY title
	LIMIT $2
	`
	return r.scanStrings(ctx, query, prefix, limit)
}

func (r *PostgresRepo) ArtistSuggestions(ctx context.Context, prefix string, limit int) ([]string, error) {
	const query = `
	SELECT DISTINCT artist
	FROM albums
	WHERE artist ILIKE $1 || '%'
	ORDER BY artist
	LIMIT $2
	`
	return r.scanStrings(ctx, query, prefix, limit)
}

func (r *PostgresRepo) UsernameSuggestions(ctx context.Context, prefix string, limit int) ([]string, error) {
	const query = `
	SELECT username
	FROM users
	WHERE username ILIKE $1 || '%'
	ORDER BY username
	LIMIT $2
	`
	return r.scanStrings(ctx, query, prefix, limit)
}

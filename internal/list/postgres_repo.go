package list

import (
	"context"
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

func (r *PostgresRepo) Create(ctx context.Context, l *List) error {
	const query = `
		INSERT INTO lists (id, user_id, title, description, is_public, is_ranked, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query,
		l.UserID, l.Title, l.Description, l.IsPublic, l.IsRanked,
	).Scan(&l.ID, &l.CreatedAt)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (List, error) {
	const query = `
		SELECT l.id, l.user_id, l.title, l.description, l.is_public, l.is_ranked,
		       l.created_at, l.updated_at,
		       (SELECT COUNT(*) FROM list_items li WHERE li.list_id = l.id)
		FROM lists l
		WHERE l.id = $1
	`
	var l List
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&l.ID, &l.UserID, &l.Title, &l.Description, &l.IsPublic, &l.IsRanked,
		&l.CreatedAt, &l.UpdatedAt, &l.ItemCount,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return List{}, ErrNotFound
	}
	return l, err
}

func (r *PostgresRepo) ListAll(ctx context.Context, userID string, publicOnly bool) ([]List, error) {
	query := `
		SELECT l.id, l.user_id, l.title, l.description, l.is_public, l.is_ranked,
		       l.created_at, l.updated_at,
		       (SELECT COUNT(*) FROM list_items li WHERE li.list_id = l.id)
		FROM lists l
	`
	var args []any
	switch {
	case userID != "":
		query += ` WHERE l.user_id = $1`
		args = append(args, userID)
		if publicOnly {
			query += ` AND l.is_public = TRUE`
		}
	case publicOnly:
		query += ` WHERE l.is_public = TRUE`
	}
	query += ` ORDER BY l.created_at DESC`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []List
	for rows.Next() {
		var l List
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.Title, &l.Description, &l.IsPublic, &l.IsRanked,
			&l.CreatedAt, &l.UpdatedAt, &l.ItemCount,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Update(ctx context.Context, l *List) error {
	const query = `
		UPDATE lists
		SET title = $2, description = $3, is_public = $4, is_ranked = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		l.ID, l.Title, l.Description, l.IsPublic, l.IsRanked,
	).Scan(&l.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM lists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) GetItems(ctx context.Context, listID string, ranked bool) ([]Item, error) {
	query := `
		SELECT li.id, li.list_id, li.album_id, li.position, li.notes, li.added_at,
		       a.id, a.title, a.artist, a.cover_url
		FROM list_items li
		JOIN albums a ON a.id = li.album_id
		WHERE li.list_id = $1
	`
	if ranked {
		query += ` ORDER BY li.position ASC NULLS LAST, li.added_at ASC`
	} else {
		query += ` ORDER BY li.added_at DESC`
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID, &it.ListID, &it.AlbumID, &it.Position, &it.Notes, &it.AddedAt,
			&it.Album.ID, &it.Album.Title, &it.Album.Artist, &it.Album.CoverURL,
		); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) AddItem(ctx context.Context, item *Item) error {
	const existsSQL = `SELECT EXISTS(SELECT 1 FROM albums WHERE id = $1)`
	var albumExists bool
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, existsSQL, item.AlbumID).Scan(&albumExists); err != nil {
		return err
	}
	if !albumExists {
		return ErrAlbumNotFound
	}

	const insertSQL = `
		INSERT INTO list_items (id, list_id, album_id, position, notes, added_at)
		VALUES (
			gen_random_uuid(), $1, $2,
			COALESCE($3, (
				SELECT MAX(position) + 1 FROM list_items
				WHERE list_id = $1 AND (SELECT is_ranked FROM lists WHERE id = $1)
			), CASE WHEN (SELECT is_ranked FROM lists WHERE id = $1) THEN 1 END),
			$4, NOW()
		)
		RETURNING id, position, added_at
	`
	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	err := r.db.QueryRow(timeoutCtx2, insertSQL,
		item.ListID, item.AlbumID, item.Position, item.Notes,
	).Scan(&item.ID, &item.Position, &item.AddedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateItem
	}
	return err
}

func (r *PostgresRepo) UpdateItem(ctx context.Context, listID, itemID string, position *int, notes *string) (Item, error) {
	const query = `
		UPDATE list_items
		SET position = COALESCE($3, position), notes = COALESCE($4, notes)
		WHERE id = $2 AND list_id = $1
		RETURNING id, list_id, album_id, position, notes, added_at
	`
	var it Item
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, listID, itemID, position, notes).Scan(
		&it.ID, &it.ListID, &it.AlbumID, &it.Position, &it.Notes, &it.AddedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Item{}, ErrItemNotFound
	}
	return it, err
}

func (r *PostgresRepo) RemoveItem(ctx context.Context, listID, itemID string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx,
		`DELETE FROM list_items WHERE id = $2 AND list_id = $1`, listID, itemID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

package importer

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	CreateRun(ctx context.Context, run *Run) (string, error)
	UpdateRun(ctx context.Context, run *Run) error
}

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) CreateRun(ctx context.Context, run *Run) (string, error) {
	const sql = `
		INSERT INTO import_runs (config_target_count, config_min_score, queries_total, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id string
	err := r.db.QueryRow(ctx, sql, run.ConfigTargetCount, run.ConfigMinScore, run.QueriesTotal, run.Status).Scan(&id)
	return id, err
}

func (r *PostgresRepo) UpdateRun(ctx context.Context, run *Run) error {
	const sql = `
		UPDATE import_runs SET
			finished_at = $1,
			status = $2,
			queries_run = $3,
			imported = $4,
			rejected = $5,
			error = $6
		WHERE id = $7`

	_, err := r.db.Exec(ctx, sql, run.FinishedAt, run.Status, run.QueriesRun, run.Imported, run.Rejected, run.Error, run.ID)
	return err
}

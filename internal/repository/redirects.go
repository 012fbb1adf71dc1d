package repository

import (
	"context"

	"portfolio/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RedirectRepo interface {
	ListEnabled(ctx context.Context) ([]models.Redirect, error)
	List(ctx context.Context) ([]models.Redirect, error)
	GetByID(ctx context.Context, id string) (*models.Redirect, error)
	Create(ctx context.Context, rd *models.Redirect) error
	Update(ctx context.Context, rd *models.Redirect) error
	Delete(ctx context.Context, id string) error
}

type redirectRepo struct{ db *pgxpool.Pool }

func NewRedirectRepo(db *pgxpool.Pool) RedirectRepo { return &redirectRepo{db: db} }

const redirectColumns = `id, from_path, to_path, permanent, enabled, created_at, updated_at`

// порядок важен: при дублях from_path побеждает первая строка
func (r *redirectRepo) ListEnabled(ctx context.Context) ([]models.Redirect, error) {
	return r.list(ctx, `SELECT `+redirectColumns+` FROM redirects WHERE enabled = $1 ORDER BY created_at, id`, true)
}

func (r *redirectRepo) List(ctx context.Context) ([]models.Redirect, error) {
	return r.list(ctx, `SELECT `+redirectColumns+` FROM redirects ORDER BY created_at, id`)
}

func (r *redirectRepo) list(ctx context.Context, q string, args ...any) ([]models.Redirect, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Redirect, 0)
	for rows.Next() {
		rd, err := scanRedirect(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *redirectRepo) GetByID(ctx context.Context, id string) (*models.Redirect, error) {
	rd, err := scanRedirect(r.db.QueryRow(ctx, `SELECT `+redirectColumns+` FROM redirects WHERE id=$1`, id))
	if err != nil {
		return nil, mapErr(err)
	}
	return &rd, nil
}

func (r *redirectRepo) Create(ctx context.Context, rd *models.Redirect) error {
	if rd.ID == "" {
		rd.ID = uuid.NewString()
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO redirects (id, from_path, to_path, permanent, enabled)
		 VALUES ($1,$2,$3,$4,$5) RETURNING created_at, updated_at`,
		rd.ID, rd.FromPath, rd.ToPath, rd.Permanent, rd.Enabled,
	).Scan(&rd.CreatedAt, &rd.UpdatedAt)
	return mapErr(err)
}

func (r *redirectRepo) Update(ctx context.Context, rd *models.Redirect) error {
	err := r.db.QueryRow(ctx,
		`UPDATE redirects SET from_path=$1, to_path=$2, permanent=$3, enabled=$4, updated_at=now()
		 WHERE id=$5 RETURNING created_at, updated_at`,
		rd.FromPath, rd.ToPath, rd.Permanent, rd.Enabled, rd.ID,
	).Scan(&rd.CreatedAt, &rd.UpdatedAt)
	return mapErr(err)
}

func (r *redirectRepo) Delete(ctx context.Context, id string) error {
	return affected(r.db.Exec(ctx, `DELETE FROM redirects WHERE id=$1`, id))
}

func scanRedirect(row pgx.Row) (models.Redirect, error) {
	var rd models.Redirect
	err := row.Scan(&rd.ID, &rd.FromPath, &rd.ToPath, &rd.Permanent, &rd.Enabled, &rd.CreatedAt, &rd.UpdatedAt)
	return rd, err
}

package repository

import (
	"context"

	"portfolio/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PageRepo interface {
	List(ctx context.Context) ([]models.Page, error)
	GetByID(ctx context.Context, id string) (*models.Page, error)
	GetBySlug(ctx context.Context, slug string) (*models.Page, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	Create(ctx context.Context, p *models.Page) error
	Update(ctx context.Context, p *models.Page) error
	Delete(ctx context.Context, id string) error
}

type pageRepo struct{ db *pgxpool.Pool }

func NewPageRepo(db *pgxpool.Pool) PageRepo { return &pageRepo{db: db} }

const pageColumns = `id, slug, title, body, meta_description, published, created_at, updated_at`

func (r *pageRepo) List(ctx context.Context) ([]models.Page, error) {
	rows, err := r.db.Query(ctx, `SELECT `+pageColumns+` FROM pages ORDER BY updated_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Page, 0)
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *pageRepo) GetByID(ctx context.Context, id string) (*models.Page, error) {
	p, err := scanPage(r.db.QueryRow(ctx, `SELECT `+pageColumns+` FROM pages WHERE id=$1`, id))
	if err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func (r *pageRepo) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	p, err := scanPage(r.db.QueryRow(ctx, `SELECT `+pageColumns+` FROM pages WHERE slug=$1`, slug))
	if err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func (r *pageRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM pages WHERE slug=$1 AND id<>$2)`, slug, excludeID).Scan(&exists)
	return exists, err
}

func (r *pageRepo) Create(ctx context.Context, p *models.Page) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO pages (id, slug, title, body, meta_description, published)
		 VALUES ($1,$2,$3,$4,$5,$6) RETURNING created_at, updated_at`,
		p.ID, p.Slug, p.Title, p.Body, p.MetaDescription, p.Published,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return mapErr(err)
}

func (r *pageRepo) Update(ctx context.Context, p *models.Page) error {
	err := r.db.QueryRow(ctx,
		`UPDATE pages SET slug=$1, title=$2, body=$3, meta_description=$4, published=$5, updated_at=now()
		 WHERE id=$6 RETURNING created_at, updated_at`,
		p.Slug, p.Title, p.Body, p.MetaDescription, p.Published, p.ID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return mapErr(err)
}

func (r *pageRepo) Delete(ctx context.Context, id string) error {
	return affected(r.db.Exec(ctx, `DELETE FROM pages WHERE id=$1`, id))
}

func scanPage(row pgx.Row) (models.Page, error) {
	var p models.Page
	err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Body, &p.MetaDescription, &p.Published, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

package repository

import (
	"context"

	"portfolio/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingsRepo interface {
	List(ctx context.Context) ([]models.SettingEntry, error)
	GetByID(ctx context.Context, id string) (*models.SettingEntry, error)
	KeyExists(ctx context.Context, key, excludeID string) (bool, error)
	Create(ctx context.Context, s *models.SettingEntry) error
	Update(ctx context.Context, s *models.SettingEntry) error
	Delete(ctx context.Context, id string) error
}

type settingsRepo struct{ db *pgxpool.Pool }

func NewSettingsRepo(db *pgxpool.Pool) SettingsRepo { return &settingsRepo{db: db} }

const settingColumns = `id, key, value, description, created_at, updated_at`

func (r *settingsRepo) List(ctx context.Context) ([]models.SettingEntry, error) {
	rows, err := r.db.Query(ctx, `SELECT `+settingColumns+` FROM site_settings ORDER BY key, created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.SettingEntry, 0)
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *settingsRepo) GetByID(ctx context.Context, id string) (*models.SettingEntry, error) {
	s, err := scanSetting(r.db.QueryRow(ctx, `SELECT `+settingColumns+` FROM site_settings WHERE id=$1`, id))
	if err != nil {
		return nil, mapErr(err)
	}
	return &s, nil
}

func (r *settingsRepo) KeyExists(ctx context.Context, key, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM site_settings WHERE key=$1 AND id<>$2)`, key, excludeID,
	).Scan(&exists)
	return exists, err
}

func (r *settingsRepo) Create(ctx context.Context, s *models.SettingEntry) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO site_settings (id, key, value, description) VALUES ($1,$2,$3,$4)
		 RETURNING created_at, updated_at`,
		s.ID, s.Key, s.Value, s.Description,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	return mapErr(err)
}

func (r *settingsRepo) Update(ctx context.Context, s *models.SettingEntry) error {
	err := r.db.QueryRow(ctx,
		`UPDATE site_settings SET key=$1, value=$2, description=$3, updated_at=now()
		 WHERE id=$4 RETURNING created_at, updated_at`,
		s.Key, s.Value, s.Description, s.ID,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	return mapErr(err)
}

func (r *settingsRepo) Delete(ctx context.Context, id string) error {
	return affected(r.db.Exec(ctx, `DELETE FROM site_settings WHERE id=$1`, id))
}

func scanSetting(row pgx.Row) (models.SettingEntry, error) {
	var s models.SettingEntry
	err := row.Scan(&s.ID, &s.Key, &s.Value, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

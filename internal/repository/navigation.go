package repository

import (
	"context"

	"portfolio/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NavigationRepo interface {
	ListVisible(ctx context.Context) ([]models.NavigationItem, error)
	ListAll(ctx context.Context) ([]models.NavigationItem, error)
	GetByID(ctx context.Context, id string) (*models.NavigationItem, error)
	CountChildren(ctx context.Context, id string) (int, error)
	Create(ctx context.Context, n *models.NavigationItem) error
	Update(ctx context.Context, n *models.NavigationItem) error
	Delete(ctx context.Context, id string) error
	// LockForUpdate блокирует строки до конца транзакции. Вне InTx блокировка снимается сразу.
	LockForUpdate(ctx context.Context, ids ...string) error
	// InTx выполняет fn в одной транзакции; ошибка fn откатывает её.
	InTx(ctx context.Context, fn func(tx NavigationRepo) error) error
}

type navigationRepo struct{ db dbtx }

func NewNavigationRepo(db *pgxpool.Pool) NavigationRepo { return &navigationRepo{db: db} }

const navColumns = `id, label, path, parent_id, visible, icon, display_order, created_at, updated_at`

// порядок вставки разрешает равные display_order
const navOrder = ` ORDER BY display_order, created_at, id`

func (r *navigationRepo) ListVisible(ctx context.Context) ([]models.NavigationItem, error) {
	return r.list(ctx, `SELECT `+navColumns+` FROM navigation_items WHERE visible = $1`+navOrder, true)
}

func (r *navigationRepo) ListAll(ctx context.Context) ([]models.NavigationItem, error) {
	return r.list(ctx, `SELECT `+navColumns+` FROM navigation_items`+navOrder)
}

func (r *navigationRepo) list(ctx context.Context, q string, args ...any) ([]models.NavigationItem, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.NavigationItem, 0)
	for rows.Next() {
		n, err := scanNav(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *navigationRepo) GetByID(ctx context.Context, id string) (*models.NavigationItem, error) {
	row := r.db.QueryRow(ctx, `SELECT `+navColumns+` FROM navigation_items WHERE id = $1`, id)
	n, err := scanNav(row)
	if err != nil {
		return nil, mapErr(err)
	}
	return &n, nil
}

func (r *navigationRepo) CountChildren(ctx context.Context, id string) (int, error) {
	var cnt int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM navigation_items WHERE parent_id = $1`, id).Scan(&cnt)
	return cnt, err
}

func (r *navigationRepo) Create(ctx context.Context, n *models.NavigationItem) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO navigation_items (id, label, path, parent_id, visible, icon, display_order)
		 VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING created_at, updated_at`,
		n.ID, n.Label, n.Path, n.ParentID, n.Visible, n.Icon, n.DisplayOrder,
	).Scan(&n.CreatedAt, &n.UpdatedAt)
	return mapErr(err)
}

func (r *navigationRepo) Update(ctx context.Context, n *models.NavigationItem) error {
	err := r.db.QueryRow(ctx,
		`UPDATE navigation_items
		 SET label=$1, path=$2, parent_id=$3, visible=$4, icon=$5, display_order=$6, updated_at=now()
		 WHERE id=$7 RETURNING created_at, updated_at`,
		n.Label, n.Path, n.ParentID, n.Visible, n.Icon, n.DisplayOrder, n.ID,
	).Scan(&n.CreatedAt, &n.UpdatedAt)
	return mapErr(err)
}

func (r *navigationRepo) LockForUpdate(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	// один порядок блокировок для всех транзакций, чтобы не ловить deadlock
	rows, err := r.db.Query(ctx, `SELECT id FROM navigation_items WHERE id = ANY($1) ORDER BY id FOR UPDATE`, ids)
	if err != nil {
		return err
	}
	rows.Close()
	return rows.Err()
}

func (r *navigationRepo) InTx(ctx context.Context, fn func(tx NavigationRepo) error) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return fn(&navigationRepo{db: tx})
	})
}

// Delete удаляет пункт. Дети не удаляются: parent_id у них обнуляется внешним ключом (ON DELETE SET NULL).
func (r *navigationRepo) Delete(ctx context.Context, id string) error {
	return affected(r.db.Exec(ctx, `DELETE FROM navigation_items WHERE id=$1`, id))
}

func scanNav(row pgx.Row) (models.NavigationItem, error) {
	var n models.NavigationItem
	err := row.Scan(&n.ID, &n.Label, &n.Path, &n.ParentID, &n.Visible, &n.Icon, &n.DisplayOrder, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}

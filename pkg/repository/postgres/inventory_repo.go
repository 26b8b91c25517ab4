package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/kirana/pkg/inventory"
)

// InventoryRepository implements inventory.Source backed by PostgreSQL (pgx).
type InventoryRepository struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository ensures the schema and seeds the given items when
// the table is empty.
func NewInventoryRepository(ctx context.Context, pool *pgxpool.Pool, seed []inventory.Item) (*InventoryRepository, error) {
	repo := &InventoryRepository{pool: pool}
	if err := repo.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure inventory schema: %w", err)
	}
	if err := repo.seed(ctx, seed); err != nil {
		return nil, fmt.Errorf("seed inventory: %w", err)
	}
	return repo, nil
}

func (r *InventoryRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS inventory_items (
			position INT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			price INT NOT NULL CHECK (price >= 0)
		);
	`)
	return err
}

func (r *InventoryRepository) seed(ctx context.Context, items []inventory.Item) error {
	if len(items) == 0 {
		return nil
	}
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM inventory_items`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i, it := range items {
		batch.Queue(`
			INSERT INTO inventory_items (position, name, price)
			VALUES ($1, $2, $3)
			ON CONFLICT DO NOTHING
		`, i, it.Name, it.Price)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}

// Load returns items in display order.
func (r *InventoryRepository) Load(ctx context.Context) ([]inventory.Item, error) {
	rows, err := r.pool.Query(ctx, `SELECT name, price FROM inventory_items ORDER BY position`)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (inventory.Item, error) {
		var it inventory.Item
		err := row.Scan(&it.Name, &it.Price)
		return it, err
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

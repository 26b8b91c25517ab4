package checkers

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresChecker reports ready when the catalog table answers a query.
type PostgresChecker struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresChecker(pool *pgxpool.Pool) *PostgresChecker {
	return &PostgresChecker{pool: pool, timeout: time.Second}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	var n int
	if err := c.pool.QueryRow(ctx, `SELECT count(*) FROM inventory_items`).Scan(&n); err != nil {
		return fmt.Errorf("query inventory_items: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("inventory_items is empty")
	}
	return nil
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vvka-141/contree/internal/retry"
	"github.com/vvka-141/contree/pkg/contree"
)

const (
	// DefaultTable is the table used when PostgresOptions.Table is empty.
	DefaultTable = "contree_cache"

	// DefaultTimeout bounds each cache operation when PostgresOptions.Timeout is zero.
	DefaultTimeout = 2 * time.Second
)

// PostgresOptions configures a Postgres cache.
type PostgresOptions struct {
	Table        string        // table name, created if missing
	Timeout      time.Duration // per-operation timeout
	ConnectRetry int           // retries of the initial connection check
}

// Postgres stores JSON-encoded values in a PostgreSQL table.
// Safe for concurrent use.
type Postgres[V any] struct {
	pool    *pgxpool.Pool
	table   string
	timeout time.Duration
	logger  contree.Logger
}

// OpenPostgres connects to dsn, waits for the server to accept connections
// and creates the cache table if needed.
func OpenPostgres[V any](ctx context.Context, dsn string, opts PostgresOptions, logger contree.Logger) (*Postgres[V], error) {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if opts.Table == "" {
		opts.Table = DefaultTable
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid cache connection string: %w", err)
	}

	executor := retry.NewExecutor(retry.NewPostgreSQLErrorClassifier(), retry.NewExponentialBackoff(opts.ConnectRetry)).
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			logger.Verbose("Cache database not ready (attempt %d): %v; retrying in %v", attempt+1, err, delay)
		})
	if err := executor.Execute(ctx, pool.Ping); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to cache database: %w", err)
	}

	c := &Postgres[V]{
		pool:    pool,
		table:   pgx.Identifier{opts.Table}.Sanitize(),
		timeout: opts.Timeout,
		logger:  logger,
	}
	if err := c.createTable(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return c, nil
}

func (c *Postgres[V]) createTable(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.pool.Exec(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			key        text PRIMARY KEY,
			value      jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`, c.table))
	if err != nil {
		return fmt.Errorf("failed to create cache table %s: %w", c.table, err)
	}
	return nil
}

// Has reports whether key is cached.
func (c *Postgres[V]) Has(key string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	var exists bool
	err := c.pool.QueryRow(ctx, fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE key = $1)`, c.table), key).Scan(&exists)
	if err != nil {
		c.logger.Error("Cache lookup of %s failed: %v", key, err)
		return false
	}
	return exists
}

// Get returns the value cached under key.
func (c *Postgres[V]) Get(key string) (V, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	var zero V
	var raw []byte
	err := c.pool.QueryRow(ctx, fmt.Sprintf(`SELECT value FROM %s WHERE key = $1`, c.table), key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return zero, false
	}
	if err != nil {
		c.logger.Error("Cache read of %s failed: %v", key, err)
		return zero, false
	}

	var value V
	if err := json.Unmarshal(raw, &value); err != nil {
		c.logger.Error("Cache entry %s is corrupt: %v", key, err)
		return zero, false
	}
	return value, true
}

// Set caches value under key, replacing any previous value.
func (c *Postgres[V]) Set(key string, value V) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Error("Cache value for %s cannot be encoded: %v", key, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	_, err = c.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`, c.table), key, raw)
	if err != nil {
		c.logger.Error("Cache write of %s failed: %v", key, err)
	}
}

// Clear removes every entry.
func (c *Postgres[V]) Clear(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if _, err := c.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s`, c.table)); err != nil {
		return fmt.Errorf("failed to clear cache table %s: %w", c.table, err)
	}
	return nil
}

// Close releases the connection pool.
func (c *Postgres[V]) Close() {
	c.pool.Close()
}

// Verify Postgres implements contree.Cache
var _ contree.Cache[[]contree.File] = (*Postgres[[]contree.File])(nil)

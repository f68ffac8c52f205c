package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultTable = "fsm_snapshots"

var _ Store[string] = (*PostgresStore[string])(nil)

// PostgresStore persists snapshots in a single table with the instance id
// as the primary key and the state encoded as jsonb.
type PostgresStore[S comparable] struct {
	pool  *pgxpool.Pool
	table string
}

// PostgresOption configures a PostgresStore.
type PostgresOption func(*postgresConfig)

type postgresConfig struct {
	table string
}

// WithTable replaces the default "fsm_snapshots" table name.
func WithTable(table string) PostgresOption {
	return func(cfg *postgresConfig) {
		cfg.table = table
	}
}

// NewPostgresStore wraps an already-connected pool. Closing the store
// closes the pool.
func NewPostgresStore[S comparable](pool *pgxpool.Pool, opts ...PostgresOption) *PostgresStore[S] {
	cfg := postgresConfig{table: defaultTable}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &PostgresStore[S]{pool: pool, table: cfg.table}
}

// EnsureSchema creates the snapshot table when it does not exist yet.
func (s *PostgresStore[S]) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (id text PRIMARY KEY, state jsonb NOT NULL, updated_at timestamptz NOT NULL)`,
		pgx.Identifier{s.table}.Sanitize(),
	)
	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("ensure snapshot schema: %w", err)
	}
	return nil
}

func (s *PostgresStore[S]) Save(ctx context.Context, id string, snap Snapshot[S]) error {
	if id == "" {
		return ErrEmptyID
	}
	state, err := json.Marshal(snap.State)
	if err != nil {
		return fmt.Errorf("marshal snapshot %q: %w", id, err)
	}
	query := fmt.Sprintf(
		`INSERT INTO %s (id, state, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET state = EXCLUDED.state, updated_at = EXCLUDED.updated_at`,
		pgx.Identifier{s.table}.Sanitize(),
	)
	if _, err := s.pool.Exec(ctx, query, id, state, snap.UpdatedAt); err != nil {
		return fmt.Errorf("save snapshot %q: %w", id, err)
	}
	return nil
}

func (s *PostgresStore[S]) Load(ctx context.Context, id string) (Snapshot[S], error) {
	if id == "" {
		return Snapshot[S]{}, ErrEmptyID
	}
	query := fmt.Sprintf(
		`SELECT state, updated_at FROM %s WHERE id = $1`,
		pgx.Identifier{s.table}.Sanitize(),
	)

	var (
		state []byte
		snap  Snapshot[S]
	)
	err := s.pool.QueryRow(ctx, query, id).Scan(&state, &snap.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Snapshot[S]{}, ErrNotFound
	}
	if err != nil {
		return Snapshot[S]{}, fmt.Errorf("load snapshot %q: %w", id, err)
	}
	if err := json.Unmarshal(state, &snap.State); err != nil {
		return Snapshot[S]{}, fmt.Errorf("decode snapshot %q: %w", id, err)
	}
	return snap, nil
}

func (s *PostgresStore[S]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	query := fmt.Sprintf(
		`DELETE FROM %s WHERE id = $1`,
		pgx.Identifier{s.table}.Sanitize(),
	)
	if _, err := s.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete snapshot %q: %w", id, err)
	}
	return nil
}

func (s *PostgresStore[S]) Close() error {
	s.pool.Close()
	return nil
}

// PostgresConfig carries connection settings for OpenPostgres.
type PostgresConfig struct {
	ConnectionString  string        `env:"PG_CONN_URL,required"`
	MaxOpenConns      int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns      int32         `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`
	MaxConnIdleTime   time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	MaxConnLifetime   time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`
	RetryAttempts     int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval     time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"`
}

// OpenPostgres connects a pgx pool with retries and wraps it in a store.
// Call EnsureSchema before first use if the table may not exist.
func OpenPostgres[S comparable](ctx context.Context, cfg PostgresConfig, opts ...PostgresOption) (*PostgresStore[S], error) {
	connConfig, err := pgxpool.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrFailedToParsePostgresURL, err)
	}
	connConfig.MaxConns = cfg.MaxOpenConns
	connConfig.MinConns = cfg.MaxIdleConns
	connConfig.HealthCheckPeriod = cfg.HealthCheckPeriod
	connConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	connConfig.MaxConnLifetime = cfg.MaxConnLifetime

	// Linear backoff: attempt 1 waits RetryInterval, attempt 2 waits twice
	// that, and so on.
	for i := range cfg.RetryAttempts {
		pool, err := pgxpool.NewWithConfig(ctx, connConfig)
		if err != nil {
			time.Sleep(time.Duration(i+1) * cfg.RetryInterval)
			continue
		}

		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			time.Sleep(time.Duration(i+1) * cfg.RetryInterval)
			continue
		}

		return NewPostgresStore[S](pool, opts...), nil
	}

	return nil, ErrPostgresNotReady
}

// Package database owns the MySQL connection pool and the scoped
// transaction helper the repositories run inside.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Store wraps the shared *sql.DB pool.  One Store is constructed at
// startup, injected into every component that needs storage access and
// closed on shutdown; no package-level state exists.
type Store struct {
	db *sql.DB
}

// Open connects to MySQL using the given DSN and verifies the connection.
func Open(databaseURL string) (*Store, error) {
	cfg, err := mysql.ParseDSN(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	cfg.Params["charset"] = "utf8mb4"

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, err
	}

	// Pool settings.  Stale idle connections are detected by the driver's
	// liveness check on reuse and replaced transparently; the lifetime cap
	// recycles long-lived ones before the server drops them.
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// NewStore wraps an already-open pool.  Callers that manage the pool
// themselves (tests, mainly) use this instead of Open.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Ping verifies that a round trip to the database succeeds.
func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

// Close releases the underlying pool.
func (s *Store) Close() error { return s.db.Close() }

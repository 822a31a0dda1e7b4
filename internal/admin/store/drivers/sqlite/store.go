package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store"
	_ "modernc.org/sqlite"
)

// Store keeps every collection in a single documents table, one JSON body
// per row.
type Store struct {
	db    *sql.DB
	dsn   string
	ready atomic.Bool
}

var _ store.Store = (*Store)(nil)

// NewStore opens dsn and pings it. In-memory databases are pinned to one
// connection so every query sees the same database.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	s := &Store{db: db, dsn: dsn}
	if err := s.Ping(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) Close() error {
	s.ready.Store(false)
	return s.db.Close()
}

// Ping verifies the database connection is still alive and updates the
// ready flag accordingly.
func (s *Store) Ping(ctx context.Context) error {
	err := s.db.PingContext(ctx)
	s.ready.Store(err == nil)
	return err
}

// Ready reports the result of the last ping.
func (s *Store) Ready() bool { return s.ready.Load() }

func (s *Store) Collection(name string) store.Collection {
	return &collection{db: s.db, name: name, withTx: s.withTx}
}

func (s *Store) Dashboards() store.Dashboards { return &dashboards{db: s.db} }

// withTx executes fn within a transaction, automatically handling
// commit/rollback.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

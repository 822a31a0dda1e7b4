// Package mongo stores each collection in its own MongoDB collection.
// The client connects in the background; the store reports ready once a
// ping succeeds and keeps probing so an outage flips it back.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store"
)

// DashboardCollection holds the singleton dashboard document.
const DashboardCollection = "dashboard"

// Config tunes the connection monitor.
type Config struct {
	URI      string
	Database string

	// PingInterval is how often readiness is re-checked. Defaults to 10s.
	PingInterval time.Duration

	// Logger receives connection state changes. Defaults to slog.Default.
	Logger *slog.Logger
}

type Store struct {
	client *mongo.Client
	db     *mongo.Database
	log    *slog.Logger

	ready     atomic.Bool
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

var _ store.Store = (*Store)(nil)

// NewStore creates the client and starts the readiness monitor. It does
// not wait for the server, so an unreachable database still yields a
// usable (not ready) store.
func NewStore(cfg Config) (*Store, error) {
	if cfg.URI == "" {
		return nil, errors.New("mongo: empty uri")
	}
	if cfg.Database == "" {
		cfg.Database = "admin"
	}
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = 10 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(5 * time.Second).
		SetConnectTimeout(5 * time.Second)

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, fmt.Errorf("mongo: connect: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Store{
		client: client,
		db:     client.Database(cfg.Database),
		log:    cfg.Logger.With("component", "mongo"),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go s.monitor(ctx, cfg.PingInterval)

	return s, nil
}

func (s *Store) monitor(ctx context.Context, interval time.Duration) {
	defer close(s.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		was := s.Ready()
		err := s.Ping(ctx)
		switch {
		case err == nil && !was:
			s.log.Info("mongodb connected")
		case err != nil && was:
			s.log.Error("mongodb connection lost", "err", err)
		case err != nil && ctx.Err() == nil:
			s.log.Debug("mongodb not reachable", "err", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// WaitReady blocks until the store is ready or ctx ends.
func (s *Store) WaitReady(ctx context.Context) error {
	for !s.Ready() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}
	return nil
}

// Ping checks the primary and updates the ready flag.
func (s *Store) Ping(ctx context.Context) error {
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.Ping(pctx, readpref.Primary())
	s.ready.Store(err == nil)
	return err
}

func (s *Store) Ready() bool { return s.ready.Load() }

// ApplyMigrations is a no-op: collections are schema-less and created on
// first write.
func (s *Store) ApplyMigrations() error { return nil }

func (s *Store) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.cancel()
		<-s.done
		s.ready.Store(false)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = s.client.Disconnect(ctx)
	})
	return err
}

func (s *Store) Collection(name string) store.Collection {
	return &collection{c: s.db.Collection(name)}
}

func (s *Store) Dashboards() store.Dashboards {
	return &dashboards{c: s.db.Collection(DashboardCollection)}
}

func mapNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNotFound
	}
	return err
}

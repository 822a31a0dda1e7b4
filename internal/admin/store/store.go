package store

import (
	"context"
	"errors"
	"time"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/domain"
)

var (
	ErrNotFound          = errors.New("store: not found")
	ErrUnavailable       = errors.New("store: not connected")
	ErrUnknownCollection = errors.New("store: unknown collection")
)

// TimeFormat is how createdAt/updatedAt are rendered, millisecond UTC
// timestamps the dashboard client can parse with Date.
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// FormatTime renders t in TimeFormat (UTC).
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// Store is the root data access interface implemented by the drivers
// (sqlite, mongo). Use a Registry to get readiness-guarded collection
// handles; the driver methods do no readiness checks of their own.
type Store interface {
	// Collection returns a driver handle for the physical collection name.
	Collection(name string) Collection

	Dashboards() Dashboards

	// Ready reports whether the backing database is connected.
	Ready() bool

	ApplyMigrations() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

// Collection is a schema-less accessor over one collection.
type Collection interface {
	Name() string

	// List returns up to limit records in insertion order.
	List(ctx context.Context, limit int) ([]domain.Record, error)

	// Insert stores doc, assigning _id, __v, createdAt and updatedAt,
	// and returns the stored record.
	Insert(ctx context.Context, doc domain.Record) (domain.Record, error)

	// UpdateByID sets the fields in doc on the record with id (fields not
	// in doc are kept) and returns the updated record, or ErrNotFound.
	UpdateByID(ctx context.Context, id string, doc domain.Record) (domain.Record, error)

	// DeleteByID removes the record with id, or returns ErrNotFound.
	DeleteByID(ctx context.Context, id string) error

	// FindOne returns the first record whose top-level field equals value.
	FindOne(ctx context.Context, field string, value any) (domain.Record, error)
}

// Dashboards holds the singleton dashboard aggregate.
type Dashboards interface {
	// Get returns the stored aggregate or ErrNotFound.
	Get(ctx context.Context) (domain.Dashboard, error)

	// Put replaces the stored aggregate.
	Put(ctx context.Context, d domain.Dashboard) error
}

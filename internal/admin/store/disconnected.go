package store

import (
	"context"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/domain"
)

// Disconnected is the store used when no database is configured. It is
// never ready, so a Registry over it serves empty lists, the empty
// dashboard and 503s on writes.
type Disconnected struct{}

func (Disconnected) Collection(name string) Collection { return offline(name) }
func (Disconnected) Dashboards() Dashboards            { return offline("dashboard") }
func (Disconnected) Ready() bool                       { return false }
func (Disconnected) ApplyMigrations() error            { return nil }
func (Disconnected) Ping(context.Context) error        { return ErrUnavailable }
func (Disconnected) Close() error                      { return nil }

type offline string

func (o offline) Name() string { return string(o) }

func (offline) List(context.Context, int) ([]domain.Record, error) {
	return []domain.Record{}, nil
}

func (offline) Insert(context.Context, domain.Record) (domain.Record, error) {
	return nil, ErrUnavailable
}

func (offline) UpdateByID(context.Context, string, domain.Record) (domain.Record, error) {
	return nil, ErrUnavailable
}

func (offline) DeleteByID(context.Context, string) error { return ErrUnavailable }

func (offline) FindOne(context.Context, string, any) (domain.Record, error) {
	return nil, ErrUnavailable
}

func (offline) Get(context.Context) (domain.Dashboard, error) {
	return domain.Dashboard{}, ErrUnavailable
}

func (offline) Put(context.Context, domain.Dashboard) error { return ErrUnavailable }

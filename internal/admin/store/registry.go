package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/domain"
)

// Registry hands out one readiness-guarded handle per collection name. It
// is built once at startup and read-only afterwards, so it needs no lock.
type Registry struct {
	store   Store
	handles map[string]*guarded
}

// NewRegistry registers names against s. Duplicates collapse.
func NewRegistry(s Store, names []string) *Registry {
	r := &Registry{store: s, handles: make(map[string]*guarded, len(names))}
	for _, name := range names {
		if _, ok := r.handles[name]; ok {
			continue
		}
		r.handles[name] = &guarded{name: name, store: s}
	}
	return r
}

// Accessor returns the handle for name. Repeated calls return the same
// handle. Names not registered at startup are an error.
func (r *Registry) Accessor(name string) (Collection, error) {
	h, ok := r.handles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
	return h, nil
}

// Names returns the registered collection names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.handles))
	for n := range r.handles {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Ready reports whether the underlying store is connected.
func (r *Registry) Ready() bool { return r.store.Ready() }

// Ping checks the database connection. Drivers refresh their ready flag
// from the result.
func (r *Registry) Ping(ctx context.Context) error { return r.store.Ping(ctx) }

// Dashboards returns the readiness-guarded dashboard accessor.
func (r *Registry) Dashboards() Dashboards { return guardedDashboards{store: r.store} }

// guarded short-circuits every call while the store isn't ready: List
// yields nothing, everything else fails with ErrUnavailable, no I/O.
type guarded struct {
	name  string
	store Store
}

func (g *guarded) Name() string { return g.name }

func (g *guarded) List(ctx context.Context, limit int) ([]domain.Record, error) {
	if !g.store.Ready() {
		return []domain.Record{}, nil
	}
	return g.store.Collection(g.name).List(ctx, ClampLimit(limit))
}

func (g *guarded) Insert(ctx context.Context, doc domain.Record) (domain.Record, error) {
	if !g.store.Ready() {
		return nil, ErrUnavailable
	}
	return g.store.Collection(g.name).Insert(ctx, Sanitize(doc))
}

func (g *guarded) UpdateByID(ctx context.Context, id string, doc domain.Record) (domain.Record, error) {
	if !g.store.Ready() {
		return nil, ErrUnavailable
	}
	return g.store.Collection(g.name).UpdateByID(ctx, id, Sanitize(doc))
}

func (g *guarded) DeleteByID(ctx context.Context, id string) error {
	if !g.store.Ready() {
		return ErrUnavailable
	}
	return g.store.Collection(g.name).DeleteByID(ctx, id)
}

func (g *guarded) FindOne(ctx context.Context, field string, value any) (domain.Record, error) {
	if !g.store.Ready() {
		return nil, ErrUnavailable
	}
	return g.store.Collection(g.name).FindOne(ctx, field, value)
}

type guardedDashboards struct {
	store Store
}

func (g guardedDashboards) Get(ctx context.Context) (domain.Dashboard, error) {
	if !g.store.Ready() {
		return domain.Dashboard{}, ErrUnavailable
	}
	return g.store.Dashboards().Get(ctx)
}

func (g guardedDashboards) Put(ctx context.Context, d domain.Dashboard) error {
	if !g.store.Ready() {
		return ErrUnavailable
	}
	return g.store.Dashboards().Put(ctx, d)
}

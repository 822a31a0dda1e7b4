package service

import (
	"context"
	"errors"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/domain"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/slogx"
)

type DashboardService struct {
	Dashboards store.Dashboards
}

// Get returns the stored dashboard aggregate. It never fails: a missing
// aggregate, a disconnected store or a read error all yield the empty
// dashboard.
func (s *DashboardService) Get(ctx context.Context) domain.Dashboard {
	if s.Dashboards == nil {
		return domain.EmptyDashboard()
	}
	d, err := s.Dashboards.Get(ctx)
	switch {
	case err == nil:
		d.Normalize()
		return d
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrUnavailable):
	default:
		slogx.FromContext(ctx).Error("dashboard read failed", "err", err)
	}
	return domain.EmptyDashboard()
}

// Put replaces the stored aggregate.
func (s *DashboardService) Put(ctx context.Context, d domain.Dashboard) error {
	d.Normalize()
	return s.Dashboards.Put(ctx, d)
}

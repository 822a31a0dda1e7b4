package service

import (
	"context"
	"errors"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/domain"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/metrics"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/slogx"
)

// RecordService is generic CRUD over the registered collections.
type RecordService struct {
	Registry *store.Registry
	Metrics  *metrics.Metrics
}

func (s *RecordService) List(ctx context.Context, collection string, limit int) ([]domain.Record, error) {
	c, err := s.Registry.Accessor(collection)
	if err != nil {
		return nil, err
	}
	recs, err := c.List(ctx, limit)
	s.observe(ctx, collection, "list", err)
	if err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []domain.Record{}
	}
	return recs, nil
}

// Create inserts payload after stripping system-managed keys. Non-object
// payloads are stored as empty records.
func (s *RecordService) Create(ctx context.Context, collection string, payload any) (domain.Record, error) {
	c, err := s.Registry.Accessor(collection)
	if err != nil {
		return nil, err
	}
	rec, err := c.Insert(ctx, store.Sanitize(payload))
	s.observe(ctx, collection, "create", err)
	return rec, err
}

func (s *RecordService) Update(ctx context.Context, collection, id string, payload any) (domain.Record, error) {
	c, err := s.Registry.Accessor(collection)
	if err != nil {
		return nil, err
	}
	rec, err := c.UpdateByID(ctx, id, store.Sanitize(payload))
	s.observe(ctx, collection, "update", err)
	return rec, err
}

func (s *RecordService) Delete(ctx context.Context, collection, id string) error {
	c, err := s.Registry.Accessor(collection)
	if err != nil {
		return err
	}
	err = c.DeleteByID(ctx, id)
	s.observe(ctx, collection, "delete", err)
	return err
}

func (s *RecordService) observe(ctx context.Context, collection, op string, err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, store.ErrNotFound):
		result = "not_found"
	case errors.Is(err, store.ErrUnavailable):
		result = "unavailable"
	default:
		result = "error"
		slogx.FromContext(ctx).Error("store operation failed",
			"collection", collection, "op", op, "err", err)
	}
	s.Metrics.ObserveStoreOp(collection, op, result)
}

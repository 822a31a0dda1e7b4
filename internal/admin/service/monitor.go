package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/metrics"
)

// Pinger is the part of a store the monitor needs.
type Pinger interface {
	Ping(ctx context.Context) error
	Ready() bool
}

// StoreMonitor periodically pings the document store so readiness (and
// the store_ready gauge) follows the real connection state between
// requests.
type StoreMonitor struct {
	Store    Pinger
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewStoreMonitor creates a monitor. A zero or negative interval defaults
// to 15 seconds.
func NewStoreMonitor(p Pinger, logger *slog.Logger, m *metrics.Metrics, interval time.Duration) *StoreMonitor {
	if interval <= 0 {
		interval = 15 * time.Second
	}

	return &StoreMonitor{
		Store:    p,
		Logger:   logger,
		Metrics:  m,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the monitor in the background until Stop.
func (s *StoreMonitor) Start() {
	go s.run()
	s.Logger.Info("store monitor started", "interval", s.Interval)
}

// Stop blocks until the worker has exited.
func (s *StoreMonitor) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("store monitor stopped")
}

func (s *StoreMonitor) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	last := s.check(!s.Store.Ready())

	for {
		select {
		case <-ticker.C:
			last = s.check(last)
		case <-s.stopCh:
			return
		}
	}
}

// check pings once and logs when readiness differs from prev.
func (s *StoreMonitor) check(prev bool) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.Store.Ping(ctx)
	ready := err == nil
	s.Metrics.SetStoreReady(ready)

	if ready != prev {
		if ready {
			s.Logger.Info("document store connected")
		} else {
			s.Logger.Warn("document store unavailable", "error", err)
		}
	}
	return ready
}

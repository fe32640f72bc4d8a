// Package monitor periodically logs session health: dataset size, live
// markers, open panel, and process memory.
package monitor

import (
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/dplocate/locator/internal/session"
)

// Dependencies holds all dependencies for the monitor service
type Dependencies struct {
	Controller *session.Controller
	Logger     *slog.Logger
	Interval   time.Duration
}

// Service manages status monitoring
type Service struct {
	deps      Dependencies
	isRunning bool
	mu        sync.RWMutex
	stopChan  chan struct{}
}

// NewService creates a new monitor service. A non-positive interval defaults
// to one minute.
func NewService(deps Dependencies) *Service {
	if deps.Interval <= 0 {
		deps.Interval = time.Minute
	}
	return &Service{
		deps: deps,
	}
}

// Start begins the status loop. Repeated calls are no-ops; a stopped
// service can be started again.
func (s *Service) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		return
	}
	s.isRunning = true
	s.stopChan = make(chan struct{})

	go s.run(s.stopChan)
}

// Stop ends the status loop.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isRunning {
		return
	}
	s.isRunning = false
	close(s.stopChan)
}

// IsRunning reports whether the loop is active.
func (s *Service) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *Service) run(stop <-chan struct{}) {
	ticker := time.NewTicker(s.deps.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.logStatus()
		}
	}
}

func (s *Service) logStatus() {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	attrs := []any{
		"goroutines", runtime.NumGoroutine(),
		"heapMB", mem.HeapAlloc / 1024 / 1024,
	}

	c := s.deps.Controller
	if c != nil && c.Ready() {
		attrs = append(attrs,
			"points", len(c.Points()),
			"markers", c.Registry().Len(),
		)
		if open := c.Registry().OpenEntry(); open != nil {
			attrs = append(attrs, "openPanel", open.Point.ID)
		}
	}

	s.deps.Logger.Info("Session status", attrs...)
}

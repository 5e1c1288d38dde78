package handlers

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alrooliya/workshop-booking/internal/booking"
	"github.com/alrooliya/workshop-booking/pkg/logging"
)

// SessionRegistry holds the in-flight form controllers, one per booking
// attempt. Drafts live only in memory; an abandoned session is swept
// after the idle timeout.
type SessionRegistry struct {
	mu          sync.RWMutex
	sessions    map[string]*sessionEntry
	factory     func() *booking.Controller
	idleTimeout time.Duration
	logger      *logging.Logger
}

type sessionEntry struct {
	controller *booking.Controller
	lastActive time.Time
}

// NewSessionRegistry creates a registry producing controllers from factory.
func NewSessionRegistry(factory func() *booking.Controller, idleTimeout time.Duration, logger *logging.Logger) *SessionRegistry {
	if factory == nil {
		panic("handlers: controller factory required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &SessionRegistry{
		sessions:    make(map[string]*sessionEntry),
		factory:     factory,
		idleTimeout: idleTimeout,
		logger:      logger,
	}
}

// Create starts a new form session.
func (r *SessionRegistry) Create() (string, *booking.Controller) {
	id := uuid.NewString()
	ctrl := r.factory()
	r.mu.Lock()
	r.sessions[id] = &sessionEntry{controller: ctrl, lastActive: time.Now()}
	r.mu.Unlock()
	return id, ctrl
}

// Get returns the controller for a session and refreshes its idle clock.
func (r *SessionRegistry) Get(id string) (*booking.Controller, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	entry.lastActive = time.Now()
	return entry.controller, true
}

// Delete removes a session.
func (r *SessionRegistry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Len reports the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// SweepIdle drops sessions idle longer than the timeout and returns how
// many were removed.
func (r *SessionRegistry) SweepIdle(now time.Time) int {
	if r.idleTimeout <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, entry := range r.sessions {
		if now.Sub(entry.lastActive) > r.idleTimeout {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps idle sessions until ctx is cancelled.
func (r *SessionRegistry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := r.SweepIdle(now); removed > 0 {
				r.logger.Info("swept idle booking sessions", "removed", removed, "live", r.Len())
			}
		}
	}
}

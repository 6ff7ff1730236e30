package session

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	DefaultIdleTTL       = 30 * time.Minute
	DefaultSweepInterval = time.Minute
)

type RegistryConfig struct {
	IdleTTL       time.Duration
	SweepInterval time.Duration
	Session       Options
}

// Registry owns every live client session.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session

	cfg RegistryConfig
	log *slog.Logger
	now func() time.Time
}

func NewRegistry(log *slog.Logger, cfg RegistryConfig) *Registry {
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = DefaultIdleTTL
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = DefaultSweepInterval
	}
	if log == nil {
		log = slog.Default()
	}
	return &Registry{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

func (r *Registry) Create() *Session {
	s := New(r.cfg.Session)

	r.mu.Lock()
	s.lastSeen = r.now()
	r.sessions[s.id] = s
	r.mu.Unlock()

	r.log.Info("session created", slog.String("session_id", s.id))
	return s
}

// Get looks a session up without locking it. Use Do to touch its state.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	_, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		r.log.Info("session closed", slog.String("session_id", id))
	}
	return ok
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Do runs fn with exclusive access to the session, one event at a time.
func (r *Registry) Do(id string, fn func(*Session) error) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if ok {
		s.lastSeen = r.now()
	}
	r.mu.Unlock()

	if !ok {
		return ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

// Run expires idle sessions until ctx is done.
func (r *Registry) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep()
		case <-ctx.Done():
			return nil
		}
	}
}

func (r *Registry) sweep() int {
	cutoff := r.now().Add(-r.cfg.IdleTTL)

	r.mu.Lock()
	var expired []string
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			expired = append(expired, id)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, id := range expired {
		r.log.Info("session expired", slog.String("session_id", id))
	}
	return len(expired)
}

package session

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/artem13815/kirana/pkg/metrics"
)

// Registry maps session ids to their state.
type Registry struct {
	mu            sync.RWMutex
	sessions      map[string]*Session
	ratePerMinute int
	metrics       *metrics.Recorder
	now           func() time.Time
}

// NewRegistry creates an empty registry. ratePerMinute <= 0 disables chat limiting.
func NewRegistry(ratePerMinute int, rec *metrics.Recorder) *Registry {
	return &Registry{
		sessions:      make(map[string]*Session),
		ratePerMinute: ratePerMinute,
		metrics:       rec,
		now:           time.Now,
	}
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *Registry) GetOrCreate(id string) *Session {
	if s, ok := r.Get(id); ok {
		return s
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok {
		return s
	}
	s := &Session{ID: id, CreatedAt: r.now().UTC()}
	if r.ratePerMinute > 0 {
		s.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(r.ratePerMinute)), r.ratePerMinute)
	}
	r.sessions[id] = s
	r.metrics.SessionCreated()
	return s
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

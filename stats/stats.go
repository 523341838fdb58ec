package stats

import (
	"sync"
	"time"

	"github.com/viant/uuid4/internal/clock"
)

// Delta is an incremental counter change.
type Delta struct {
	Generated int
	Accepted  int
	Rejected  int
}

// Snapshot is a read-only copy of the counters.
type Snapshot struct {
	Generated    int       `json:"generated" yaml:"generated"`
	Accepted     int       `json:"accepted" yaml:"accepted"`
	Rejected     int       `json:"rejected" yaml:"rejected"`
	LastIssuedAt time.Time `json:"lastIssuedAt,omitempty" yaml:"lastIssuedAt,omitempty"`
}

// Stats aggregates counters.
type Stats struct {
	mux      sync.Mutex
	current  Snapshot
	onChange func(Snapshot)
}

// Update applies d. When d records generated identifiers LastIssuedAt is
// refreshed. The onChange callback, if any, runs outside the lock.
func (s *Stats) Update(d Delta) {
	if s == nil {
		return
	}
	s.mux.Lock()
	s.current.Generated += d.Generated
	s.current.Accepted += d.Accepted
	s.current.Rejected += d.Rejected
	if d.Generated > 0 {
		s.current.LastIssuedAt = clock.Now()
	}
	snapshot := s.current
	cb := s.onChange
	s.mux.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the counters.
func (s *Stats) Snapshot() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.current
}

// OnChange registers cb; nil disables the callback.
func (s *Stats) OnChange(cb func(Snapshot)) {
	if s == nil {
		return
	}
	s.mux.Lock()
	s.onChange = cb
	s.mux.Unlock()
}

// New creates an empty Stats.
func New() *Stats {
	return &Stats{}
}

package breaker

import (
	"sort"
	"sync"
)

// Registry hands out one shared Breaker per key. It is owned by the
// composition root and passed to every component that calls a platform.
type Registry struct {
	config Config

	mu       sync.Mutex
	breakers map[string]*Breaker
}

func NewRegistry(cfg Config) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Registry{
		config:   cfg,
		breakers: make(map[string]*Breaker),
	}, nil
}

func (r *Registry) Get(key string) *Breaker {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b, ok := r.breakers[key]; ok {
		return b
	}
	// config was validated in NewRegistry
	b, _ := New(key, r.config)
	r.breakers[key] = b
	return b
}

// ResetAll drops every breaker; the next Get for any key returns a fresh closed one.
func (r *Registry) ResetAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.breakers = make(map[string]*Breaker)
}

func (r *Registry) Snapshot() []Stats {
	r.mu.Lock()
	breakers := make([]*Breaker, 0, len(r.breakers))
	for _, b := range r.breakers {
		breakers = append(breakers, b)
	}
	r.mu.Unlock()

	stats := make([]Stats, 0, len(breakers))
	for _, b := range breakers {
		stats = append(stats, b.Stats())
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Key < stats[j].Key })
	return stats
}

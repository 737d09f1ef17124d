package scoreboard

import (
	"context"
	"sort"
	"sync"
)

// Store persists session results
type Store interface {
	Save(ctx context.Context, r Result) error
	Top(ctx context.Context, n int) ([]Result, error)
	Count(ctx context.Context) (int64, error)
}

// MemoryStore keeps results for the process lifetime, used when Redis is not configured
type MemoryStore struct {
	mu      sync.Mutex
	results []Result
}

// NewMemoryStore creates an empty in-process store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Save(_ context.Context, r Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
	return nil
}

func (m *MemoryStore) Top(_ context.Context, n int) ([]Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.results) == 0 {
		return nil, ErrNoResults
	}
	sorted := make([]Result, len(m.results))
	copy(sorted, m.results)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score() > sorted[j].Score() })
	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted, nil
}

func (m *MemoryStore) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.results)), nil
}

package status

import (
	"sort"
	"sync"
)

// MetricMap is a keyed set of cells of type T
// Cells are allocated on first lookup and never removed, so callers cache the pointer
type MetricMap[T any] struct {
	mu    sync.RWMutex
	cells map[string]*T
	keys  []string // sorted, kept in step with cells
}

// NewMetricMap creates an empty map
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{cells: make(map[string]*T)}
}

// Get returns the cell for key, allocating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	cell := m.cells[key]
	m.mu.RUnlock()
	if cell != nil {
		return cell
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if cell = m.cells[key]; cell == nil {
		cell = new(T)
		m.cells[key] = cell
		at := sort.SearchStrings(m.keys, key)
		m.keys = append(m.keys, "")
		copy(m.keys[at+1:], m.keys[at:])
		m.keys[at] = key
	}
	return cell
}

// Range visits cells in key order
func (m *MetricMap[T]) Range(fn func(key string, cell *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, k := range m.keys {
		fn(k, m.cells[k])
	}
}

package status

import "sync/atomic"

// AtomicString is a label cell (phase, loss cause), zero value reads ""
type AtomicString struct {
	v atomic.Value
}

func (s *AtomicString) Store(val string) { s.v.Store(val) }

func (s *AtomicString) Load() string {
	val, _ := s.v.Load().(string)
	return val
}

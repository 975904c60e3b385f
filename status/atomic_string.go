package status

import "sync/atomic"

// MaxStringLen caps string metrics, in runes, so debug panel lines stay short
const MaxStringLen = 24

// AtomicString is a string metric; the zero value holds ""
type AtomicString struct {
	v atomic.Pointer[string]
}

// Store replaces the value, keeping at most MaxStringLen runes
func (s *AtomicString) Store(val string) {
	n := 0
	for i := range val {
		if n == MaxStringLen {
			val = val[:i]
			break
		}
		n++
	}
	s.v.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.v.Load(); p != nil {
		return *p
	}
	return ""
}

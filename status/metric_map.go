package status

import "sync"

// MetricMap maps metric names to metrics of type T
// Lookups take the lock; callers keep the returned pointer and update it without locking
type MetricMap[T any] struct {
	mu      sync.RWMutex
	metrics map[string]*T
}

// NewMetricMap returns an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{metrics: make(map[string]*T)}
}

// Get returns the metric registered under name, registering a zero metric on first use
func (m *MetricMap[T]) Get(name string) *T {
	m.mu.RLock()
	ptr := m.metrics[name]
	m.mu.RUnlock()
	if ptr != nil {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr = m.metrics[name]; ptr == nil {
		ptr = new(T)
		m.metrics[name] = ptr
	}
	return ptr
}

// Has reports whether name has been registered
func (m *MetricMap[T]) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.metrics[name] != nil
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.metrics)
}

// Format appends one "name=value" line per metric to lines, in no particular order
func (m *MetricMap[T]) Format(lines []string, value func(*T) string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for name, ptr := range m.metrics {
		lines = append(lines, name+"="+value(ptr))
	}
	return lines
}

package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 stored as its IEEE-754 bits; the zero value holds 0
type AtomicFloat struct {
	v atomic.Uint64
}

func (f *AtomicFloat) Store(x float64) { f.v.Store(math.Float64bits(x)) }

func (f *AtomicFloat) Load() float64 { return math.Float64frombits(f.v.Load()) }

// Add adds delta with a compare-and-swap loop and returns the sum
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		bits := f.v.Load()
		sum := math.Float64frombits(bits) + delta
		if f.v.CompareAndSwap(bits, math.Float64bits(sum)) {
			return sum
		}
	}
}

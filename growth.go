package dynbuf

import (
	"math"
	"unsafe"
)

const (
	// BufferGrowthFactor is the multiplier applied to a Buffer's capacity
	// when an append no longer fits.
	BufferGrowthFactor = 2
	// VecGrowthFactor is the multiplier applied to a Vec's capacity when an
	// append no longer fits. Pop shrinks by the same factor.
	VecGrowthFactor = 3

	// DefaultBufferCapacity is the capacity of New(), terminator included.
	DefaultBufferCapacity = 8
	// DefaultVecCapacity is the slot count of NewVec().
	DefaultVecCapacity = 5
	// DefaultLineCapacity bounds a single ReadLine, terminator included.
	DefaultLineCapacity = 8192

	// MaxCapacity is the largest slot count ever requested from the runtime.
	MaxCapacity = math.MaxInt32

	maxAllocBytes = uint64(1) << 40
)

// NextCapacity returns the capacity a container of the given current
// capacity must grow to in order to hold required slots, scaling by factor.
// It returns current unchanged when it already fits and saturates at
// MaxCapacity instead of overflowing.
func NextCapacity(current, required, factor int) int {
	if required <= current {
		return current
	}
	if factor < 2 {
		factor = 2
	}
	c := max(current, 1)
	for c < required {
		if c > MaxCapacity/factor {
			return max(required, MaxCapacity)
		}
		c *= factor
	}
	return c
}

// ShrinkCapacity returns the capacity after a removal left length slots in
// use: current/factor once utilization drops below 1/factor, else current.
func ShrinkCapacity(length, current, factor int) int {
	if factor < 2 {
		return current
	}
	if shrunk := current / factor; length < shrunk {
		return shrunk
	}
	return current
}

// makeSlots is the single allocation point of the package. Requests the
// runtime could not satisfy are reported as allocation faults.
func makeSlots[T any](op string, n int) []T {
	var zero T
	if n < 0 || n > MaxCapacity || uint64(n)*uint64(unsafe.Sizeof(zero)) > maxAllocBytes {
		raise(op, ErrAlloc, "cannot allocate %d slots", n)
	}
	return make([]T, n)
}

// resize returns a fresh allocation of exactly n slots holding the first
// min(keep, n) elements of old.
func resize[T any](op string, old []T, keep, n int) []T {
	buf := makeSlots[T](op, n)
	copy(buf, old[:min(keep, n)])
	return buf
}

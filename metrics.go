package dynbuf

// Metrics is a snapshot of a Buffer's or Vec's allocation state.
type Metrics struct {
	Len         int     // Bytes or elements in use
	Capacity    int     // Allocated bytes (terminator included) or slots
	Utilization float64 // Len / Capacity (0.0-1.0)
	Valid       bool
}

// Utilization returns Len()/Cap(), or 0 for an invalid buffer.
func (b *Buffer) Utilization() float64 {
	return utilization(b.Len(), b.Cap())
}

// Metrics returns a snapshot of buffer statistics.
func (b *Buffer) Metrics() Metrics {
	return Metrics{
		Len:         b.Len(),
		Capacity:    b.Cap(),
		Utilization: b.Utilization(),
		Valid:       b.Valid(),
	}
}

// Utilization returns Len()/Cap(), or 0 for an invalid or zero-capacity vector.
func (v *Vec[T]) Utilization() float64 {
	return utilization(v.Len(), v.Cap())
}

// Metrics returns a snapshot of vector statistics.
func (v *Vec[T]) Metrics() Metrics {
	return Metrics{
		Len:         v.Len(),
		Capacity:    v.Cap(),
		Utilization: v.Utilization(),
		Valid:       v.Valid(),
	}
}

func utilization(n, c int) float64 {
	if c == 0 {
		return 0
	}
	return float64(n) / float64(c)
}

package dynbuf

// Vec is a growable array of T with explicit capacity control. It grows by
// VecGrowthFactor and shrinks by the same factor when Pop leaves it less
// than 1/VecGrowthFactor full. The zero value is invalid; use NewVec,
// VecWithCapacity or VecFromSlice. Not goroutine-safe.
//
// A Vec owns its slots, not what the elements point to. See ReleaseWithItems
// for vectors that own their elements' payloads.
type Vec[T any] struct {
	data []T // len(data) is the capacity
	n    int
}

// NewVec returns an empty vector with DefaultVecCapacity slots.
func NewVec[T any]() *Vec[T] {
	return VecWithCapacity[T](DefaultVecCapacity)
}

// VecWithCapacity returns an empty vector with c slots. Zero is allowed;
// if c < 0, DefaultVecCapacity is used.
func VecWithCapacity[T any](c int) *Vec[T] {
	if c < 0 {
		c = DefaultVecCapacity
	}
	return &Vec[T]{data: makeSlots[T]("VecWithCapacity", c)}
}

// VecFromSlice returns a vector holding a copy of items, with capacity
// exactly len(items).
func VecFromSlice[T any](items []T) *Vec[T] {
	v := &Vec[T]{data: makeSlots[T]("VecFromSlice", len(items)), n: len(items)}
	copy(v.data, items)
	return v
}

// Valid reports whether v holds an allocation.
func (v *Vec[T]) Valid() bool {
	return v != nil && v.data != nil && v.n >= 0 && v.n <= len(v.data)
}

// Len returns the number of elements. Invalid vectors report 0.
func (v *Vec[T]) Len() int {
	if !v.Valid() {
		return 0
	}
	return v.n
}

// Cap returns the number of slots. Invalid vectors report 0.
func (v *Vec[T]) Cap() int {
	if !v.Valid() {
		return 0
	}
	return len(v.data)
}

// At returns the element at i.
func (v *Vec[T]) At(i int) T {
	v.mustBeValid("Vec.At")
	if i < 0 || i >= v.n {
		raise("Vec.At", ErrRange, "index %d, length %d", i, v.n)
	}
	return v.data[i]
}

// Items returns the elements. The slice aliases the vector and is only good
// until the next mutation.
func (v *Vec[T]) Items() []T {
	if !v.Valid() {
		return nil
	}
	return v.data[:v.n:v.n]
}

// Reserve resizes the allocation to exactly c slots, dropping elements
// that no longer fit.
func (v *Vec[T]) Reserve(c int) {
	v.mustBeValid("Vec.Reserve")
	v.reserve("Vec.Reserve", c)
}

func (v *Vec[T]) reserve(op string, c int) {
	if c == len(v.data) {
		return
	}
	if c < 0 {
		raise(op, ErrRange, "negative capacity %d", c)
	}
	v.data = resize(op, v.data, v.n, c)
	v.n = min(v.n, c)
}

// Append adds x at the end.
func (v *Vec[T]) Append(x T) {
	v.mustBeValid("Vec.Append")
	if v.n+1 > len(v.data) {
		v.reserve("Vec.Append", NextCapacity(len(v.data), v.n+1, VecGrowthFactor))
	}
	v.data[v.n] = x
	v.n++
}

// AppendVec adds all elements of o at the end. o is left untouched and may
// be v itself.
func (v *Vec[T]) AppendVec(o *Vec[T]) {
	v.mustBeValid("Vec.AppendVec")
	o.mustBeValid("Vec.AppendVec")
	v.append("Vec.AppendVec", o.data[:o.n])
}

// AppendSlice adds all of items at the end.
func (v *Vec[T]) AppendSlice(items []T) {
	v.mustBeValid("Vec.AppendSlice")
	v.append("Vec.AppendSlice", items)
}

// append keeps the old allocation reachable through items across the
// reserve, so items may alias v.
func (v *Vec[T]) append(op string, items []T) {
	need := v.n + len(items)
	if need > len(v.data) {
		v.reserve(op, NextCapacity(len(v.data), need, VecGrowthFactor))
	}
	copy(v.data[v.n:], items)
	v.n = need
}

// Pop removes and returns the last element, shrinking the allocation by
// VecGrowthFactor once fewer than Cap()/VecGrowthFactor elements remain.
func (v *Vec[T]) Pop() T {
	v.mustBeValid("Vec.Pop")
	if v.n == 0 {
		raise("Vec.Pop", ErrRange, "vector is empty")
	}
	var zero T
	v.n--
	x := v.data[v.n]
	v.data[v.n] = zero
	v.reserve("Vec.Pop", ShrinkCapacity(v.n, len(v.data), VecGrowthFactor))
	return x
}

// PopAt removes and returns the element at i, shifting the ones after it
// left. It never shrinks the allocation.
func (v *Vec[T]) PopAt(i int) T {
	v.mustBeValid("Vec.PopAt")
	if i < 0 || i >= v.n {
		raise("Vec.PopAt", ErrRange, "index %d, length %d", i, v.n)
	}
	var zero T
	x := v.data[i]
	copy(v.data[i:], v.data[i+1:v.n])
	v.n--
	v.data[v.n] = zero
	return x
}

// Release drops the allocation without touching the elements. The vector
// is invalid afterwards and any further use, including a second Release,
// panics.
func (v *Vec[T]) Release() {
	v.mustBeValid("Vec.Release")
	v.data = nil
	v.n = 0
}

func (v *Vec[T]) mustBeValid(op string) {
	if !v.Valid() {
		raise(op, ErrInvalid, "")
	}
}

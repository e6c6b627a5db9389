package dynbuf

// Releaser is an element that owns a payload and can free it.
type Releaser interface {
	Release()
}

// Box is a heap-allocated value owned by whoever holds the box, typically a
// Vec. Get after Release panics.
type Box[T any] struct {
	p *T
}

// NewBox allocates a box holding v.
func NewBox[T any](v T) *Box[T] {
	p := new(T)
	*p = v
	return &Box[T]{p: p}
}

// Get returns the boxed value.
func (x *Box[T]) Get() T {
	if x.Released() {
		raise("Box.Get", ErrInvalid, "")
	}
	return *x.p
}

// Set replaces the boxed value.
func (x *Box[T]) Set(v T) {
	if x.Released() {
		raise("Box.Set", ErrInvalid, "")
	}
	*x.p = v
}

// Released reports whether the payload has been freed.
func (x *Box[T]) Released() bool {
	return x == nil || x.p == nil
}

// Release frees the payload. Releasing twice panics.
func (x *Box[T]) Release() {
	if x.Released() {
		raise("Box.Release", ErrInvalid, "")
	}
	var zero T
	*x.p = zero
	x.p = nil
}

// BoxSlice returns a vector owning one box per item, with capacity exactly
// len(items). Free it with ReleaseWithItems.
func BoxSlice[T any](items []T) *Vec[*Box[T]] {
	v := &Vec[*Box[T]]{data: makeSlots[*Box[T]]("BoxSlice", len(items)), n: len(items)}
	for i, item := range items {
		v.data[i] = NewBox(item)
	}
	return v
}

// VecFromInts returns a vector owning a boxed copy of each int.
func VecFromInts(ints []int) *Vec[*Box[int]] {
	return BoxSlice(ints)
}

// ReleaseWithItems releases every element's payload and then the vector
// itself. Use Release instead when the vector only borrows its elements.
func ReleaseWithItems[T Releaser](v *Vec[T]) {
	v.mustBeValid("ReleaseWithItems")
	for _, x := range v.data[:v.n] {
		x.Release()
	}
	v.Release()
}

package dynbuf

import (
	"fmt"
	"io"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// interface guard
var (
	_ io.WriterTo  = (*Buffer)(nil)
	_ fmt.Stringer = (*Buffer)(nil)
)

// Buffer is a growable byte string whose backing allocation always holds a
// NUL terminator right after the content. Len excludes the terminator, Cap
// includes it. The zero value is invalid; use New or one of the other
// constructors. Not goroutine-safe.
type Buffer struct {
	data []byte // len(data) is the capacity; data[n] == 0
	n    int
}

// New returns an empty buffer with DefaultBufferCapacity.
func New() *Buffer {
	return WithCapacity(DefaultBufferCapacity)
}

// WithCapacity returns an empty, zero-filled buffer of c bytes.
// If c <= 0, DefaultBufferCapacity is used.
func WithCapacity(c int) *Buffer {
	if c <= 0 {
		c = DefaultBufferCapacity
	}
	return &Buffer{data: makeSlots[byte]("WithCapacity", c)}
}

// FromString copies s into a buffer sized exactly to fit it and the terminator.
func FromString(s string) *Buffer {
	b := &Buffer{data: makeSlots[byte]("FromString", len(s)+1), n: len(s)}
	copy(b.data, s)
	return b
}

// FromBytes copies p into a buffer sized exactly to fit it and the terminator.
func FromBytes(p []byte) *Buffer {
	b := &Buffer{data: makeSlots[byte]("FromBytes", len(p)+1), n: len(p)}
	copy(b.data, p)
	return b
}

// Invalid returns a buffer in the invalid state, as returned by failed reads.
func Invalid() *Buffer { return &Buffer{} }

// Valid reports whether b holds an allocation that satisfies the terminator
// invariant.
func (b *Buffer) Valid() bool {
	return b != nil && b.data != nil && b.n >= 0 && b.n < len(b.data) && b.data[b.n] == 0
}

// Len returns the content length in bytes. Invalid buffers report 0.
func (b *Buffer) Len() int {
	if !b.Valid() {
		return 0
	}
	return b.n
}

// Cap returns the allocation size in bytes, terminator included.
// Invalid buffers report 0.
func (b *Buffer) Cap() int {
	if !b.Valid() {
		return 0
	}
	return len(b.data)
}

// Bytes returns the content without the terminator. The slice aliases the
// buffer and is only good until the next mutation.
func (b *Buffer) Bytes() []byte {
	if !b.Valid() {
		return nil
	}
	return b.data[:b.n:b.n]
}

// Terminated returns the content followed by its NUL terminator. The last
// byte is read-only: overwriting it leaves b invalid until Release.
func (b *Buffer) Terminated() []byte {
	if !b.Valid() {
		return nil
	}
	return b.data[: b.n+1 : b.n+1]
}

// String returns a copy of the content.
func (b *Buffer) String() string {
	if !b.Valid() {
		return ""
	}
	return string(b.data[:b.n])
}

// Reserve resizes the allocation to exactly c bytes. It never rounds up.
// Content that no longer fits is truncated to c-1 bytes and re-terminated.
func (b *Buffer) Reserve(c int) {
	b.mustBeValid("Buffer.Reserve")
	b.reserve("Buffer.Reserve", c)
}

func (b *Buffer) reserve(op string, c int) {
	if c == len(b.data) {
		return
	}
	if c < 1 {
		raise(op, ErrRange, "capacity %d leaves no room for the terminator", c)
	}
	b.data = resize(op, b.data, b.n, c)
	if b.n >= c {
		b.n = c - 1
		b.data[b.n] = 0
	}
}

// grow makes room for k more content bytes, scaling by BufferGrowthFactor.
func (b *Buffer) grow(op string, k int) {
	need := b.n + k + 1
	if need > len(b.data) {
		b.reserve(op, NextCapacity(len(b.data), need, BufferGrowthFactor))
	}
}

// Release drops the allocation. The buffer is invalid afterwards and any
// further use, including a second Release, panics.
func (b *Buffer) Release() {
	// A clobbered terminator makes b invalid but it still owns data.
	if b == nil || b.data == nil {
		raise("Buffer.Release", ErrInvalid, "")
	}
	b.data = nil
	b.n = 0
}

// Clear zeroes the whole allocation and empties the buffer, keeping its capacity.
func (b *Buffer) Clear() {
	b.mustBeValid("Buffer.Clear")
	clear(b.data)
	b.n = 0
}

// Duplicate returns an independent buffer with the same capacity and content.
func (b *Buffer) Duplicate() *Buffer {
	b.mustBeValid("Buffer.Duplicate")
	d := &Buffer{data: makeSlots[byte]("Buffer.Duplicate", len(b.data)), n: b.n}
	copy(d.data, b.data[:b.n])
	return d
}

// Copy overwrites b with the content of src.
func (b *Buffer) Copy(src *Buffer) {
	b.mustBeValid("Buffer.Copy")
	src.mustBeValid("Buffer.Copy")
	b.set("Buffer.Copy", src.data[:src.n])
}

// CopyN overwrites b with the first k bytes of src.
func (b *Buffer) CopyN(src *Buffer, k int) {
	b.mustBeValid("Buffer.CopyN")
	src.mustBeValid("Buffer.CopyN")
	if k < 0 || k > src.n {
		raise("Buffer.CopyN", ErrRange, "count %d, source length %d", k, src.n)
	}
	b.set("Buffer.CopyN", src.data[:k])
}

// CopyBytes overwrites b with p.
func (b *Buffer) CopyBytes(p []byte) {
	b.mustBeValid("Buffer.CopyBytes")
	b.set("Buffer.CopyBytes", p)
}

// CopyString overwrites b with s.
func (b *Buffer) CopyString(s string) {
	b.mustBeValid("Buffer.CopyString")
	if len(s)+1 > len(b.data) {
		b.data = makeSlots[byte]("Buffer.CopyString", len(s)+1)
	}
	b.n = copy(b.data, s)
	b.data[b.n] = 0
}

// set replaces the content, reallocating to exactly len(p)+1 when it does not fit.
// The old allocation stays reachable through p, so p may alias it.
func (b *Buffer) set(op string, p []byte) {
	if len(p)+1 > len(b.data) {
		b.data = makeSlots[byte](op, len(p)+1)
	}
	b.n = copy(b.data, p)
	b.data[b.n] = 0
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) {
	b.mustBeValid("Buffer.AppendByte")
	b.grow("Buffer.AppendByte", 1)
	b.data[b.n] = c
	b.n++
	b.data[b.n] = 0
}

// AppendBytes appends p. p must not point into b's own allocation.
func (b *Buffer) AppendBytes(p []byte) {
	b.mustBeValid("Buffer.AppendBytes")
	b.append("Buffer.AppendBytes", p)
}

// AppendString appends s.
func (b *Buffer) AppendString(s string) {
	b.mustBeValid("Buffer.AppendString")
	b.grow("Buffer.AppendString", len(s))
	b.n += copy(b.data[b.n:], s)
	b.data[b.n] = 0
}

// AppendBuffer appends the content of o. Appending a buffer to itself panics.
func (b *Buffer) AppendBuffer(o *Buffer) {
	b.mustBeValid("Buffer.AppendBuffer")
	o.mustBeValid("Buffer.AppendBuffer")
	if o == b {
		raise("Buffer.AppendBuffer", ErrAlias, "buffer appended to itself")
	}
	b.append("Buffer.AppendBuffer", o.data[:o.n])
}

func (b *Buffer) append(op string, p []byte) {
	if overlaps(b.data, p) {
		raise(op, ErrAlias, "%d bytes point into the destination", len(p))
	}
	b.grow(op, len(p))
	b.n += copy(b.data[b.n:], p)
	b.data[b.n] = 0
}

// Pop removes and returns the last byte.
func (b *Buffer) Pop() byte {
	b.mustBeValid("Buffer.Pop")
	if b.n == 0 {
		raise("Buffer.Pop", ErrRange, "buffer is empty")
	}
	b.n--
	c := b.data[b.n]
	b.data[b.n] = 0
	return c
}

// Equal reports whether b and o hold the same bytes.
func (b *Buffer) Equal(o *Buffer) bool {
	b.mustBeValid("Buffer.Equal")
	o.mustBeValid("Buffer.Equal")
	if b.n != o.n {
		return false
	}
	for i := 0; i < b.n; i++ {
		if b.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// EqualFold is Equal under ASCII case folding.
func (b *Buffer) EqualFold(o *Buffer) bool {
	b.mustBeValid("Buffer.EqualFold")
	o.mustBeValid("Buffer.EqualFold")
	if b.n != o.n {
		return false
	}
	for i := 0; i < b.n; i++ {
		if lower(b.data[i]) != lower(o.data[i]) {
			return false
		}
	}
	return true
}

// Sum64 returns the xxhash64 digest of the content.
func (b *Buffer) Sum64() uint64 {
	b.mustBeValid("Buffer.Sum64")
	return xxhash.Sum64(b.data[:b.n])
}

// WriteTo writes the content, without the terminator, to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	b.mustBeValid("Buffer.WriteTo")
	n, err := w.Write(b.data[:b.n])
	if err == nil && n < b.n {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// Println writes the content followed by a newline to w.
func (b *Buffer) Println(w io.Writer) error {
	if _, err := b.WriteTo(w); err != nil {
		return err
	}
	_, err := w.Write([]byte{'\n'})
	return err
}

func (b *Buffer) mustBeValid(op string) {
	if !b.Valid() {
		raise(op, ErrInvalid, "")
	}
}

// overlaps reports whether p points anywhere into the allocation of buf.
func overlaps(buf, p []byte) bool {
	if len(p) == 0 || cap(buf) == 0 {
		return false
	}
	lo := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	hi := lo + uintptr(cap(buf))
	plo := uintptr(unsafe.Pointer(unsafe.SliceData(p)))
	phi := plo + uintptr(len(p))
	return plo < hi && lo < phi
}

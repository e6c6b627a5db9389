package dynbuf

import "strings"

// DefaultCutset is the whitespace removed by the Trim family.
const DefaultCutset = " \n\t\r"

// TrimLeft returns a new buffer without leading whitespace.
func (b *Buffer) TrimLeft() *Buffer {
	lo, hi := b.span("Buffer.TrimLeft", DefaultCutset, true, false)
	return b.sub("Buffer.TrimLeft", lo, hi)
}

// TrimRight returns a new buffer without trailing whitespace.
func (b *Buffer) TrimRight() *Buffer {
	lo, hi := b.span("Buffer.TrimRight", DefaultCutset, false, true)
	return b.sub("Buffer.TrimRight", lo, hi)
}

// Trim returns a new buffer without leading and trailing whitespace.
func (b *Buffer) Trim() *Buffer {
	return b.TrimCutset(DefaultCutset)
}

// TrimCutset returns a new buffer without leading and trailing bytes
// contained in cutset.
func (b *Buffer) TrimCutset(cutset string) *Buffer {
	lo, hi := b.span("Buffer.Trim", cutset, true, true)
	return b.sub("Buffer.Trim", lo, hi)
}

// TrimLeftInPlace removes leading whitespace from b.
func (b *Buffer) TrimLeftInPlace() {
	lo, hi := b.span("Buffer.TrimLeftInPlace", DefaultCutset, true, false)
	b.keep(lo, hi)
}

// TrimRightInPlace removes trailing whitespace from b.
func (b *Buffer) TrimRightInPlace() {
	lo, hi := b.span("Buffer.TrimRightInPlace", DefaultCutset, false, true)
	b.keep(lo, hi)
}

// TrimInPlace removes leading and trailing whitespace from b.
func (b *Buffer) TrimInPlace() {
	b.TrimCutsetInPlace(DefaultCutset)
}

// TrimCutsetInPlace removes leading and trailing bytes contained in cutset.
func (b *Buffer) TrimCutsetInPlace(cutset string) {
	lo, hi := b.span("Buffer.TrimInPlace", cutset, true, true)
	b.keep(lo, hi)
}

// span returns the [lo, hi) window of b left after trimming. Both scans stop
// at the other end, so empty and all-cutset content yield lo == hi.
func (b *Buffer) span(op, cutset string, left, right bool) (lo, hi int) {
	b.mustBeValid(op)
	lo, hi = 0, b.n
	if left {
		for lo < hi && strings.IndexByte(cutset, b.data[lo]) >= 0 {
			lo++
		}
	}
	if right {
		for hi > lo && strings.IndexByte(cutset, b.data[hi-1]) >= 0 {
			hi--
		}
	}
	return lo, hi
}

// sub copies data[lo:hi] into a buffer sized exactly to fit.
func (b *Buffer) sub(op string, lo, hi int) *Buffer {
	r := &Buffer{data: makeSlots[byte](op, hi-lo+1), n: hi - lo}
	copy(r.data, b.data[lo:hi])
	return r
}

// keep moves data[lo:hi] to the front and zeroes what is left behind.
func (b *Buffer) keep(lo, hi int) {
	old := b.n
	b.n = copy(b.data, b.data[lo:hi])
	clear(b.data[b.n : old+1])
}

// ToUpper returns a copy of b, with the same capacity, mapped to ASCII upper case.
func (b *Buffer) ToUpper() *Buffer {
	b.mustBeValid("Buffer.ToUpper")
	r := &Buffer{data: makeSlots[byte]("Buffer.ToUpper", len(b.data)), n: b.n}
	for i := 0; i < b.n; i++ {
		r.data[i] = upper(b.data[i])
	}
	return r
}

// ToLower returns a copy of b, with the same capacity, mapped to ASCII lower case.
func (b *Buffer) ToLower() *Buffer {
	b.mustBeValid("Buffer.ToLower")
	r := &Buffer{data: makeSlots[byte]("Buffer.ToLower", len(b.data)), n: b.n}
	for i := 0; i < b.n; i++ {
		r.data[i] = lower(b.data[i])
	}
	return r
}

// ToUpperInPlace maps the content of b to ASCII upper case.
func (b *Buffer) ToUpperInPlace() {
	b.mustBeValid("Buffer.ToUpperInPlace")
	for i := 0; i < b.n; i++ {
		b.data[i] = upper(b.data[i])
	}
}

// ToLowerInPlace maps the content of b to ASCII lower case.
func (b *Buffer) ToLowerInPlace() {
	b.mustBeValid("Buffer.ToLowerInPlace")
	for i := 0; i < b.n; i++ {
		b.data[i] = lower(b.data[i])
	}
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

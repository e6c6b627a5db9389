package dynbuf

import "fmt"

// counter is an io.Writer that only measures.
type counter int

func (c *counter) Write(p []byte) (int, error) {
	*c += counter(len(p))
	return len(p), nil
}

// measure returns the exact length fmt would render for format and args.
func measure(format string, a ...any) int {
	var c counter
	fmt.Fprintf(&c, format, a...)
	return int(c)
}

// Sprintf returns a new buffer holding the formatted text, sized exactly to
// the rendered length plus the terminator.
func Sprintf(format string, a ...any) *Buffer {
	n := measure(format, a...)
	b := &Buffer{data: makeSlots[byte]("Sprintf", n+1)}
	b.render("Sprintf", n, format, a...)
	return b
}

// Format renders format and args into b, replacing its content, and returns
// the number of bytes written. The text is measured first and b grows to
// exactly that length plus the terminator, so nothing is truncated.
// b itself, or a slice of it, must not appear among the args.
func (b *Buffer) Format(format string, a ...any) int {
	b.mustBeValid("Buffer.Format")
	for _, arg := range a {
		switch v := arg.(type) {
		case *Buffer:
			if v == b {
				raise("Buffer.Format", ErrAlias, "destination passed as an argument")
			}
		case []byte:
			if overlaps(b.data, v) {
				raise("Buffer.Format", ErrAlias, "argument points into the destination")
			}
		}
	}
	n := measure(format, a...)
	if n+1 > len(b.data) {
		b.data = makeSlots[byte]("Buffer.Format", n+1)
	}
	b.render("Buffer.Format", n, format, a...)
	return b.n
}

// render is the second pass. With the capacity clipped to n, fmt writes in
// place unless an argument renders longer than it measured.
func (b *Buffer) render(op string, n int, format string, a ...any) {
	out := fmt.Appendf(b.data[:0:n], format, a...)
	if len(out) > n {
		b.set(op, out)
		return
	}
	b.n = len(out)
	b.data[b.n] = 0
}

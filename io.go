package dynbuf

import (
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// ReadLine reads one line of at most DefaultLineCapacity-1 bytes from r.
// See ReadLineCap.
func (b *Buffer) ReadLine(r io.Reader) bool {
	return b.ReadLineCap(r, DefaultLineCapacity)
}

// ReadLineCap reads bytes from r until a newline or until c-1 bytes are
// read, whichever comes first, and replaces b with them. A single trailing
// newline is dropped and the capacity is then set to exactly Len()+1.
//
// r is read one byte at a time so nothing past the line is consumed. b may
// be invalid beforehand. At end of stream, or on a read error before any
// byte arrived, ReadLineCap returns false and leaves b as it was.
// If c <= 0, DefaultLineCapacity is used.
func (b *Buffer) ReadLineCap(r io.Reader, c int) bool {
	if b == nil {
		raise("Buffer.ReadLine", ErrInvalid, "nil buffer")
	}
	if c <= 0 {
		c = DefaultLineCapacity
	}
	if c < 2 {
		raise("Buffer.ReadLine", ErrRange, "capacity %d leaves no room for a byte", c)
	}
	line := makeSlots[byte]("Buffer.ReadLine", c)
	n, err := readLine(r, line[:c-1])
	if n == 0 {
		if err != nil && err != io.EOF {
			glog.V(1).Infof("dynbuf: read line: %v", err)
		}
		return false
	}
	if err != nil && err != io.EOF {
		glog.V(2).Infof("dynbuf: partial line of %d bytes: %v", n, err)
	}
	if line[n-1] == '\n' {
		n--
	}
	b.data = resize("Buffer.ReadLine", line, n, n+1)
	b.n = n
	return true
}

func readLine(r io.Reader, p []byte) (n int, err error) {
	for n < len(p) {
		var c byte
		if c, err = readByte(r); err != nil {
			return n, err
		}
		p[n] = c
		n++
		if c == '\n' {
			break
		}
	}
	return n, nil
}

func readByte(r io.Reader) (byte, error) {
	if br, ok := r.(io.ByteReader); ok {
		return br.ReadByte()
	}
	var one [1]byte
	_, err := io.ReadFull(r, one[:])
	return one[0], err
}

// ReadFile reads the named file into a buffer whose content is the whole
// file. The size is taken by seeking to the end, then the file is read in
// one go. On failure it returns an invalid buffer and the cause.
func ReadFile(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		glog.V(1).Infof("dynbuf: %v", err)
		return Invalid(), errors.Wrap(err, "dynbuf: read file")
	}
	defer f.Close()

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return Invalid(), errors.Wrapf(err, "dynbuf: seek %q", path)
	}
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		return Invalid(), errors.Wrapf(err, "dynbuf: seek %q", path)
	}
	if size >= MaxCapacity {
		return Invalid(), errors.Wrapf(ErrAlloc, "dynbuf: %q is %d bytes", path, size)
	}

	b := &Buffer{data: makeSlots[byte]("ReadFile", int(size)+1), n: int(size)}
	if _, err = io.ReadFull(f, b.data[:size]); err != nil {
		glog.V(1).Infof("dynbuf: short read of %q: %v", path, err)
		return Invalid(), errors.Wrapf(err, "dynbuf: short read of %q", path)
	}
	return b, nil
}

// Input writes prompt, when non-empty, to stdout and reads one line from
// stdin. It returns an invalid buffer at end of input.
func Input(prompt string) *Buffer {
	return InputFrom(os.Stdout, os.Stdin, prompt)
}

// InputFrom is Input over arbitrary streams.
func InputFrom(w io.Writer, r io.Reader, prompt string) *Buffer {
	if prompt != "" {
		if _, err := io.WriteString(w, prompt); err != nil {
			glog.V(1).Infof("dynbuf: prompt: %v", err)
		}
	}
	b := Invalid()
	b.ReadLine(r)
	return b
}

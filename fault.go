package dynbuf

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Fault kinds. A *Fault unwraps to one of these.
var (
	// ErrInvalid reports use of a released or never-constructed instance.
	ErrInvalid = errors.New("use of invalid or released instance")

	// ErrRange reports a position, count or capacity outside the valid range.
	ErrRange = errors.New("out of range")

	// ErrAlias reports an append whose source overlaps the destination's
	// own allocation.
	ErrAlias = errors.New("source aliases destination")

	// ErrAlloc reports an allocation the package refuses to request.
	ErrAlloc = errors.New("allocation failed")
)

const pkgPrefix = "github.com/pavanmanishd/dynbuf."

// Fault is the panic value for contract violations. Faults are programmer
// errors and are not meant to be recovered outside of tests.
type Fault struct {
	Op   string // operation that detected the violation
	Kind error  // one of ErrInvalid, ErrRange, ErrAlias, ErrAlloc
	Msg  string
	File string // call site outside this package
	Line int
}

func (f *Fault) Error() string {
	var sb strings.Builder
	sb.WriteString("dynbuf: ")
	sb.WriteString(f.Op)
	sb.WriteString(": ")
	sb.WriteString(f.Kind.Error())
	if f.Msg != "" {
		sb.WriteString(": ")
		sb.WriteString(f.Msg)
	}
	if f.File != "" {
		fmt.Fprintf(&sb, " (%s:%d)", f.File, f.Line)
	}
	return sb.String()
}

func (f *Fault) Unwrap() error { return f.Kind }

// Cause makes faults work with errors.Cause.
func (f *Fault) Cause() error { return f.Kind }

// raise logs the fault against the first caller outside the package and panics.
func raise(op string, kind error, format string, a ...any) {
	f := &Fault{Op: op, Kind: kind}
	if format != "" {
		f.Msg = fmt.Sprintf(format, a...)
	}
	depth := callSite(f)
	glog.ErrorDepth(depth, f.Error())
	glog.Flush()
	panic(f)
}

// callSite fills in the file:line of the frame that called into the package
// and returns its depth relative to raise.
func callSite(f *Fault) int {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:]) // skip Callers, callSite, raise
	frames := runtime.CallersFrames(pcs[:n])
	for depth := 1; ; depth++ {
		fr, more := frames.Next()
		internal := strings.HasPrefix(fr.Function, pkgPrefix) && !strings.HasSuffix(fr.File, "_test.go")
		if !internal {
			f.File, f.Line = filepath.Base(fr.File), fr.Line
			return depth
		}
		if !more {
			return 1
		}
	}
}

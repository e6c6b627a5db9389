// Package dynbuf implements growable byte buffers and typed vectors with
// explicit capacity, explicit validity and explicit release.
//
// # Overview
//
// Go slices grow on their own and are reclaimed by the garbage collector.
// dynbuf is for code that wants to see and steer that instead:
//
//   - Exact control over when and how far an allocation grows or shrinks
//   - A NUL-terminated byte form of every string buffer
//   - A distinct invalid state for released or failed instances
//   - Loud failures on misuse instead of silently working on stale data
//
// # Basic Usage
//
//	b := dynbuf.New()   // 8 bytes, terminator included
//	defer b.Release()   // Explicit end of life
//
//	b.AppendString("hello")
//	b.AppendByte(' ')
//	b.Format("got: %q", "line") // Measured first, never truncated
//	t := b.Trim()               // New buffer; TrimInPlace mutates
//
//	v := dynbuf.NewVec[int]() // 5 slots
//	v.Append(5)
//	v.AppendSlice([]int{3, 1})
//	x := v.PopAt(1)
//
// # Growth Policy
//
// A Buffer doubles its capacity until the content and the terminator fit.
// A Vec triples it, and Pop divides it by three once fewer than a third of
// the slots are in use. Reserve sets an exact capacity and never rounds.
// NextCapacity and ShrinkCapacity expose the arithmetic on its own.
//
// # Validity and Faults
//
// The zero value of Buffer and Vec is invalid, and Release returns an
// instance to that state. Any operation on an invalid instance, an index or
// pop out of range, an append from a buffer into itself, or an allocation
// past MaxCapacity is a programmer error: the call site is logged through
// glog and the operation panics with a *Fault. Every allocation failure is
// handled this way; constructors never return a half-built value.
//
// Reading a file or a line is different. A missing file, a short read or
// the end of a stream is an ordinary outcome: ReadFile returns an invalid
// buffer and an error, ReadLine returns false.
//
// # Ownership
//
// A Vec owns its slots only. For vectors that also own what their elements
// hold, store Releasers such as *Box[T] and free them with ReleaseWithItems.
//
// # Thread Safety
//
// Buffers and vectors are single-owner values. Guard them externally if they
// must be shared between goroutines.
package dynbuf

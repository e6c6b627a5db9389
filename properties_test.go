package dynbuf_test

import (
	"fmt"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pavanmanishd/dynbuf"
)

func beTerminated() OmegaMatcher {
	return WithTransform(func(b *dynbuf.Buffer) bool {
		z := b.Terminated()
		return b.Valid() && len(z) == b.Len()+1 && z[b.Len()] == 0 && b.Len()+1 <= b.Cap()
	}, BeTrue())
}

func faultWith(kind error) OmegaMatcher {
	return PanicWith(And(BeAssignableToTypeOf(&dynbuf.Fault{}), MatchError(kind)))
}

var _ = Describe("Buffer", func() {
	var b *dynbuf.Buffer

	BeforeEach(func() {
		b = dynbuf.New()
	})

	Describe("terminator", func() {
		DescribeTable("holds after every mutation",
			func(mutate func(b *dynbuf.Buffer)) {
				b.AppendString(" some\tcontent\n")
				mutate(b)
				Expect(b).To(beTerminated())
			},
			Entry("AppendByte", func(b *dynbuf.Buffer) { b.AppendByte('!') }),
			Entry("AppendBytes", func(b *dynbuf.Buffer) { b.AppendBytes([]byte("0123456789")) }),
			Entry("AppendBuffer", func(b *dynbuf.Buffer) { b.AppendBuffer(dynbuf.FromString("xyz")) }),
			Entry("Copy", func(b *dynbuf.Buffer) { b.Copy(dynbuf.FromString("a much longer replacement")) }),
			Entry("CopyString", func(b *dynbuf.Buffer) { b.CopyString("x") }),
			Entry("CopyN", func(b *dynbuf.Buffer) { b.CopyN(dynbuf.FromString("abcdef"), 3) }),
			Entry("Format", func(b *dynbuf.Buffer) { b.Format("%05d|%s", 42, "tail") }),
			Entry("Pop", func(b *dynbuf.Buffer) { b.Pop() }),
			Entry("Reserve grow", func(b *dynbuf.Buffer) { b.Reserve(100) }),
			Entry("Reserve truncate", func(b *dynbuf.Buffer) { b.Reserve(4) }),
			Entry("Clear", func(b *dynbuf.Buffer) { b.Clear() }),
			Entry("TrimInPlace", func(b *dynbuf.Buffer) { b.TrimInPlace() }),
			Entry("TrimLeftInPlace", func(b *dynbuf.Buffer) { b.TrimLeftInPlace() }),
			Entry("TrimRightInPlace", func(b *dynbuf.Buffer) { b.TrimRightInPlace() }),
			Entry("TrimCutsetInPlace", func(b *dynbuf.Buffer) { b.TrimCutsetInPlace(" sc\n") }),
			Entry("ToUpperInPlace", func(b *dynbuf.Buffer) { b.ToUpperInPlace() }),
			Entry("ToLowerInPlace", func(b *dynbuf.Buffer) { b.ToLowerInPlace() }),
		)
	})

	It("appends associatively", func() {
		parts := []string{"", "a", "bc", strings.Repeat("d", 17), "\x00e"}
		for _, x := range parts {
			for _, y := range parts {
				for _, z := range parts {
					left := dynbuf.FromString(x)
					xy := left.Duplicate()
					xy.AppendString(y)
					xy.AppendString(z)

					yz := dynbuf.FromString(y)
					yz.AppendString(z)
					left.AppendBuffer(yz)

					Expect(left.Equal(xy)).To(BeTrue(), "%q %q %q", x, y, z)
					Expect(left.String()).To(Equal(x + y + z))
				}
			}
		}
	})

	DescribeTable("trim is idempotent",
		func(in string) {
			once := dynbuf.FromString(in).Trim()
			twice := once.Trim()
			Expect(twice.Equal(once)).To(BeTrue())
			Expect(once.String()).To(Equal(strings.Trim(in, dynbuf.DefaultCutset)))
		},
		Entry("empty", ""),
		Entry("single space", " "),
		Entry("single byte", "x"),
		Entry("all whitespace", " \t\r\n \n"),
		Entry("padded", "\t hello world \r\n"),
		Entry("inner whitespace", "a \t b"),
	)

	DescribeTable("TrimLeft on content without a non-blank byte",
		func(in string) {
			t := dynbuf.FromString(in).TrimLeft()
			Expect(t.Len()).To(BeZero())
			Expect(t.Cap()).To(Equal(1))
			Expect(t).To(beTerminated())
		},
		Entry("empty", ""),
		Entry("all whitespace", " \n\t\r"),
	)

	It("keeps case mapping idempotent", func() {
		src := dynbuf.FromString("Mixed Case 123 \xc3\x89")
		up := src.ToUpper()
		Expect(up.ToUpper().Equal(up)).To(BeTrue())
		low := src.ToLower()
		Expect(low.ToLower().Equal(low)).To(BeTrue())
		Expect(up.EqualFold(low)).To(BeTrue())
		Expect(up.Cap()).To(Equal(src.Cap()))
	})

	DescribeTable("equality",
		func(x, y string, equal, fold bool) {
			bx, by := dynbuf.FromString(x), dynbuf.FromString(y)
			Expect(bx.Equal(by)).To(Equal(equal))
			Expect(bx.EqualFold(by)).To(Equal(fold))
			if equal {
				Expect(bx.Sum64()).To(Equal(by.Sum64()))
			}
		},
		Entry("both empty", "", "", true, true),
		Entry("same", "abc", "abc", true, true),
		Entry("case differs", "abc", "ABC", false, true),
		Entry("length differs", "abc", "abcd", false, false),
		Entry("prefix", "", "a", false, false),
		Entry("last byte differs", "abc", "abd", false, false),
	)

	It("measures formatted text exactly", func() {
		line := dynbuf.FromString("an input line")
		dup := line.Duplicate()
		want := fmt.Sprintf(`got: "%s"`, dup)

		n := b.Format(`got: "%s"`, dup)
		Expect(n).To(Equal(len(want)))
		Expect(b.Cap()).To(Equal(len(want) + 1))
		Expect(b.String()).To(Equal(want))
	})

	It("faults on misuse instead of working on stale data", func() {
		Expect(func() { b.AppendBuffer(b) }).To(faultWith(dynbuf.ErrAlias))
		Expect(func() { dynbuf.New().Pop() }).To(faultWith(dynbuf.ErrRange))
		b.Release()
		Expect(b.Valid()).To(BeFalse())
		Expect(func() { b.AppendByte('x') }).To(faultWith(dynbuf.ErrInvalid))
		Expect(func() { b.Release() }).To(faultWith(dynbuf.ErrInvalid))
	})

	It("reports a missing file as an invalid buffer", func() {
		r, err := dynbuf.ReadFile(filepath.Join(GinkgoT().TempDir(), "nope"))
		Expect(err).To(HaveOccurred())
		Expect(r.Valid()).To(BeFalse())
	})
})

var _ = Describe("Vec", func() {
	It("runs the append and pop scenario", func() {
		v := dynbuf.VecWithCapacity[int](5)
		for _, x := range []int{5, 3, 1, 2, 4} {
			v.Append(x)
		}
		Expect(v.Items()).To(Equal([]int{5, 3, 1, 2, 4}))
		Expect(v.Pop()).To(Equal(4))
		Expect(v.Len()).To(Equal(4))
		Expect(v.PopAt(1)).To(Equal(3))
		Expect(v.Items()).To(Equal([]int{5, 1, 2}))

		other := dynbuf.VecFromSlice([]int{9, 13, 5})
		v.AppendVec(other)
		Expect(v.Items()).To(Equal([]int{5, 1, 2, 9, 13, 5}))
		v.AppendSlice(other.Items()[1:3])
		Expect(v.Items()).To(Equal([]int{5, 1, 2, 9, 13, 5, 13, 5}))
	})

	It("round-trips appends and pops and shrinks back", func() {
		v := dynbuf.NewVec[int]()
		const n = 200
		for i := 0; i < n; i++ {
			v.Append(i)
			Expect(v.Len()).To(BeNumerically("<=", v.Cap()))
		}
		peak := v.Cap()
		for i := n - 1; i >= 0; i-- {
			Expect(v.Pop()).To(Equal(i))
		}
		Expect(v.Len()).To(BeZero())
		Expect(v.Cap()).To(BeNumerically("<", peak))
		Expect(v.Cap()).To(BeNumerically("<=", dynbuf.DefaultVecCapacity))
	})

	It("keeps order on PopAt", func() {
		v := dynbuf.VecFromSlice([]string{"a", "b", "c", "d"})
		c := v.Cap()
		Expect(v.PopAt(0)).To(Equal("a"))
		Expect(v.PopAt(1)).To(Equal("c"))
		Expect(v.Items()).To(Equal([]string{"b", "d"}))
		Expect(v.Cap()).To(Equal(c))
		Expect(func() { v.PopAt(2) }).To(faultWith(dynbuf.ErrRange))
	})

	It("releases owned elements", func() {
		v := dynbuf.VecFromInts([]int{1, 2, 3})
		first := v.At(0)
		dynbuf.ReleaseWithItems(v)
		Expect(first.Released()).To(BeTrue())
		Expect(func() { first.Get() }).To(faultWith(dynbuf.ErrInvalid))
		Expect(func() { v.Release() }).To(faultWith(dynbuf.ErrInvalid))
	})
})

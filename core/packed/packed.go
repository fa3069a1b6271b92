// core/packed/packed.go

// Package packed stores DNA sequences at four bases per byte using the 2-bit
// codes defined by package nuc. A Sequence is immutable once constructed and
// safe for concurrent readers.
package packed

import (
	"bytes"
	"fmt"

	"nuccount-core/nuc"
)

const slotsPerWord = 4

// wordCount returns the number of byte words needed for n bases.
func wordCount(n int) int { return (n + 3) >> 2 }

// shiftFor returns the bit offset of base i inside its word. Slot order is
// most-significant first, matching the conventional 2-bit file layouts.
func shiftFor(i int) uint { return uint(6 - 2*(i%slotsPerWord)) }

// Sequence is an immutable DNA sequence packed at four bases per byte.
// The zero value is the empty sequence. Unused slots in the final word are
// always zero, so equal sequences are byte-for-byte equal.
type Sequence struct {
	words  []byte
	length int
}

// Parse builds a Sequence from base characters, either case. The first
// invalid character aborts the whole parse: no partial Sequence is returned.
// The error is a *ParseError carrying the byte offset.
func Parse(s string) (Sequence, error) {
	return parse(len(s), func(i int) byte { return s[i] })
}

// ParseBytes is Parse for a byte slice. The input is not retained.
func ParseBytes(b []byte) (Sequence, error) {
	return parse(len(b), func(i int) byte { return b[i] })
}

func parse(n int, at func(int) byte) (Sequence, error) {
	words := make([]byte, wordCount(n))
	for i := 0; i < n; i++ {
		nt, err := nuc.Parse(at(i))
		if err != nil {
			return Sequence{}, &ParseError{Pos: i, Err: err}
		}
		words[i>>2] |= byte(nt) << shiftFor(i)
	}
	return Sequence{words: words, length: n}, nil
}

// FromNucleotides packs typed bases. It cannot fail: every Nucleotide value
// is masked to its 2-bit code.
func FromNucleotides(ns []nuc.Nucleotide) Sequence {
	words := make([]byte, wordCount(len(ns)))
	for i, nt := range ns {
		words[i>>2] |= (byte(nt) & 0x3) << shiftFor(i)
	}
	return Sequence{words: words, length: len(ns)}
}

// Len returns the number of bases.
func (s Sequence) Len() int { return s.length }

// Get returns the base at index i. It panics if i is out of range, like a
// slice access.
func (s Sequence) Get(i int) nuc.Nucleotide {
	if i < 0 || i >= s.length {
		panic(fmt.Sprintf("packed: index out of range [%d] with length %d", i, s.length))
	}
	code := s.words[i>>2] >> shiftFor(i) & 0x3
	return nuc.Nucleotide(code)
}

// Bases unpacks the whole sequence into typed values.
func (s Sequence) Bases() []nuc.Nucleotide {
	ns := make([]nuc.Nucleotide, s.length)
	for i := range ns {
		ns[i] = s.Get(i)
	}
	return ns
}

// String renders the sequence as uppercase base characters.
func (s Sequence) String() string {
	out := make([]byte, s.length)
	for i := range out {
		out[i] = s.Get(i).Byte()
	}
	return string(out)
}

// Equal reports whether two sequences hold the same bases. The zero tail
// invariant makes word comparison sufficient.
func (s Sequence) Equal(o Sequence) bool {
	return s.length == o.length && bytes.Equal(s.words, o.words)
}

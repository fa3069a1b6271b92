// core/nuc/nuc.go
package nuc

// Nucleotide is one of the four DNA bases. The constant values double as the
// canonical 2-bit codes used by the packed representation, so converting a
// Nucleotide to its code is a plain integer conversion.
type Nucleotide uint8

const (
	A Nucleotide = 0
	C Nucleotide = 1
	G Nucleotide = 2
	T Nucleotide = 3
)

// Bases lists the four nucleotides in code order. Callers iterate it when
// tallying or printing so output order never depends on map iteration.
var Bases = [4]Nucleotide{A, C, G, T}

var baseBytes = [4]byte{'A', 'C', 'G', 'T'}

// Parse converts a single base character to its Nucleotide. Both cases are
// accepted; every other byte is an InvalidBaseError.
func Parse(b byte) (Nucleotide, error) {
	switch b {
	case 'A', 'a':
		return A, nil
	case 'C', 'c':
		return C, nil
	case 'G', 'g':
		return G, nil
	case 'T', 't':
		return T, nil
	default:
		return 0, InvalidBaseError(b)
	}
}

// FromCode converts a 2-bit code (0..3) to its Nucleotide.
func FromCode(c uint8) (Nucleotide, error) {
	if c > 3 {
		return 0, InvalidCodeError(c)
	}
	return Nucleotide(c), nil
}

// Code returns the 2-bit code of n.
func (n Nucleotide) Code() uint8 { return uint8(n) }

// Byte returns the canonical uppercase base character. A Nucleotide outside
// the four defined values panics on the table lookup.
func (n Nucleotide) Byte() byte { return baseBytes[n] }

func (n Nucleotide) String() string { return string(baseBytes[n]) }

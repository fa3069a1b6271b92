// core/packed/counts.go
package packed

import "nuccount-core/nuc"

// Counts tallies occurrences per base, indexed by 2-bit code.
type Counts [4]int

// Of returns the tally for base n.
func (c Counts) Of(n nuc.Nucleotide) int { return c[n.Code()] }

// Total returns the sum over all four bases.
func (c Counts) Total() int { return c[0] + c[1] + c[2] + c[3] }

// Counts tallies every base in one pass.
func (s Sequence) Counts() Counts {
	var c Counts
	for i := 0; i < s.length; i++ {
		c[s.words[i>>2]>>shiftFor(i)&0x3]++
	}
	return c
}

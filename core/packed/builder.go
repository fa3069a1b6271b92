// core/packed/builder.go
package packed

import "nuccount-core/nuc"

// Builder accumulates bases incrementally and emits an immutable Sequence.
// The zero value is ready to use. Builders let callers pack sources that
// yield bases one at a time without materializing an intermediate slice.
type Builder struct {
	words  []byte
	length int
}

// Append adds bases in order.
func (b *Builder) Append(ns ...nuc.Nucleotide) {
	for _, nt := range ns {
		if b.length%slotsPerWord == 0 {
			b.words = append(b.words, 0)
		}
		b.words[b.length>>2] |= (byte(nt) & 0x3) << shiftFor(b.length)
		b.length++
	}
}

// Len returns the number of bases appended so far.
func (b *Builder) Len() int { return b.length }

// Sequence snapshots the current contents. The builder may keep growing; the
// returned Sequence is unaffected.
func (b *Builder) Sequence() Sequence {
	words := make([]byte, len(b.words))
	copy(words, b.words)
	return Sequence{words: words, length: b.length}
}

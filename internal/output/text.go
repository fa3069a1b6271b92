// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"nuccount-core/nuc"
	"nuccount/internal/common"
)

// writeBlock prints the classic per-sequence count block:
//
//	Input: <echo>
//
//	A: <n>
//	C: <n>
//	G: <n>
//	T: <n>
func writeBlock(w io.Writer, r common.Report) error {
	_, err := fmt.Fprintf(w, "Input: %s\n\nA: %d\nC: %d\nG: %d\nT: %d\n",
		r.Echo(),
		r.Counts.Of(nuc.A), r.Counts.Of(nuc.C), r.Counts.Of(nuc.G), r.Counts.Of(nuc.T))
	return err
}

// WriteText prints one block per report, blank-line separated.
func WriteText(w io.Writer, list []common.Report) error {
	for i, r := range list {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeBlock(w, r); err != nil {
			return err
		}
	}
	return nil
}

// StreamText prints blocks as they arrive. After a write error it keeps
// draining the channel so producers never block.
func StreamText(w io.Writer, in <-chan common.Report) error {
	var err error
	first := true
	for r := range in {
		if err != nil {
			continue
		}
		if !first {
			if _, werr := fmt.Fprintln(w); werr != nil {
				err = werr
				continue
			}
		}
		first = false
		if werr := writeBlock(w, r); werr != nil {
			err = werr
		}
	}
	return err
}

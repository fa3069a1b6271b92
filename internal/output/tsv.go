// internal/output/tsv.go
package output

import (
	"fmt"
	"io"

	"nuccount-core/nuc"
	"nuccount/internal/common"
)

// FormatReportRowTSV returns the 7 TSV columns (no trailing newline).
func FormatReportRowTSV(r common.Report) string {
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%d\t%d\t%d",
		r.SourceFile, r.SequenceID, r.Length,
		r.Counts.Of(nuc.A), r.Counts.Of(nuc.C), r.Counts.Of(nuc.G), r.Counts.Of(nuc.T))
}

// WriteTSV prints one row per report.
func WriteTSV(w io.Writer, list []common.Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(w, FormatReportRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// StreamTSV prints rows as they arrive, draining after a write error.
func StreamTSV(w io.Writer, in <-chan common.Report, header bool) error {
	var err error
	if header {
		if _, werr := fmt.Fprintln(w, TSVHeader); werr != nil {
			err = werr
		}
	}
	for r := range in {
		if err != nil {
			continue
		}
		if _, werr := fmt.Fprintln(w, FormatReportRowTSV(r)); werr != nil {
			err = werr
		}
	}
	return err
}

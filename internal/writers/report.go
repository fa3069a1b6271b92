// internal/writers/report.go
package writers

import (
	"fmt"
	"io"

	"nuccount/internal/common"
	"nuccount/internal/output"
)

// StartReportWriter spins up a writer goroutine for count reports.
// It returns the input channel and a 1-buffered error channel that receives
// the writer's final status after the input channel is closed and drained.
func StartReportWriter(out io.Writer, format string, header bool, bufSize int) (chan<- common.Report, <-chan error) {
	if format == output.FormatJSONL {
		return StartReportJSONLWriter(out, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan common.Report, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case output.FormatJSON:
			var buf []common.Report
			for r := range in {
				buf = append(buf, r)
			}
			err = output.WriteJSON(out, buf)

		case output.FormatTSV:
			err = output.StreamTSV(out, in, header)

		case output.FormatText:
			err = output.StreamText(out, in)

		default:
			for range in {
			}
			err = fmt.Errorf("unsupported output %q", format)
		}
		errCh <- err
	}()

	return in, errCh
}

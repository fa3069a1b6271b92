// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"nuccount/internal/common"
	"nuccount/internal/jsonlutil"
	"nuccount/internal/output"
)

// StartReportJSONLWriter streams each report as one JSON line (v1).
func StartReportJSONLWriter(out io.Writer, bufSize int) (chan<- common.Report, <-chan error) {
	return jsonlutil.Start[common.Report](out, bufSize,
		func(enc *json.Encoder, r common.Report) error {
			return enc.Encode(output.ToAPIReport(r))
		},
		IsBrokenPipe,
	)
}

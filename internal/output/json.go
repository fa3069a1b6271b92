// internal/output/json.go
package output

import (
	"io"

	"nuccount-core/nuc"
	"nuccount/internal/common"
	"nuccount/internal/jsonutil"
	"nuccount/pkg/api"
)

// ToAPIReport converts a Report to the stable wire schema (v1).
func ToAPIReport(r common.Report) api.CountReportV1 {
	return api.CountReportV1{
		SequenceID: r.SequenceID,
		SourceFile: r.SourceFile,
		Input:      r.Input,
		Length:     r.Length,
		A:          r.Counts.Of(nuc.A),
		C:          r.Counts.Of(nuc.C),
		G:          r.Counts.Of(nuc.G),
		T:          r.Counts.Of(nuc.T),
	}
}

func toAPIReports(list []common.Report) []api.CountReportV1 {
	out := make([]api.CountReportV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIReport(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 reports (pretty-indented).
func WriteJSON(w io.Writer, list []common.Report) error {
	return jsonutil.EncodePretty(w, toAPIReports(list))
}

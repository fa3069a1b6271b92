// internal/common/report.go
package common

import "nuccount-core/packed"

// Report is the per-sequence count result that flows from the pipeline to the
// writers. SourceFile is empty for inline input; Input carries the raw text
// only for inline input.
type Report struct {
	SequenceID string
	SourceFile string
	Input      string
	Length     int
	Counts     packed.Counts
}

// Echo returns the text a human-facing block should echo back: the raw input
// for inline runs, the record ID for file records.
func (r Report) Echo() string {
	if r.SourceFile == "" {
		return r.Input
	}
	return r.SequenceID
}

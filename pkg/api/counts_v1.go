// pkg/api/counts_v1.go
package api

// CountReportV1 is the stable JSON/JSONL schema for per-sequence base counts.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type CountReportV1 struct {
	SequenceID string `json:"sequence_id"`
	SourceFile string `json:"source_file,omitempty"`
	Input      string `json:"input,omitempty"`
	Length     int    `json:"length"`
	A          int    `json:"a"`
	C          int    `json:"c"`
	G          int    `json:"g"`
	T          int    `json:"t"`
}

// Package writers turns count reports into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (text blocks, TSV, JSON/JSONL).
//   • The pipeline stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers

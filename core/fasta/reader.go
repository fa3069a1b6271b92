// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Record is one FASTA record, loaded whole. Seq holds the raw sequence bytes
// with line breaks and surrounding whitespace removed; no base validation
// happens here.
type Record struct {
	ID  string
	Seq []byte
}

// ErrNoHeader reports sequence data before the first '>' header.
var ErrNoHeader = errors.New("sequence data before first FASTA header")

// ReadAll parses every record from r. Records are accumulated completely
// before being returned, so callers always see whole sequences.
func ReadAll(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		recs    []Record
		id      string
		seq     []byte
		started bool
		lineNum int
	)
	flush := func() {
		recs = append(recs, Record{ID: id, Seq: seq})
	}
	for sc.Scan() {
		lineNum++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if started {
				flush()
			}
			id = parseHeaderID(line[1:])
			seq = nil
			started = true
			continue
		}
		if !started {
			return nil, fmt.Errorf("line %d: %w", lineNum, ErrNoHeader)
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	if started {
		flush()
	}
	return recs, nil
}

// ReadFile reads every record from path. "-" reads stdin; gzip input is
// detected by magic number or a .gz suffix.
func ReadFile(path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ReadAll(rc)
}

// parseHeaderID returns the first whitespace-delimited token of a header.
func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}

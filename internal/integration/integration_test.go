// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nuccount/internal/app"
	"nuccount/pkg/api"
)

func write(t *testing.T, fn, data string) string {
	t.Helper()
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func TestEndToEndInlineText(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--dna", "ACGTTT"}, &out, &errBuf)

	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	want := "Input: ACGTTT\n\nA: 1\nC: 1\nG: 1\nT: 3\n"
	if out.String() != want {
		t.Fatalf("got %q want %q", out.String(), want)
	}
}

func TestEndToEndInlineLowercase(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--dna", "acgttt"}, &out, &errBuf)

	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "T: 3") {
		t.Fatalf("lowercase input not counted: %q", out.String())
	}
}

func TestEndToEndEmptyDNA(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--dna", ""}, &out, &errBuf)

	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	want := "Input: \n\nA: 0\nC: 0\nG: 0\nT: 0\n"
	if out.String() != want {
		t.Fatalf("got %q want %q", out.String(), want)
	}
}

func TestParseFailureExit1(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--dna", "ACGTTDTT"}, &out, &errBuf)

	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	msg := errBuf.String()
	if !strings.Contains(msg, "position 5") || !strings.Contains(msg, "'D'") {
		t.Fatalf("error should name position and character: %q", msg)
	}
}

func TestEndToEndFastaTSV(t *testing.T) {
	fa := write(t, "itest.fa", ">seq1 desc\nACGT\nACGT\n>seq2\nTTTT\n")
	defer os.Remove(fa)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--fasta", fa, "--output", "tsv"}, &out, &errBuf)

	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %q", out.String())
	}
	if lines[1] != fmt.Sprintf("%s\tseq1\t8\t2\t2\t2\t2", fa) {
		t.Fatalf("row 1 = %q", lines[1])
	}
	if lines[2] != fmt.Sprintf("%s\tseq2\t4\t0\t0\t0\t4", fa) {
		t.Fatalf("row 2 = %q", lines[2])
	}
}

func TestEndToEndFastaTextBlocks(t *testing.T) {
	fa := write(t, "blocks.fa", ">a\nA\n>b\nTT\n")
	defer os.Remove(fa)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--fasta", fa}, &out, &errBuf)

	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	want := "Input: a\n\nA: 1\nC: 0\nG: 0\nT: 0\n\nInput: b\n\nA: 0\nC: 0\nG: 0\nT: 2\n"
	if out.String() != want {
		t.Fatalf("got %q want %q", out.String(), want)
	}
}

func TestParallelMatchesEqualSerial(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&sb, ">seq%02d\n%s\n", i, strings.Repeat("ACGT", i+1))
	}
	fa := write(t, "par.fa", sb.String())
	defer os.Remove(fa)

	run := func(threads int) string {
		var out, errB bytes.Buffer
		code := app.Run([]string{
			"--fasta", fa,
			"--threads", fmt.Sprint(threads),
			"--output", "json",
		}, &out, &errB)
		if code != 0 {
			t.Fatalf("exit %d err %s", code, errB.String())
		}
		return out.String()
	}

	serial := run(1)
	parallel := run(4)

	if serial != parallel {
		t.Fatalf("parallel output differs from serial\nserial: %s\nparallel:%s", serial, parallel)
	}
}

func TestEndToEndJSONL(t *testing.T) {
	fa := write(t, "lines.fa", ">a\nACGT\n>b\nGG\n")
	defer os.Remove(fa)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--fasta", fa, "--output", "jsonl"}, &out, &errBuf)

	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 JSONL lines, got %q", out.String())
	}
	var rep api.CountReportV1
	if err := json.Unmarshal([]byte(lines[1]), &rep); err != nil {
		t.Fatalf("bad JSONL line: %v", err)
	}
	if rep.SequenceID != "b" || rep.G != 2 || rep.Length != 2 {
		t.Fatalf("unexpected report: %+v", rep)
	}
}

func TestEndToEndGzip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "ref.fa.gz")
	fh, err := os.Create(fn)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(">g\nACG\n")); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--fasta", fn, "--output", "tsv", "--no-header"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	if !strings.HasPrefix(out.String(), fn+"\tg\t3\t1\t1\t1\t0") {
		t.Fatalf("unexpected gzip output: %q", out.String())
	}
}

func TestMissingFileExit2(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--fasta", "definitely-absent.fa"}, &out, &errBuf)
	if code != 2 {
		t.Fatalf("expected exit 2, got %d (err=%s)", code, errBuf.String())
	}
}

func TestBadFlagExit2(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--nope"}, &out, &errBuf)
	if code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
}

func TestEmptyArgvShowsUsage(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run(nil, &out, &errBuf)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out.String(), "Usage of nuccount") {
		t.Fatalf("usage not shown: %q", out.String())
	}
}

func TestVersionFlag(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--version"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.HasPrefix(out.String(), "nuccount version ") {
		t.Fatalf("unexpected version output: %q", out.String())
	}
}

func TestThreadsWithDNAWarns(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--dna", "ACGT", "--threads", "4"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d", code)
	}
	if !strings.Contains(errBuf.String(), "WARN:") {
		t.Fatalf("expected warning on stderr, got %q", errBuf.String())
	}

	errBuf.Reset()
	out.Reset()
	code = app.Run([]string{"--dna", "ACGT", "--threads", "4", "--quiet"}, &out, &errBuf)
	if code != 0 || errBuf.Len() != 0 {
		t.Fatalf("quiet run should not warn: code=%d stderr=%q", code, errBuf.String())
	}
}

func TestFastaParseFailureNamesRecord(t *testing.T) {
	fa := write(t, "bad.fa", ">ok\nACGT\n>broken\nACGN\n")
	defer os.Remove(fa)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--fasta", fa, "--output", "tsv"}, &out, &errBuf)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errBuf.String(), `"broken"`) {
		t.Fatalf("error should name the failing record: %q", errBuf.String())
	}
}

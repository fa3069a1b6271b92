// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"nuccount-core/fasta"
	"nuccount-core/packed"
	"nuccount/internal/cli"
	"nuccount/internal/cmdutil"
	"nuccount/internal/common"
	"nuccount/internal/pipeline"
	"nuccount/internal/runutil"
	"nuccount/internal/version"
	"nuccount/internal/writers"
)

// RunContext runs the nuccount CLI. Exit codes: 0 success, 1 sequence parse
// failure, 2 usage or input-file errors, 3 write errors, 130 canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("nuccount")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "nuccount version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	var jobs []pipeline.Job
	if opts.DNASet {
		if opts.Threads > 0 {
			cmdutil.Warnf(stderr, opts.Quiet, "--threads has no effect with --dna")
		}
		jobs = []pipeline.Job{{SequenceID: "manual", Input: opts.DNA, Seq: []byte(opts.DNA)}}
	} else {
		for _, fa := range opts.SeqFiles {
			recs, rerr := fasta.ReadFile(fa)
			if rerr != nil {
				_, _ = fmt.Fprintf(stderr, "read %s: %v\n", fa, rerr)
				return 2
			}
			if len(recs) == 0 {
				cmdutil.Warnf(stderr, opts.Quiet, "no sequences found in %s", fa)
			}
			for _, rec := range recs {
				jobs = append(jobs, pipeline.Job{SequenceID: rec.ID, SourceFile: fa, Seq: rec.Seq})
			}
		}
	}

	thr := runutil.EffectiveThreads(opts.Threads)
	inCh, writeErr := writers.StartReportWriter(outw, opts.Output, opts.Header, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	perr := pipeline.ForEachReport(ctx, pipeline.Config{Threads: thr}, jobs, func(r common.Report) error {
		select {
		case inCh <- r:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		var pe *packed.ParseError
		if errors.As(perr, &pe) {
			return 1
		}
		return 3
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"nuccount-core/packed"
	"nuccount/internal/common"
)

// Config controls the counting pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// Job is one sequence to parse and count. SourceFile is empty for inline
// input; Input carries the raw text only for inline input.
type Job struct {
	SequenceID string
	SourceFile string
	Input      string
	Seq        []byte
}

// Count parses and tallies a single job.
func Count(j Job) (common.Report, error) {
	seq, err := packed.ParseBytes(j.Seq)
	if err != nil {
		return common.Report{}, fmt.Errorf("sequence %q: %w", j.SequenceID, err)
	}
	return common.Report{
		SequenceID: j.SequenceID,
		SourceFile: j.SourceFile,
		Input:      j.Input,
		Length:     seq.Len(),
		Counts:     seq.Counts(),
	}, nil
}

// ForEachReport counts jobs across a worker pool and calls visit once per job
// in input order, regardless of which worker finished first. The first error
// (a parse failure, a visit error, or context cancellation) stops the run and
// is returned.
func ForEachReport(ctx context.Context, cfg Config, jobs []Job, visit func(common.Report) error) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type task struct {
		idx int
		job Job
	}
	type result struct {
		idx int
		rep common.Report
		err error
	}
	tasks := make(chan task, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-tasks:
					if !ok {
						return
					}
					rep, err := Count(t.job)
					select {
					case results <- result{idx: t.idx, rep: rep, err: err}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: reorders results back to input order before visiting.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]result, cfg.Threads*2)
		next := 0
		for r := range results {
			if cerr != nil {
				continue
			}
			pending[r.idx] = r
			for {
				cur, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if cur.err != nil {
					cerr = cur.err
					cancel()
					break
				}
				if err := visit(cur.rep); err != nil {
					cerr = err
					cancel()
					break
				}
			}
		}
	}()

	// Feed work
feed:
	for i, j := range jobs {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- task{idx: i, job: j}:
		}
	}

	close(tasks)
	wg.Wait()
	close(results)
	cwg.Wait()

	if cerr != nil {
		return cerr
	}
	return ctx.Err()
}

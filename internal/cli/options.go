// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"nuccount/internal/cliutil"
	"nuccount/internal/output"
	"nuccount/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	DNA      string
	DNASet   bool // --dna was given, even if empty
	SeqFiles []string

	// Performance
	Threads int

	// Output
	Output string
	Header bool // true unless --no-header
	Quiet  bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: count nucleotides in DNA sequences

Author:  Erick Samera (erick.samera@kpu.ca)
License: MIT
Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	fs.StringVar(&opt.DNA, "dna", "", "DNA text to count (conflicts with --fasta) [*]")
	fs.StringVar(&opt.DNA, "d", "", "alias of --dna")
	var seq stringSlice
	fs.Var(&seq, "fasta", "FASTA file(s) (repeatable or '-') [*]")
	fs.Var(&seq, "s", "alias of --fasta")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")

	// Output
	fs.StringVar(&opt.Output, "output", output.FormatText, "output format: text | tsv | json | jsonl [text]")
	fs.StringVar(&opt.Output, "o", output.FormatText, "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in TSV [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	// Positionals may appear anywhere; they are additional FASTA files.
	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	pos, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.SeqFiles = append([]string(seq), pos...)
	opt.Header = !noHeader
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "dna" || f.Name == "d" {
			opt.DNASet = true
		}
	})

	// Validation
	switch {
	case opt.DNASet && len(opt.SeqFiles) > 0:
		return opt, errors.New("--dna conflicts with --fasta")
	case !opt.DNASet && len(opt.SeqFiles) == 0:
		return opt, errors.New("provide --dna or --fasta")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	switch opt.Output {
	case output.FormatText, output.FormatTSV, output.FormatJSON, output.FormatJSONL:
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }

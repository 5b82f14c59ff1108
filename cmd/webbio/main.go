// Command webbio aligns biological sequences from the command line.
//
// Usage:
//
//	webbio [command] [options]
//
// Commands:
//
//	align       Align two sequences
//	search      Align a query against every record of a FASTA file
//	version     Show version information
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/aria-lang/webbio-go/pkg/webbio"
	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "align":
		alignCmd(os.Args[2:])
	case "search":
		searchCmd(os.Args[2:])
	case "version":
		fmt.Println(webbio.Info())
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`webbio - Pairwise Sequence Alignment Tool

Usage:
  webbio <command> [options]

Commands:
  align     Align two sequences
  search    Align a query against every record of a FASTA file
  version   Show version information
  help      Show this help message

Use "webbio <command> -h" for more information about a command.`)
}

// scoringFlags are the scoring options shared by every command.
type scoringFlags struct {
	global    *bool
	scoring   *string
	match     *float64
	mismatch  *float64
	gapOpen   *float64
	gapExtend *float64
}

func addScoringFlags(fs *flag.FlagSet) scoringFlags {
	d := webbio.Defaults()
	return scoringFlags{
		global:    fs.Bool("global", false, "Use global alignment (Needleman-Wunsch)"),
		scoring:   fs.String("scoring", webbio.ScoringAuto, "Scoring: uniform, blosum62 or auto"),
		match:     fs.Float64("match", d.Match, "Match score (uniform scoring)"),
		mismatch:  fs.Float64("mismatch", d.Mismatch, "Mismatch score (uniform scoring)"),
		gapOpen:   fs.Float64("gap-open", d.GapOpen, "Score of the first gap position"),
		gapExtend: fs.Float64("gap-extend", d.GapExtend, "Score of every further gap position"),
	}
}

func (f scoringFlags) options() alignOptions {
	mode := webbio.Local
	if *f.global {
		mode = webbio.Global
	}
	return alignOptions{
		Mode:    mode,
		Scoring: *f.scoring,
		Params: webbio.Params{
			Match:     *f.match,
			Mismatch:  *f.mismatch,
			GapOpen:   *f.gapOpen,
			GapExtend: *f.gapExtend,
		},
	}
}

// alignOptions are the parsed options of one alignment run.
type alignOptions struct {
	Mode    webbio.Mode
	Scoring string
	Params  webbio.Params
	JSON    bool
	Verbose bool
	Workers int
	Top     int
}

func (o alignOptions) scorer(seqs ...string) (webbio.Scorer, error) {
	if err := o.Params.Validate(); err != nil {
		return nil, err
	}
	return webbio.SelectScorer(o.Scoring, o.Params, seqs...)
}

func startProfile(cpu, mem bool) interface{ Stop() } {
	// go tool pprof -http=:8080 cpu.pprof
	switch {
	case cpu:
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	case mem:
		return profile.Start(profile.MemProfile, profile.ProfilePath("."))
	default:
		return nopProfile{}
	}
}

type nopProfile struct{}

func (nopProfile) Stop() {}

func alignCmd(args []string) {
	fs := flag.NewFlagSet("align", flag.ExitOnError)
	seq1 := fs.String("seq1", "", "First sequence")
	seq2 := fs.String("seq2", "", "Second sequence")
	fastaFile := fs.String("fasta", "", "FASTA file whose first two records are aligned")
	sf := addScoringFlags(fs)
	asJSON := fs.Bool("json", false, "Print the result as JSON")
	verbose := fs.Bool("v", false, "Log matrix sizes")
	cpuProfile := fs.Bool("cpuprofile", false, "Write a CPU profile to the current directory")
	memProfile := fs.Bool("memprofile", false, "Write a memory profile to the current directory")
	fs.Parse(args)

	var s1, s2 string
	switch {
	case *fastaFile != "":
		seqs, err := webbio.ReadFASTA(*fastaFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
		if len(seqs) < 2 {
			fmt.Fprintf(os.Stderr, "Error: %s must hold at least two sequences, found %d\n", *fastaFile, len(seqs))
			os.Exit(1)
		}
		s1, s2 = seqs[0].Residues, seqs[1].Residues
	case *seq1 != "" && *seq2 != "":
		s1, s2 = *seq1, *seq2
	default:
		fmt.Fprintln(os.Stderr, "Error: Either -fasta or both -seq1 and -seq2 are required")
		fs.Usage()
		os.Exit(1)
	}

	opts := sf.options()
	opts.JSON = *asJSON
	opts.Verbose = *verbose

	p := startProfile(*cpuProfile, *memProfile)
	err := runAlign(os.Stdout, s1, s2, opts)
	p.Stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error aligning sequences: %v\n", err)
		os.Exit(1)
	}
}

// alignmentOutput is the JSON form of an alignment.
type alignmentOutput struct {
	*webbio.Result
	CIGAR string `json:"cigar"`
}

func runAlign(w io.Writer, seq1, seq2 string, opts alignOptions) error {
	scorer, err := opts.scorer(seq1, seq2)
	if err != nil {
		return err
	}

	if opts.Verbose {
		cells := uint64(len(seq1)+1) * uint64(len(seq2)+1)
		log.Printf("%s alignment of %s x %s residues: %s cells, %s of matrices",
			opts.Mode, humanize.Comma(int64(len(seq1))), humanize.Comma(int64(len(seq2))),
			humanize.Comma(int64(cells)), humanize.Bytes(3*8*cells))
	}

	res, err := webbio.Align(seq1, seq2, scorer, opts.Params.GapOpen, opts.Params.GapExtend, opts.Mode)
	if err != nil {
		return err
	}

	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(alignmentOutput{Result: res, CIGAR: res.ToCIGAR()})
	}

	_, err = fmt.Fprintln(w, res.Format())
	return err
}

func searchCmd(args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	query := fs.String("query", "", "Query sequence")
	targets := fs.String("targets", "", "FASTA file of target sequences")
	workers := fs.Int("workers", 0, "Alignments computed at once (default: number of CPUs)")
	top := fs.Int("top", 10, "Number of hits to show (0 shows all)")
	sf := addScoringFlags(fs)
	asJSON := fs.Bool("json", false, "Print the results as JSON")
	verbose := fs.Bool("v", false, "Log search sizes")
	cpuProfile := fs.Bool("cpuprofile", false, "Write a CPU profile to the current directory")
	memProfile := fs.Bool("memprofile", false, "Write a memory profile to the current directory")
	fs.Parse(args)

	if *query == "" || *targets == "" {
		fmt.Fprintln(os.Stderr, "Error: Both -query and -targets are required")
		fs.Usage()
		os.Exit(1)
	}

	seqs, err := webbio.ReadFASTA(*targets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}
	if len(seqs) == 0 {
		fmt.Fprintln(os.Stderr, "No sequences found in file")
		os.Exit(1)
	}

	opts := sf.options()
	opts.JSON = *asJSON
	opts.Verbose = *verbose
	opts.Workers = *workers
	opts.Top = *top

	p := startProfile(*cpuProfile, *memProfile)
	err = runSearch(context.Background(), os.Stdout, *query, seqs, opts)
	p.Stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching targets: %v\n", err)
		os.Exit(1)
	}
}

// hit is one row of search output.
type hit struct {
	Index    int            `json:"index"`
	ID       string         `json:"id"`
	Score    float64        `json:"score"`
	Identity float64        `json:"identity"`
	Length   int            `json:"aligned_length"`
	Result   *webbio.Result `json:"result,omitempty"`
}

func runSearch(ctx context.Context, w io.Writer, query string, targets []*webbio.Sequence, opts alignOptions) error {
	residues := make([]string, len(targets))
	for i, t := range targets {
		residues[i] = t.Residues
	}

	scorer, err := opts.scorer(append([]string{query}, residues...)...)
	if err != nil {
		return err
	}

	if opts.Verbose {
		set, err := webbio.SequenceSetStats(targets)
		if err != nil {
			return err
		}
		log.Printf("searching %s targets (%s residues, lengths %s - %s, N50 %s) with a %s-residue query",
			humanize.Comma(int64(set.Count)), humanize.Comma(int64(set.TotalResidues)),
			humanize.Comma(int64(set.MinLength)), humanize.Comma(int64(set.MaxLength)),
			humanize.Comma(int64(set.N50)), humanize.Comma(int64(len(query))))
	}

	results, err := webbio.AlignAgainstMultiple(ctx, query, residues, webbio.BatchOptions{
		Scorer:    scorer,
		GapOpen:   opts.Params.GapOpen,
		GapExtend: opts.Params.GapExtend,
		Mode:      opts.Mode,
		Workers:   opts.Workers,
	})
	if err != nil {
		return err
	}

	summary, err := webbio.Summarize(results)
	if err != nil {
		return err
	}

	hits := make([]hit, len(results))
	for i, r := range results {
		hits[i] = hit{
			Index:    r.Index,
			ID:       targets[r.Index].ID,
			Score:    r.Result.Score,
			Identity: r.Result.AlignedIdentity,
			Length:   r.Result.AlignedLength,
		}
		if opts.JSON {
			hits[i].Result = r.Result
		}
	}

	// Best first; equal scores keep target order.
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if opts.Top > 0 && len(hits) > opts.Top {
		hits = hits[:opts.Top]
	}

	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(hits)
	}

	fmt.Fprintf(w, "%-4s %-20s %10s %9s %7s\n", "#", "Target", "Score", "Identity", "Length")
	fmt.Fprintln(w, strings.Repeat("-", 54))
	for i, h := range hits {
		id := h.ID
		if id == "" {
			id = fmt.Sprintf("target_%d", h.Index+1)
		}
		fmt.Fprintf(w, "%-4d %-20s %10g %8.1f%% %7d\n", i+1, id, h.Score, h.Identity*100, h.Length)
	}
	fmt.Fprintln(w, strings.Repeat("-", 54))
	fmt.Fprintf(w, "%d targets, score %g - %g, mean %.2f, median %g\n",
		summary.Count, summary.MinScore, summary.MaxScore, summary.MeanScore, summary.MedianScore)
	return nil
}

// Package webbio provides a high-level API for pairwise sequence alignment.
//
// Example usage:
//
//	res, err := webbio.SmithWaterman("GATTACA", "GCATGCU", webbio.Defaults())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Format())
//
//	res, err = webbio.NeedlemanWunschBLOSUM62("HEAGAWGHEE", "PAWHEAE", -10, -0.5)
package webbio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aria-lang/webbio-go/internal/alignment"
	"github.com/aria-lang/webbio-go/internal/sequence"
	"github.com/aria-lang/webbio-go/internal/stats"
)

// Re-export types for convenience
type (
	Result        = alignment.Result
	Params        = alignment.Params
	Scorer        = alignment.Scorer
	ScorerFunc    = alignment.ScorerFunc
	Uniform       = alignment.Uniform
	Mode          = alignment.Mode
	BatchOptions  = alignment.BatchOptions
	IndexedResult = alignment.IndexedResult
	Sequence      = sequence.Sequence
	SequenceType  = sequence.Type
	ScoreSummary  = stats.ScoreSummary
	SetStats      = stats.SequenceSetStats
)

// Constants
const (
	Local  = alignment.Local
	Global = alignment.Global

	DNA     = sequence.DNA
	RNA     = sequence.RNA
	Protein = sequence.Protein
	Unknown = sequence.Unknown
)

// Errors
var (
	ErrInvalidParams = alignment.ErrInvalidParams
	ErrInvalidUTF8   = alignment.ErrInvalidUTF8
)

// BLOSUM62 is the built-in protein substitution table.
var BLOSUM62 alignment.Scorer = alignment.BLOSUM62

// Defaults returns the default scoring parameters: match 2, mismatch -1,
// gap open -1, gap extend -0.5.
func Defaults() Params {
	return alignment.DefaultParams()
}

// SmithWaterman performs local alignment with uniform scoring.
func SmithWaterman(seq1, seq2 string, params Params) (*Result, error) {
	return alignment.SmithWaterman(seq1, seq2, params)
}

// SmithWatermanBLOSUM62 performs local alignment scored with BLOSUM62.
func SmithWatermanBLOSUM62(seq1, seq2 string, gapOpen, gapExtend float64) (*Result, error) {
	return alignment.SmithWatermanBLOSUM62(seq1, seq2, gapOpen, gapExtend)
}

// NeedlemanWunsch performs global alignment with uniform scoring.
func NeedlemanWunsch(seq1, seq2 string, params Params) (*Result, error) {
	return alignment.NeedlemanWunsch(seq1, seq2, params)
}

// NeedlemanWunschBLOSUM62 performs global alignment scored with BLOSUM62.
func NeedlemanWunschBLOSUM62(seq1, seq2 string, gapOpen, gapExtend float64) (*Result, error) {
	return alignment.NeedlemanWunschBLOSUM62(seq1, seq2, gapOpen, gapExtend)
}

// Align aligns two sequences with an arbitrary scorer.
func Align(seq1, seq2 string, scorer Scorer, gapOpen, gapExtend float64, mode Mode) (*Result, error) {
	return alignment.Align(seq1, seq2, scorer, gapOpen, gapExtend, mode)
}

// AlignAgainstMultiple aligns query against every target concurrently.
func AlignAgainstMultiple(ctx context.Context, query string, targets []string, opts BatchOptions) ([]IndexedResult, error) {
	return alignment.AlignAgainstMultiple(ctx, query, targets, opts)
}

// FindBest returns the highest-scoring result; the lowest index wins ties.
func FindBest(results []IndexedResult) (*IndexedResult, bool) {
	return alignment.FindBest(results)
}

// FindBestAlignment returns the best-scoring alignment of query against targets.
func FindBestAlignment(ctx context.Context, query string, targets []string, opts BatchOptions) (*IndexedResult, error) {
	return alignment.FindBestAlignment(ctx, query, targets, opts)
}

// Summarize returns score statistics of batch alignment results.
func Summarize(results []IndexedResult) (*ScoreSummary, error) {
	return stats.FromResults(results)
}

// SequenceSetStats calculates length statistics for a collection of sequences.
func SequenceSetStats(seqs []*Sequence) (*SetStats, error) {
	return stats.FromSequences(seqs)
}

// ParseMode maps "local" or "global" to a Mode.
func ParseMode(s string) (Mode, error) {
	return alignment.ParseMode(s)
}

// Scoring names accepted by SelectScorer.
const (
	ScoringUniform  = "uniform"
	ScoringBLOSUM62 = "blosum62"
	ScoringAuto     = "auto"
)

// SelectScorer returns the scorer named by scoring. "auto" (or "") picks
// BLOSUM62 when every sequence is detected as protein and uniform scoring
// otherwise. Match and mismatch are taken from params for uniform scoring.
func SelectScorer(scoring string, params Params, seqs ...string) (Scorer, error) {
	switch strings.ToLower(scoring) {
	case ScoringUniform:
		return params.Scorer(), nil
	case ScoringBLOSUM62:
		return alignment.BLOSUM62, nil
	case ScoringAuto, "":
		if len(seqs) > 0 && allProtein(seqs) {
			return alignment.BLOSUM62, nil
		}
		return params.Scorer(), nil
	default:
		return nil, fmt.Errorf("unknown scoring %q (want %s, %s or %s)",
			scoring, ScoringUniform, ScoringBLOSUM62, ScoringAuto)
	}
}

func allProtein(seqs []string) bool {
	for _, s := range seqs {
		if sequence.Detect(s) != sequence.Protein {
			return false
		}
	}
	return true
}

// NewSequence creates a validated sequence, detecting its type.
func NewSequence(residues string) (*Sequence, error) {
	return sequence.New(residues)
}

// DetectType infers the sequence type from its residues.
func DetectType(residues string) SequenceType {
	return sequence.Detect(residues)
}

// ReadFASTA reads every record of a FASTA file.
func ReadFASTA(path string) ([]*Sequence, error) {
	return sequence.ReadFASTA(path)
}

// ParseFASTA reads every record of a FASTA stream.
func ParseFASTA(r io.Reader) ([]*Sequence, error) {
	return sequence.ParseFASTA(r)
}

// Version returns the webbio version.
func Version() string {
	return "0.3.0"
}

// Info returns information about the module.
func Info() string {
	return fmt.Sprintf(`webbio-go v%s

Pairwise sequence alignment with affine gap penalties.

Algorithms:
  - Smith-Waterman (local)
  - Needleman-Wunsch (global)

Scoring:
  - uniform match/mismatch
  - BLOSUM62
`, Version())
}

package alignment

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when an aligned sequence is not valid UTF-8,
// which happens only when non-text bytes are aligned.
var ErrInvalidUTF8 = errors.New("aligned sequence is not valid UTF-8")

// Result is the outcome of aligning two sequences.
//
// AlignedLength counts the substitution columns taken during traceback;
// gap columns, including the overhang padding of local alignments, are not
// counted. AlignedIdentity is the fraction of those columns whose symbols
// are equal ignoring case.
type Result struct {
	AlignedSeq1     string  `json:"aligned_seq1"`
	AlignedSeq2     string  `json:"aligned_seq2"`
	AlignedLength   int     `json:"aligned_length"`
	AlignedIdentity float64 `json:"aligned_identity"`
	Score           float64 `json:"score"`
	Markup          string  `json:"alignment_markup"`
	Mode            Mode    `json:"mode"`
}

func newResult(p *path, score float64, scorer Scorer, mode Mode) (*Result, error) {
	aligned1, aligned2 := p.strings()
	if !utf8.ValidString(aligned1) || !utf8.ValidString(aligned2) {
		return nil, ErrInvalidUTF8
	}

	return &Result{
		AlignedSeq1:     aligned1,
		AlignedSeq2:     aligned2,
		AlignedLength:   p.length,
		AlignedIdentity: p.identity(),
		Score:           score,
		Markup:          Markup(aligned1, aligned2, scorer),
		Mode:            mode,
	}, nil
}

// Length returns the number of columns of the alignment.
func (r *Result) Length() int {
	return len(r.AlignedSeq1)
}

// MatchCount returns the number of identical columns.
func (r *Result) MatchCount() int {
	return strings.Count(r.Markup, string(MarkupIdentical))
}

// MismatchCount returns the number of gapless columns with differing symbols.
func (r *Result) MismatchCount() int {
	return strings.Count(r.Markup, string(MarkupSimilar)) +
		strings.Count(r.Markup, string(MarkupDissimilar))
}

// GapsSeq1 returns the number of gaps in sequence 1.
func (r *Result) GapsSeq1() int {
	return strings.Count(r.AlignedSeq1, string(GapSymbol))
}

// GapsSeq2 returns the number of gaps in sequence 2.
func (r *Result) GapsSeq2() int {
	return strings.Count(r.AlignedSeq2, string(GapSymbol))
}

// TotalGaps returns the total number of gaps.
func (r *Result) TotalGaps() int {
	return r.GapsSeq1() + r.GapsSeq2()
}

// GapOpenings counts the number of gap openings.
func (r *Result) GapOpenings() int {
	openings := 0
	inGap1, inGap2 := false, false

	for i := 0; i < len(r.AlignedSeq1); i++ {
		if r.AlignedSeq1[i] == GapSymbol && !inGap1 {
			openings++
			inGap1 = true
		} else if r.AlignedSeq1[i] != GapSymbol {
			inGap1 = false
		}

		if r.AlignedSeq2[i] == GapSymbol && !inGap2 {
			openings++
			inGap2 = true
		} else if r.AlignedSeq2[i] != GapSymbol {
			inGap2 = false
		}
	}

	return openings
}

// ToCIGAR generates an extended CIGAR string (=, X, I, D) of the alignment,
// with sequence 1 as the reference.
func (r *Result) ToCIGAR() string {
	if len(r.AlignedSeq1) == 0 {
		return ""
	}

	var cigar strings.Builder
	currentOp := byte(0)
	count := 0

	for i := 0; i < len(r.AlignedSeq1); i++ {
		var op byte
		a, b := r.AlignedSeq1[i], r.AlignedSeq2[i]
		switch {
		case a == GapSymbol:
			op = 'I'
		case b == GapSymbol:
			op = 'D'
		case upper(a) == upper(b):
			op = '='
		default:
			op = 'X'
		}

		if op == currentOp {
			count++
			continue
		}
		if count > 0 {
			fmt.Fprintf(&cigar, "%d%c", count, currentOp)
		}
		currentOp = op
		count = 1
	}

	if count > 0 {
		fmt.Fprintf(&cigar, "%d%c", count, currentOp)
	}

	return cigar.String()
}

// Format returns a human-readable, three-line rendering of the alignment.
func (r *Result) Format() string {
	return fmt.Sprintf("Seq1: %s\n      %s\nSeq2: %s\nScore: %g\nLength: %d\nIdentity: %.1f%%\nCIGAR: %s",
		r.AlignedSeq1, r.Markup, r.AlignedSeq2,
		r.Score, r.AlignedLength, r.AlignedIdentity*100, r.ToCIGAR())
}

func (r *Result) String() string {
	return fmt.Sprintf("Result { mode: %s, score: %g, identity: %.1f%%, length: %d }",
		r.Mode, r.Score, r.AlignedIdentity*100, r.AlignedLength)
}

// PercentIdentity calculates percent identity between two aligned sequences
// over all columns, ignoring case.
func PercentIdentity(aligned1, aligned2 string) (float64, error) {
	if len(aligned1) != len(aligned2) {
		return 0, fmt.Errorf("aligned sequences must have equal length")
	}
	if len(aligned1) == 0 {
		return 0, fmt.Errorf("aligned sequences cannot be empty")
	}

	matches := 0
	for i := 0; i < len(aligned1); i++ {
		if aligned1[i] != GapSymbol && upper(aligned1[i]) == upper(aligned2[i]) {
			matches++
		}
	}

	return float64(matches) / float64(len(aligned1)) * 100.0, nil
}

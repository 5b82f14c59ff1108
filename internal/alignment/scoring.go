// Package alignment provides sequence alignment algorithms.
//
// This package implements Smith-Waterman (local) and Needleman-Wunsch (global)
// alignment with affine gap penalties for nucleotide and protein sequences.
// Scoring is pluggable through the Scorer interface; a uniform match/mismatch
// scheme and the BLOSUM62 substitution table are built in.
package alignment

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is returned when scoring parameters are not finite numbers.
var ErrInvalidParams = errors.New("invalid scoring parameters")

// Mode selects local or global alignment.
type Mode int

const (
	// Local represents Smith-Waterman local alignment
	Local Mode = iota
	// Global represents Needleman-Wunsch global alignment
	Global
)

func (m Mode) String() string {
	switch m {
	case Local:
		return "local"
	case Global:
		return "global"
	default:
		return "unknown"
	}
}

// MarshalText encodes the mode as its name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name.
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ParseMode maps "local" or "global" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "local", "":
		return Local, nil
	case "global":
		return Global, nil
	default:
		return Local, fmt.Errorf("unknown alignment mode %q", s)
	}
}

// Scorer returns the substitution score for aligning two symbols.
//
// Implementations must be pure and total: every byte pair, including
// unknown symbols, yields a score.
type Scorer interface {
	Score(a, b byte) float64
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(a, b byte) float64

// Score calls f(a, b).
func (f ScorerFunc) Score(a, b byte) float64 {
	return f(a, b)
}

// Uniform scores identical symbols with Match and everything else with
// Mismatch. Letter case is ignored.
type Uniform struct {
	Match    float64
	Mismatch float64
}

// Score returns the score for comparing two symbols.
func (u Uniform) Score(a, b byte) float64 {
	if upper(a) == upper(b) {
		return u.Match
	}
	return u.Mismatch
}

// Params holds the scoring parameters for a uniform alignment.
//
// Gap costs are added to the running score, so they are normally negative.
// A gap of length L costs GapOpen + (L-1)*GapExtend.
type Params struct {
	Match     float64
	Mismatch  float64
	GapOpen   float64
	GapExtend float64
}

// DefaultParams returns the default scoring parameters.
func DefaultParams() Params {
	return Params{
		Match:     2.0,
		Mismatch:  -1.0,
		GapOpen:   -1.0,
		GapExtend: -0.5,
	}
}

// Validate checks that every parameter is a finite number.
func (p Params) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"match", p.Match},
		{"mismatch", p.Mismatch},
		{"gap open", p.GapOpen},
		{"gap extend", p.GapExtend},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%w: %s score must be finite, got %v", ErrInvalidParams, v.name, v.value)
		}
	}
	return nil
}

// Scorer returns the uniform scorer described by p.
func (p Params) Scorer() Scorer {
	return Uniform{Match: p.Match, Mismatch: p.Mismatch}
}

// String returns a string representation of the parameters.
func (p Params) String() string {
	return fmt.Sprintf("Params { match: %g, mismatch: %g, gap_open: %g, gap_extend: %g }",
		p.Match, p.Mismatch, p.GapOpen, p.GapExtend)
}

func validGaps(gapOpen, gapExtend float64) error {
	p := Params{GapOpen: gapOpen, GapExtend: gapExtend}
	return p.Validate()
}

// upper folds ASCII lowercase letters to uppercase.
func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

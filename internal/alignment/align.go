package alignment

import (
	"fmt"
	"math"
)

// Align aligns seq1 against seq2 using an arbitrary scorer.
//
// Each call allocates its own matrices; Align is safe for concurrent use as
// long as the scorer is. Memory grows with (len(seq1)+1)*(len(seq2)+1) and
// the call is not interruptible, so callers bound input sizes.
//
// Finite parameters can still overflow while the matrices are filled; a
// score that is not a finite number is reported as ErrInvalidParams.
func Align(seq1, seq2 string, scorer Scorer, gapOpen, gapExtend float64, mode Mode) (*Result, error) {
	if scorer == nil {
		return nil, fmt.Errorf("%w: scorer is nil", ErrInvalidParams)
	}
	if mode != Local && mode != Global {
		return nil, fmt.Errorf("unknown alignment mode %d", int(mode))
	}
	if err := validGaps(gapOpen, gapExtend); err != nil {
		return nil, err
	}

	mat := fill(seq1, seq2, scorer, gapOpen, gapExtend, mode)

	score := mat.best
	if mode == Global {
		score = mat.m.at(len(seq1), len(seq2))
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return nil, fmt.Errorf("%s alignment: %w: score overflowed to %v", mode, ErrInvalidParams, score)
	}

	var p *path
	if mode == Local {
		p = tracebackLocal(seq1, seq2, mat, scorer)
	} else {
		p = tracebackGlobal(seq1, seq2, mat, scorer)
	}

	res, err := newResult(p, score, scorer, mode)
	if err != nil {
		return nil, fmt.Errorf("%s alignment: %w", mode, err)
	}
	return res, nil
}

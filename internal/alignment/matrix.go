package alignment

import "math"

// epsilon is the tolerance used when matching a cell against the candidate
// that produced it during traceback.
const epsilon = 1e-6

var negInf = math.Inf(-1)

// grid is a dense (rows x cols) matrix stored row-major in one slice.
type grid struct {
	cols  int
	cells []float64
}

func newGrid(rows, cols int) grid {
	return grid{cols: cols, cells: make([]float64, rows*cols)}
}

func (g grid) at(i, j int) float64 {
	return g.cells[i*g.cols+j]
}

func (g grid) set(i, j int, v float64) {
	g.cells[i*g.cols+j] = v
}

// matrices holds the three affine-gap score matrices of one alignment.
//
// m is the best score of any path ending at (i, j), ins the best score of a
// path ending with seq1[i-1] against a gap, del the best score of a path
// ending with seq2[j-1] against a gap.
type matrices struct {
	m, ins, del grid

	// Best cell of m, first in row-major order. Local mode only.
	bestI, bestJ int
	best         float64
}

// fill computes the score matrices for seq1 against seq2.
func fill(seq1, seq2 string, scorer Scorer, gapOpen, gapExtend float64, mode Mode) *matrices {
	rows, cols := len(seq1)+1, len(seq2)+1
	mat := &matrices{
		m:   newGrid(rows, cols),
		ins: newGrid(rows, cols),
		del: newGrid(rows, cols),
	}

	// Gap states on the borders stand for gaps that cannot exist.
	for j := 0; j < cols; j++ {
		mat.ins.set(0, j, negInf)
	}
	for i := 0; i < rows; i++ {
		mat.del.set(i, 0, negInf)
	}

	floor := 0.0
	if mode == Global {
		floor = negInf
		initGlobalBorders(mat, rows, cols, gapOpen, gapExtend)
	}

	for i := 1; i < rows; i++ {
		a := seq1[i-1]
		for j := 1; j < cols; j++ {
			diag := mat.m.at(i-1, j-1) + scorer.Score(a, seq2[j-1])
			ins := math.Max(mat.m.at(i-1, j)+gapOpen, mat.ins.at(i-1, j)+gapExtend)
			del := math.Max(mat.m.at(i, j-1)+gapOpen, mat.del.at(i, j-1)+gapExtend)
			mat.ins.set(i, j, ins)
			mat.del.set(i, j, del)

			best := math.Max(math.Max(diag, ins), math.Max(del, floor))
			mat.m.set(i, j, best)

			if mode == Local && best > mat.best {
				mat.best = best
				mat.bestI, mat.bestJ = i, j
			}
		}
	}

	return mat
}

// initGlobalBorders charges leading gaps with the same affine cost as
// interior gaps.
func initGlobalBorders(mat *matrices, rows, cols int, gapOpen, gapExtend float64) {
	for i := 1; i < rows; i++ {
		v := gapOpen
		if i > 1 {
			v = mat.ins.at(i-1, 0) + gapExtend
		}
		mat.ins.set(i, 0, v)
		mat.m.set(i, 0, v)
	}
	for j := 1; j < cols; j++ {
		v := gapOpen
		if j > 1 {
			v = mat.del.at(0, j-1) + gapExtend
		}
		mat.del.set(0, j, v)
		mat.m.set(0, j, v)
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

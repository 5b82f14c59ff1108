package alignment

// GapSymbol marks a gap in an aligned sequence.
const GapSymbol = '-'

// path accumulates alignment columns back to front during traceback.
type path struct {
	seq1, seq2 string
	aligned1   []byte
	aligned2   []byte
	length     int
	identical  int
}

func newPath(seq1, seq2 string) *path {
	capacity := len(seq1) + len(seq2)
	return &path{
		seq1:     seq1,
		seq2:     seq2,
		aligned1: make([]byte, 0, capacity),
		aligned2: make([]byte, 0, capacity),
	}
}

// diagonal emits seq1[i-1] against seq2[j-1].
func (p *path) diagonal(i, j int) {
	a, b := p.seq1[i-1], p.seq2[j-1]
	p.aligned1 = append(p.aligned1, a)
	p.aligned2 = append(p.aligned2, b)
	p.length++
	if upper(a) == upper(b) {
		p.identical++
	}
}

// up emits seq1[i-1] against a gap.
func (p *path) up(i int) {
	p.aligned1 = append(p.aligned1, p.seq1[i-1])
	p.aligned2 = append(p.aligned2, GapSymbol)
}

// left emits a gap against seq2[j-1].
func (p *path) left(j int) {
	p.aligned1 = append(p.aligned1, GapSymbol)
	p.aligned2 = append(p.aligned2, p.seq2[j-1])
}

// step moves one cell back from (i, j), preferring diagonal, then
// insertion, then deletion. It reports false when no candidate reproduces
// the cell score.
func (p *path) step(mat *matrices, scorer Scorer, i, j int) (int, int, bool) {
	score := mat.m.at(i, j)
	switch {
	case i > 0 && j > 0 && approxEqual(score, mat.m.at(i-1, j-1)+scorer.Score(p.seq1[i-1], p.seq2[j-1])):
		p.diagonal(i, j)
		return i - 1, j - 1, true
	case i > 0 && approxEqual(score, mat.ins.at(i, j)):
		p.up(i)
		return i - 1, j, true
	case j > 0 && approxEqual(score, mat.del.at(i, j)):
		p.left(j)
		return i, j - 1, true
	default:
		return i, j, false
	}
}

// strings returns both aligned sequences in left-to-right order.
func (p *path) strings() (string, string) {
	reverseBytes(p.aligned1)
	reverseBytes(p.aligned2)
	return string(p.aligned1), string(p.aligned2)
}

func (p *path) identity() float64 {
	if p.length == 0 {
		return 0.0
	}
	return float64(p.identical) / float64(p.length)
}

// tracebackLocal walks back from the best cell until the score drops to
// zero. Residues outside the walked region are emitted against gaps, so
// both aligned strings always cover the full input sequences.
func tracebackLocal(seq1, seq2 string, mat *matrices, scorer Scorer) *path {
	p := newPath(seq1, seq2)
	i, j := len(seq1), len(seq2)

	for ; i > mat.bestI; i-- {
		p.up(i)
	}
	for ; j > mat.bestJ; j-- {
		p.left(j)
	}

	for i > 0 && j > 0 && mat.m.at(i, j) > 0 {
		var ok bool
		if i, j, ok = p.step(mat, scorer, i, j); !ok {
			break
		}
	}

	for ; i > 0; i-- {
		p.up(i)
	}
	for ; j > 0; j-- {
		p.left(j)
	}

	return p
}

// tracebackGlobal walks back from the bottom-right corner to the origin.
func tracebackGlobal(seq1, seq2 string, mat *matrices, scorer Scorer) *path {
	p := newPath(seq1, seq2)
	i, j := len(seq1), len(seq2)

	for i > 0 || j > 0 {
		var ok bool
		if i, j, ok = p.step(mat, scorer, i, j); !ok {
			break
		}
	}

	return p
}

// reverseBytes reverses b in place.
func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

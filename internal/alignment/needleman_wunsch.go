package alignment

// NeedlemanWunsch performs global alignment using the Needleman-Wunsch
// algorithm with affine gaps and uniform match/mismatch scoring.
//
// Both sequences are aligned end to end; leading and trailing gaps cost the
// same as interior ones.
func NeedlemanWunsch(seq1, seq2 string, params Params) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return Align(seq1, seq2, params.Scorer(), params.GapOpen, params.GapExtend, Global)
}

// NeedlemanWunschBLOSUM62 performs global alignment of two protein
// sequences scored with BLOSUM62.
func NeedlemanWunschBLOSUM62(seq1, seq2 string, gapOpen, gapExtend float64) (*Result, error) {
	if err := validGaps(gapOpen, gapExtend); err != nil {
		return nil, err
	}
	return Align(seq1, seq2, BLOSUM62, gapOpen, gapExtend, Global)
}

// GlobalScore returns the Needleman-Wunsch score without building the
// aligned strings.
func GlobalScore(seq1, seq2 string, scorer Scorer, gapOpen, gapExtend float64) float64 {
	mat := fill(seq1, seq2, scorer, gapOpen, gapExtend, Global)
	return mat.m.at(len(seq1), len(seq2))
}

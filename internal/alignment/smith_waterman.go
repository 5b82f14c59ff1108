package alignment

// SmithWaterman performs local alignment using the Smith-Waterman algorithm
// with affine gaps and uniform match/mismatch scoring.
//
// The alignment reaches from the highest-scoring cell back to the first
// cell whose score drops to zero. Residues of either sequence outside that
// region are reported against gaps.
func SmithWaterman(seq1, seq2 string, params Params) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return Align(seq1, seq2, params.Scorer(), params.GapOpen, params.GapExtend, Local)
}

// SmithWatermanBLOSUM62 performs local alignment of two protein sequences
// scored with BLOSUM62.
func SmithWatermanBLOSUM62(seq1, seq2 string, gapOpen, gapExtend float64) (*Result, error) {
	if err := validGaps(gapOpen, gapExtend); err != nil {
		return nil, err
	}
	return Align(seq1, seq2, BLOSUM62, gapOpen, gapExtend, Local)
}

// LocalScore returns the Smith-Waterman score without building the aligned
// strings.
func LocalScore(seq1, seq2 string, scorer Scorer, gapOpen, gapExtend float64) float64 {
	return fill(seq1, seq2, scorer, gapOpen, gapExtend, Local).best
}

package alignment

// Markup symbols, one per alignment column.
const (
	MarkupIdentical  = '|'
	MarkupSimilar    = ':'
	MarkupDissimilar = '.'
	MarkupGap        = ' '
)

// Markup classifies each column of an alignment.
//
// A column is identical when neither side is a gap and the symbols match
// ignoring case, a gap when either side is a gap, similar when the scorer
// rates the substitution above zero and dissimilar otherwise. Columns past
// the end of the shorter string are not emitted.
func Markup(aligned1, aligned2 string, scorer Scorer) string {
	n := min(len(aligned1), len(aligned2))
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		a, b := aligned1[i], aligned2[i]
		switch {
		case a == GapSymbol || b == GapSymbol:
			out[i] = MarkupGap
		case upper(a) == upper(b):
			out[i] = MarkupIdentical
		case scorer.Score(a, b) > 0:
			out[i] = MarkupSimilar
		default:
			out[i] = MarkupDissimilar
		}
	}
	return string(out)
}

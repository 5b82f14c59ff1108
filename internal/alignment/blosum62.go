package alignment

// UnknownResiduePenalty is the score given to any pair in which a symbol is
// outside the BLOSUM62 alphabet.
const UnknownResiduePenalty = -4.0

// AminoAcids is the canonical order of the 20 standard amino acids used to
// index the substitution table.
const AminoAcids = "ARNDCQEGHILKMFPSTWYV"

// SubstitutionTable scores pairs of amino acids from a fixed symmetric
// 20x20 matrix. Lookups are case-insensitive.
type SubstitutionTable struct {
	name    string
	scores  [20][20]float64
	index   [256]int8
	unknown float64
}

// BLOSUM62 is the BLOSUM62 substitution table (Henikoff & Henikoff, 1992).
var BLOSUM62 = newSubstitutionTable("BLOSUM62", AminoAcids, [20][20]float64{
	/* A */ {4, -1, -2, -2, 0, -1, -1, 0, -2, -1, -1, -1, -1, -2, -1, 1, 0, -3, -2, 0},
	/* R */ {-1, 5, 0, -2, -3, 1, 0, -2, 0, -3, -2, 2, -1, -3, -2, -1, -1, -3, -2, -3},
	/* N */ {-2, 0, 6, 1, -3, 0, 0, 0, 1, -3, -3, 0, -2, -3, -2, 1, 0, -4, -2, -3},
	/* D */ {-2, -2, 1, 6, -3, 0, 2, -1, -1, -3, -4, -1, -3, -3, -1, 0, -1, -4, -3, -3},
	/* C */ {0, -3, -3, -3, 9, -3, -4, -3, -3, -1, -1, -3, -1, -2, -3, -1, -1, -2, -2, -1},
	/* Q */ {-1, 1, 0, 0, -3, 5, 2, -2, 0, -3, -2, 1, 0, -3, -1, 0, -1, -2, -1, -2},
	/* E */ {-1, 0, 0, 2, -4, 2, 5, -2, 0, -3, -3, 1, -2, -3, -1, 0, -1, -3, -2, -2},
	/* G */ {0, -2, 0, -1, -3, -2, -2, 6, -2, -4, -4, -2, -3, -3, -2, 0, -2, -2, -3, -3},
	/* H */ {-2, 0, 1, -1, -3, 0, 0, -2, 8, -3, -3, -1, -2, -1, -2, -1, -2, -2, 2, -3},
	/* I */ {-1, -3, -3, -3, -1, -3, -3, -4, -3, 4, 2, -3, 1, 0, -3, -2, -1, -3, -1, 3},
	/* L */ {-1, -2, -3, -4, -1, -2, -3, -4, -3, 2, 4, -2, 2, 0, -3, -2, -1, -2, -1, 1},
	/* K */ {-1, 2, 0, -1, -3, 1, 1, -2, -1, -3, -2, 5, -1, -3, -1, 0, -1, -3, -2, -2},
	/* M */ {-1, -1, -2, -3, -1, 0, -2, -3, -2, 1, 2, -1, 5, 0, -2, -1, -1, -1, -1, 1},
	/* F */ {-2, -3, -3, -3, -2, -3, -3, -3, -1, 0, 0, -3, 0, 6, -4, -2, -2, 1, 3, -1},
	/* P */ {-1, -2, -2, -1, -3, -1, -1, -2, -2, -3, -3, -1, -2, -4, 7, -1, -1, -4, -3, -2},
	/* S */ {1, -1, 1, 0, -1, 0, 0, 0, -1, -2, -2, 0, -1, -2, -1, 4, 1, -3, -2, -2},
	/* T */ {0, -1, 0, -1, -1, -1, -1, -2, -2, -1, -1, -1, -1, -2, -1, 1, 5, -2, -2, 0},
	/* W */ {-3, -3, -4, -4, -2, -2, -3, -2, -2, -3, -2, -3, -1, 1, -4, -3, -2, 11, 2, -3},
	/* Y */ {-2, -2, -2, -3, -2, -1, -2, -3, 2, -1, -1, -2, -1, 3, -3, -2, -2, 2, 7, -1},
	/* V */ {0, -3, -3, -3, -1, -2, -2, -3, -3, 3, 1, -2, 1, -1, -2, -2, 0, -3, -1, 4},
}, UnknownResiduePenalty)

func newSubstitutionTable(name, alphabet string, scores [20][20]float64, unknown float64) *SubstitutionTable {
	t := &SubstitutionTable{name: name, scores: scores, unknown: unknown}
	for i := range t.index {
		t.index[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		t.index[c] = int8(i)
		t.index[c+('a'-'A')] = int8(i)
	}
	return t
}

// Name returns the name of the table.
func (t *SubstitutionTable) Name() string {
	return t.name
}

// Lookup returns the table entry for a and b. The boolean is false when
// either symbol is not in the alphabet, in which case the score is the
// fixed unknown-residue penalty.
func (t *SubstitutionTable) Lookup(a, b byte) (float64, bool) {
	i, j := t.index[a], t.index[b]
	if i < 0 || j < 0 {
		return t.unknown, false
	}
	return t.scores[i][j], true
}

// Score returns the substitution score for a and b.
func (t *SubstitutionTable) Score(a, b byte) float64 {
	s, _ := t.Lookup(a, b)
	return s
}

// Symmetric reports whether t[i][j] == t[j][i] for every pair.
func (t *SubstitutionTable) Symmetric() bool {
	for i := range t.scores {
		for j := i + 1; j < len(t.scores); j++ {
			if t.scores[i][j] != t.scores[j][i] {
				return false
			}
		}
	}
	return true
}

package alignment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultFor(t *testing.T, aligned1, aligned2 string) *Result {
	t.Helper()
	return &Result{
		AlignedSeq1: aligned1,
		AlignedSeq2: aligned2,
		Markup:      Markup(aligned1, aligned2, DefaultParams().Scorer()),
	}
}

func TestResultCIGAR(t *testing.T) {
	tests := []struct {
		name     string
		aligned1 string
		aligned2 string
		want     string
	}{
		{"all match", "ATGC", "ATGC", "4="},
		{"with mismatch", "ATGC", "ATGA", "3=1X"},
		{"with gap seq1", "AT-GC", "ATGGC", "2=1I2="},
		{"with gap seq2", "ATGGC", "AT-GC", "2=1D2="},
		{"case folded", "atgc", "ATGC", "4="},
		{"local overhang", "G-AT---TACA", "GCATGCU----", "1=1I2=3I4D"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resultFor(t, tt.aligned1, tt.aligned2).ToCIGAR())
		})
	}
}

func TestResultCounts(t *testing.T) {
	r := resultFor(t, "AT-GC-", "ATGG-C")

	assert.Equal(t, 6, r.Length())
	assert.Equal(t, 3, r.MatchCount())
	assert.Equal(t, 0, r.MismatchCount())
	assert.Equal(t, 2, r.GapsSeq1())
	assert.Equal(t, 1, r.GapsSeq2())
	assert.Equal(t, 3, r.TotalGaps())
	assert.Equal(t, 3, r.GapOpenings())

	r = resultFor(t, "AT--GC", "ATGGTC")
	assert.Equal(t, 1, r.GapOpenings())
	assert.Equal(t, 1, r.MismatchCount())
}

func TestResultFormat(t *testing.T) {
	r, err := SmithWaterman("GATTACA", "GATTACA", DefaultParams())
	require.NoError(t, err)

	want := "Seq1: GATTACA\n      |||||||\nSeq2: GATTACA\nScore: 14\nLength: 7\nIdentity: 100.0%\nCIGAR: 7="
	assert.Equal(t, want, r.Format())
	assert.Equal(t, "Result { mode: local, score: 14, identity: 100.0%, length: 7 }", r.String())
}

func TestPercentIdentity(t *testing.T) {
	tests := []struct {
		name     string
		aligned1 string
		aligned2 string
		want     float64
		wantErr  bool
	}{
		{"perfect", "ATGC", "ATGC", 100.0, false},
		{"50%", "ATGC", "ATTT", 50.0, false},
		{"with gaps", "AT-GC", "ATGGC", 80.0, false},
		{"case folded", "atgc", "ATGC", 100.0, false},
		{"different lengths", "ATGC", "ATG", 0, true},
		{"empty", "", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PercentIdentity(tt.aligned1, tt.aligned2)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.InDelta(t, tt.want, got, 0.0001)
			}
		})
	}
}

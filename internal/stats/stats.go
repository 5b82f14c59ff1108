// Package stats provides statistical summaries for sequence sets and
// alignment batches.
package stats

import (
	"fmt"
	"sort"

	"github.com/aria-lang/webbio-go/internal/alignment"
	"github.com/aria-lang/webbio-go/internal/sequence"
)

// SequenceSetStats represents aggregated statistics for multiple sequences.
type SequenceSetStats struct {
	Count         int                   `json:"count"`
	TotalResidues int                   `json:"total_residues"`
	MinLength     int                   `json:"min_length"`
	MaxLength     int                   `json:"max_length"`
	MeanLength    float64               `json:"mean_length"`
	MedianLength  int                   `json:"median_length"`
	N50           int                   `json:"n50"`
	Types         map[sequence.Type]int `json:"types"`
}

// FromSequences calculates statistics for a collection of sequences.
func FromSequences(sequences []*sequence.Sequence) (*SequenceSetStats, error) {
	if len(sequences) == 0 {
		return nil, fmt.Errorf("sequence list cannot be empty")
	}

	count := len(sequences)
	lengths := make([]int, count)
	total := 0
	types := make(map[sequence.Type]int)

	for i, seq := range sequences {
		lengths[i] = seq.Len()
		total += seq.Len()
		types[seq.Type]++
	}

	sorted := make([]int, count)
	copy(sorted, lengths)
	sort.Ints(sorted)

	mid := count / 2
	median := sorted[mid]
	if count%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return &SequenceSetStats{
		Count:         count,
		TotalResidues: total,
		MinLength:     sorted[0],
		MaxLength:     sorted[count-1],
		MeanLength:    float64(total) / float64(count),
		MedianLength:  median,
		N50:           n50(sorted, total),
		Types:         types,
	}, nil
}

// n50 is the length L such that sequences of length >= L hold at least half
// of all residues. lengths must be sorted ascending.
func n50(lengths []int, total int) int {
	half := total / 2
	running := 0
	for i := len(lengths) - 1; i >= 0; i-- {
		running += lengths[i]
		if running >= half {
			return lengths[i]
		}
	}
	return lengths[len(lengths)-1]
}

func (s *SequenceSetStats) String() string {
	return fmt.Sprintf(`SequenceSetStats {
  count: %d
  total residues: %d
  length range: %d - %d
  mean length: %.1f
  median length: %d
  N50: %d
}`, s.Count, s.TotalResidues, s.MinLength, s.MaxLength,
		s.MeanLength, s.MedianLength, s.N50)
}

// ScoreSummary summarizes the results of a one-against-many alignment.
type ScoreSummary struct {
	Count        int     `json:"count"`
	MinScore     float64 `json:"min_score"`
	MaxScore     float64 `json:"max_score"`
	MeanScore    float64 `json:"mean_score"`
	MedianScore  float64 `json:"median_score"`
	MeanIdentity float64 `json:"mean_identity"`
	// BestIndex is the target index of the first result scoring MaxScore.
	BestIndex int `json:"best_index"`
}

// FromResults summarizes batch alignment results.
func FromResults(results []alignment.IndexedResult) (*ScoreSummary, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("result list cannot be empty")
	}

	count := len(results)
	scores := make([]float64, count)
	scoreSum, identitySum := 0.0, 0.0
	for i, r := range results {
		scores[i] = r.Result.Score
		scoreSum += r.Result.Score
		identitySum += r.Result.AlignedIdentity
	}

	best, _ := alignment.FindBest(results)

	sort.Float64s(scores)
	mid := count / 2
	median := scores[mid]
	if count%2 == 0 {
		median = (scores[mid-1] + scores[mid]) / 2
	}

	return &ScoreSummary{
		Count:        count,
		MinScore:     scores[0],
		MaxScore:     scores[count-1],
		MeanScore:    scoreSum / float64(count),
		MedianScore:  median,
		MeanIdentity: identitySum / float64(count),
		BestIndex:    best.Index,
	}, nil
}

func (s *ScoreSummary) String() string {
	return fmt.Sprintf("ScoreSummary { count: %d, score range: %g - %g, mean: %.2f, median: %g, mean identity: %.1f%% }",
		s.Count, s.MinScore, s.MaxScore, s.MeanScore, s.MedianScore, s.MeanIdentity*100)
}

package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aria-lang/webbio-go/pkg/webbio"
)

// ScoringRequest holds the scoring fields shared by alignment requests.
// Missing numeric fields take the defaults of webbio.Defaults.
type ScoringRequest struct {
	Scoring   string   `json:"scoring"`
	Match     *float64 `json:"match"`
	Mismatch  *float64 `json:"mismatch"`
	GapOpen   *float64 `json:"gap_open"`
	GapExtend *float64 `json:"gap_extend"`
}

func (s ScoringRequest) params() webbio.Params {
	p := webbio.Defaults()
	for _, f := range []struct {
		src *float64
		dst *float64
	}{
		{s.Match, &p.Match},
		{s.Mismatch, &p.Mismatch},
		{s.GapOpen, &p.GapOpen},
		{s.GapExtend, &p.GapExtend},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}
	return p
}

// AlignmentRequest represents a pairwise alignment request.
type AlignmentRequest struct {
	Sequence1 string `json:"sequence1"`
	Sequence2 string `json:"sequence2"`
	ScoringRequest
}

// AlignmentResponse represents the response for alignment.
type AlignmentResponse struct {
	*webbio.Result
	CIGAR      string `json:"cigar"`
	Matches    int    `json:"matches"`
	Mismatches int    `json:"mismatches"`
	Gaps       int    `json:"gaps"`
}

func newAlignmentResponse(res *webbio.Result) AlignmentResponse {
	return AlignmentResponse{
		Result:     res,
		CIGAR:      res.ToCIGAR(),
		Matches:    res.MatchCount(),
		Mismatches: res.MismatchCount(),
		Gaps:       res.TotalGaps(),
	}
}

// LocalAlignHandler handles local alignment requests.
func LocalAlignHandler(limits Limits) http.HandlerFunc {
	return alignHandler(limits, webbio.Local)
}

// GlobalAlignHandler handles global alignment requests.
func GlobalAlignHandler(limits Limits) http.HandlerFunc {
	return alignHandler(limits, webbio.Global)
}

func alignHandler(limits Limits, mode webbio.Mode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AlignmentRequest
		if !decode(w, r, &req) {
			return
		}

		if err := checkLength(limits, "sequence1", req.Sequence1); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := checkLength(limits, "sequence2", req.Sequence2); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := checkCells(limits, "sequence1/sequence2", len(req.Sequence1), len(req.Sequence2)); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		params := req.params()
		if err := params.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		scorer, err := webbio.SelectScorer(req.Scoring, params, req.Sequence1, req.Sequence2)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		res, err := webbio.Align(req.Sequence1, req.Sequence2, scorer, params.GapOpen, params.GapExtend, mode)
		if err != nil {
			writeError(w, statusFor(err), err.Error())
			return
		}

		writeJSON(w, http.StatusOK, newAlignmentResponse(res))
	}
}

// BatchRequest represents a one-against-many alignment request.
type BatchRequest struct {
	Query   string   `json:"query"`
	Targets []string `json:"targets"`
	Mode    string   `json:"mode"`
	ScoringRequest
}

// BatchResponse represents the response for a batch alignment. Results are
// in target order.
type BatchResponse struct {
	Results []webbio.IndexedResult `json:"results"`
	Best    int                    `json:"best"`
	Summary *webbio.ScoreSummary   `json:"summary"`
}

// BatchAlignHandler aligns a query against every target.
func BatchAlignHandler(limits Limits) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BatchRequest
		if !decode(w, r, &req) {
			return
		}

		if len(req.Targets) == 0 {
			writeError(w, http.StatusBadRequest, "targets cannot be empty")
			return
		}
		if limits.MaxTargets > 0 && len(req.Targets) > limits.MaxTargets {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("too many targets: %d exceeds the limit of %d", len(req.Targets), limits.MaxTargets))
			return
		}
		if err := checkLength(limits, "query", req.Query); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		for i, t := range req.Targets {
			field := fmt.Sprintf("targets[%d]", i)
			if err := checkLength(limits, field, t); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			if err := checkCells(limits, field, len(req.Query), len(t)); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
		}

		mode, err := webbio.ParseMode(req.Mode)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		params := req.params()
		if err := params.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		scorer, err := webbio.SelectScorer(req.Scoring, params, append([]string{req.Query}, req.Targets...)...)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		results, err := webbio.AlignAgainstMultiple(r.Context(), req.Query, req.Targets, webbio.BatchOptions{
			Scorer:    scorer,
			GapOpen:   params.GapOpen,
			GapExtend: params.GapExtend,
			Mode:      mode,
			Workers:   limits.Workers,
		})
		if err != nil {
			writeError(w, statusFor(err), err.Error())
			return
		}

		summary, err := webbio.Summarize(results)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, BatchResponse{Results: results, Best: summary.BestIndex, Summary: summary})
	}
}

// statusFor maps an alignment error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, webbio.ErrInvalidParams):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusUnprocessableEntity
}

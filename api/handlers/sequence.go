package handlers

import (
	"net/http"

	"github.com/aria-lang/webbio-go/pkg/webbio"
)

// SequenceRequest represents a request with a sequence.
type SequenceRequest struct {
	Sequence string `json:"sequence"`
	ID       string `json:"id,omitempty"`
}

// SequenceInfoResponse represents sequence information.
type SequenceInfoResponse struct {
	ID          string              `json:"id,omitempty"`
	Length      int                 `json:"length"`
	Type        webbio.SequenceType `json:"type"`
	GCContent   *float64            `json:"gc_content,omitempty"`
	Composition map[string]int      `json:"composition"`
	Scoring     string              `json:"scoring"`
}

// SequenceInfoHandler handles sequence info requests.
func SequenceInfoHandler(limits Limits) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SequenceRequest
		if !decode(w, r, &req) {
			return
		}
		if err := checkLength(limits, "sequence", req.Sequence); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		seq, err := webbio.NewSequence(req.Sequence)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		seq.ID = req.ID

		resp := SequenceInfoResponse{
			ID:          seq.ID,
			Length:      seq.Len(),
			Type:        seq.Type,
			Composition: seq.Composition(),
			Scoring:     webbio.ScoringUniform,
		}
		if gc, err := seq.GCContent(); err == nil {
			resp.GCContent = &gc
		}
		if seq.Type == webbio.Protein {
			resp.Scoring = webbio.ScoringBLOSUM62
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// ValidateResponse represents validation result.
type ValidateResponse struct {
	Valid   bool                `json:"valid"`
	Type    webbio.SequenceType `json:"type"`
	Message string              `json:"message,omitempty"`
}

// ValidateHandler handles sequence validation requests.
func ValidateHandler(limits Limits) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SequenceRequest
		if !decode(w, r, &req) {
			return
		}
		if err := checkLength(limits, "sequence", req.Sequence); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		seq, err := webbio.NewSequence(req.Sequence)
		if err != nil {
			writeJSON(w, http.StatusOK, ValidateResponse{
				Valid:   false,
				Type:    webbio.Unknown,
				Message: err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusOK, ValidateResponse{Valid: true, Type: seq.Type})
	}
}

// ReverseComplementResponse represents the response for reverse complement.
type ReverseComplementResponse struct {
	ReverseComplement string `json:"reverse_complement"`
}

// ReverseComplementHandler handles reverse complement requests.
func ReverseComplementHandler(limits Limits) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SequenceRequest
		if !decode(w, r, &req) {
			return
		}
		if err := checkLength(limits, "sequence", req.Sequence); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		seq, err := webbio.NewSequence(req.Sequence)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		rc, err := seq.ReverseComplement()
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, ReverseComplementResponse{ReverseComplement: rc.Residues})
	}
}

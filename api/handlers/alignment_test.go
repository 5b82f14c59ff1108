package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(v))
}

type alignmentBody struct {
	AlignedSeq1     string  `json:"aligned_seq1"`
	AlignedSeq2     string  `json:"aligned_seq2"`
	AlignedLength   int     `json:"aligned_length"`
	AlignedIdentity float64 `json:"aligned_identity"`
	Score           float64 `json:"score"`
	Markup          string  `json:"alignment_markup"`
	Mode            string  `json:"mode"`
	CIGAR           string  `json:"cigar"`
	Matches         int     `json:"matches"`
	Mismatches      int     `json:"mismatches"`
	Gaps            int     `json:"gaps"`
}

func TestLocalAlignHandler(t *testing.T) {
	rec := post(t, LocalAlignHandler(DefaultLimits()), `{"sequence1": "GATTACA", "sequence2": "GCATGCU"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body alignmentBody
	decodeBody(t, rec, &body)
	assert.Equal(t, "G-AT---TACA", body.AlignedSeq1)
	assert.Equal(t, "GCATGCU----", body.AlignedSeq2)
	assert.Equal(t, 3, body.AlignedLength)
	assert.Equal(t, 5.0, body.Score)
	assert.Equal(t, "| ||       ", body.Markup)
	assert.Equal(t, "local", body.Mode)
	assert.Equal(t, 3, body.Matches)
	assert.Equal(t, 8, body.Gaps)
	assert.Equal(t, "1=1I2=3I4D", body.CIGAR)
}

func TestGlobalAlignHandler(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		score  float64
		markup string
	}{
		{
			name:   "uniform defaults",
			body:   `{"sequence1": "GATTACA", "sequence2": "GCATGCU"}`,
			score:  4,
			markup: "| | |.|.",
		},
		{
			name:   "blosum62",
			body:   `{"sequence1": "HEAGAWGHEE", "sequence2": "PAWHEAE", "scoring": "blosum62", "gap_open": -10}`,
			score:  4,
			markup: "   .||...|",
		},
		{
			name:   "auto picks blosum62 for proteins",
			body:   `{"sequence1": "HEAGAWGHEE", "sequence2": "PAWHEAE", "scoring": "auto", "gap_open": -10}`,
			score:  4,
			markup: "   .||...|",
		},
		{
			name:   "explicit zero overrides a default",
			body:   `{"sequence1": "AAAA", "sequence2": "TTTT", "mismatch": 0}`,
			score:  0,
			markup: "....",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, GlobalAlignHandler(DefaultLimits()), tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var body alignmentBody
			decodeBody(t, rec, &body)
			assert.InDelta(t, tt.score, body.Score, 1e-9)
			assert.Equal(t, tt.markup, body.Markup)
			assert.Equal(t, "global", body.Mode)
		})
	}
}

func TestAlignHandlerErrors(t *testing.T) {
	limits := Limits{MaxLength: 8, MaxCells: 50}

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"malformed body", `{"sequence1": `, http.StatusBadRequest},
		{"too long", `{"sequence1": "ACGTACGTA", "sequence2": "ACGT"}`, http.StatusBadRequest},
		{"unknown scoring", `{"sequence1": "ACGT", "sequence2": "ACGT", "scoring": "pam250"}`, http.StatusBadRequest},
		{"too many cells", `{"sequence1": "ACGTACGT", "sequence2": "ACGTAC"}`, http.StatusBadRequest},
		{"score overflow", `{"sequence1": "AAAA", "sequence2": "AAAA", "scoring": "uniform", "match": 1e308}`, http.StatusBadRequest},
		{"split multibyte symbol", `{"sequence1": "é", "sequence2": "è"}`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, LocalAlignHandler(limits), tt.body)
			assert.Equal(t, tt.status, rec.Code)

			var body ErrorResponse
			decodeBody(t, rec, &body)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestAlignHandlerEmptyInputs(t *testing.T) {
	rec := post(t, LocalAlignHandler(DefaultLimits()), `{"sequence1": "", "sequence2": ""}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body alignmentBody
	decodeBody(t, rec, &body)
	assert.Equal(t, "", body.AlignedSeq1)
	assert.Equal(t, 0.0, body.Score)
	assert.Equal(t, 0, body.AlignedLength)
}

func TestBatchAlignHandler(t *testing.T) {
	rec := post(t, BatchAlignHandler(DefaultLimits()),
		`{"query": "ATGCATGC", "targets": ["GCTAGCTA", "ATGCATGC", "ATGCGGGG"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Results []struct {
			Index  int           `json:"index"`
			Result alignmentBody `json:"result"`
		} `json:"results"`
		Best    int `json:"best"`
		Summary struct {
			Count     int     `json:"count"`
			MaxScore  float64 `json:"max_score"`
			MinScore  float64 `json:"min_score"`
			BestIndex int     `json:"best_index"`
		} `json:"summary"`
	}
	decodeBody(t, rec, &body)

	require.Len(t, body.Results, 3)
	for i, r := range body.Results {
		assert.Equal(t, i, r.Index)
	}
	assert.Equal(t, 1, body.Best)
	assert.Equal(t, 16.0, body.Results[1].Result.Score)
	assert.Equal(t, 8.0, body.Results[0].Result.Score)
	assert.Equal(t, 8.5, body.Results[2].Result.Score)
	assert.Equal(t, 3, body.Summary.Count)
	assert.Equal(t, 16.0, body.Summary.MaxScore)
	assert.Equal(t, 8.0, body.Summary.MinScore)
	assert.Equal(t, 1, body.Summary.BestIndex)
}

func TestBatchAlignHandlerGlobal(t *testing.T) {
	rec := post(t, BatchAlignHandler(DefaultLimits()),
		`{"query": "HEAGAWGHEE", "targets": ["PAWHEAE"], "mode": "global", "gap_open": -10}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"mode":"global"`)
	assert.Contains(t, rec.Body.String(), `"score":4`)
}

func TestBatchAlignHandlerErrors(t *testing.T) {
	limits := Limits{MaxLength: 8, MaxCells: 50, MaxTargets: 2}

	tests := []struct {
		name string
		body string
	}{
		{"no targets", `{"query": "ACGT", "targets": []}`},
		{"too many targets", `{"query": "ACGT", "targets": ["A", "C", "G"]}`},
		{"target too long", `{"query": "ACGT", "targets": ["ACGTACGTA"]}`},
		{"target too many cells", `{"query": "ACGTACGT", "targets": ["ACG", "ACGTAC"]}`},
		{"unknown mode", `{"query": "ACGT", "targets": ["ACGT"], "mode": "semi-global"}`},
		{"malformed body", `[`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, BatchAlignHandler(limits), tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

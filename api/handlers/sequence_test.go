package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceInfoHandler(t *testing.T) {
	t.Run("DNA", func(t *testing.T) {
		rec := post(t, SequenceInfoHandler(DefaultLimits()), `{"sequence": "ATGCATGC", "id": "s1"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body SequenceInfoResponse
		decodeBody(t, rec, &body)
		assert.Equal(t, "s1", body.ID)
		assert.Equal(t, 8, body.Length)
		require.NotNil(t, body.GCContent)
		assert.InDelta(t, 0.5, *body.GCContent, 1e-9)
		assert.Equal(t, map[string]int{"A": 2, "T": 2, "G": 2, "C": 2}, body.Composition)
		assert.Equal(t, "uniform", body.Scoring)
		assert.Contains(t, rec.Body.String(), `"type":"DNA"`)
	})

	t.Run("protein", func(t *testing.T) {
		rec := post(t, SequenceInfoHandler(DefaultLimits()), `{"sequence": "HEAGAWGHEE"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body SequenceInfoResponse
		decodeBody(t, rec, &body)
		assert.Nil(t, body.GCContent)
		assert.Equal(t, "blosum62", body.Scoring)
		assert.Contains(t, rec.Body.String(), `"type":"Protein"`)
	})

	t.Run("invalid", func(t *testing.T) {
		rec := post(t, SequenceInfoHandler(DefaultLimits()), `{"sequence": "ACGT1"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = post(t, SequenceInfoHandler(DefaultLimits()), `{"sequence": ""}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestValidateHandler(t *testing.T) {
	rec := post(t, ValidateHandler(DefaultLimits()), `{"sequence": "MKV"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"valid": true, "type": "Protein"}`, rec.Body.String())

	rec = post(t, ValidateHandler(DefaultLimits()), `{"sequence": "AC1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body ValidateResponse
	decodeBody(t, rec, &body)
	assert.False(t, body.Valid)
	assert.Contains(t, body.Message, "position 2")

	rec = post(t, ValidateHandler(Limits{MaxLength: 4}), `{"sequence": "ACGTA"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errBody ErrorResponse
	decodeBody(t, rec, &errBody)
	assert.Contains(t, errBody.Error, "exceeds the limit of 4")
}

func TestReverseComplementHandler(t *testing.T) {
	rec := post(t, ReverseComplementHandler(DefaultLimits()), `{"sequence": "AAGT"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reverse_complement": "ACTT"}`, rec.Body.String())

	rec = post(t, ReverseComplementHandler(DefaultLimits()), `{"sequence": "MKV"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

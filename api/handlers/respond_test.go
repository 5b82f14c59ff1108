package handlers

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteJSONEncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"score": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	decodeBody(t, rec, &body)
	assert.Contains(t, body.Error, "encode response")
}

func TestCheckCells(t *testing.T) {
	tests := []struct {
		name       string
		limits     Limits
		len1, len2 int
		wantErr    bool
	}{
		{"unlimited", Limits{}, 100000, 100000, false},
		{"at limit", Limits{MaxCells: 30}, 5, 4, false},
		{"over limit", Limits{MaxCells: 29}, 5, 4, true},
		{"empty pair", Limits{MaxCells: 1}, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkCells(tt.limits, "pair", tt.len1, tt.len2)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

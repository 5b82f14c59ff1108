// Package handlers provides HTTP handlers for the webbio API.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Limits bounds the work a single request may ask for.
type Limits struct {
	// MaxLength caps the length of every sequence in a request.
	MaxLength int
	// MaxCells caps (len1+1)*(len2+1) of every aligned pair. Each cell
	// costs 24 bytes of score matrices.
	MaxCells int
	// MaxTargets caps the number of targets of a batch request.
	MaxTargets int
	// Workers bounds the alignments of one batch request computed at once.
	Workers int
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{
		MaxLength:  10000,
		MaxCells:   4000000,
		MaxTargets: 1000,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(ErrorResponse{Error: "encode response: " + err.Error()})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func checkLength(limits Limits, field, s string) error {
	if limits.MaxLength > 0 && len(s) > limits.MaxLength {
		return fmt.Errorf("%s: length %d exceeds the limit of %d", field, len(s), limits.MaxLength)
	}
	return nil
}

// checkCells rejects pairs whose score matrices would exceed MaxCells.
func checkCells(limits Limits, field string, len1, len2 int) error {
	if limits.MaxCells <= 0 {
		return nil
	}
	cells := (uint64(len1) + 1) * (uint64(len2) + 1)
	if cells > uint64(limits.MaxCells) {
		return fmt.Errorf("%s: %d x %d alignment needs %d matrix cells, exceeding the limit of %d",
			field, len1, len2, cells, limits.MaxCells)
	}
	return nil
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

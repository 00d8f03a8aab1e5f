package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"budgetbook/internal/app"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Error string `json:"error"`
}

var errBadRequest = errors.New("bad request")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps controller errors to a status. Anything not recognised is
// a client error: the controller has no failure mode of its own once the
// input is valid.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, app.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, app.ErrAlreadyExists), errors.Is(err, app.ErrFallbackCategory):
		status = http.StatusConflict
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

// decodeJSON reads one JSON value from the body, rejecting unknown fields
// and trailing data.
func decodeJSON(r *http.Request, w http.ResponseWriter, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data", errBadRequest)
	}
	return nil
}

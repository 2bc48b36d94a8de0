package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"regguard/pkg/platform/sentinel"
)

// WriteJSON writes v with the given status. Encoding failures are dropped;
// the header is already on the wire.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

// WriteError translates domain errors to HTTP statuses. Invalid input is the
// only client fault the engine signals; data unavailability maps to 503 and
// anything else is a server problem.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, sentinel.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, sentinel.ErrUnavailable):
		status = http.StatusServiceUnavailable
	}
	WriteJSON(w, status, errorResponse{Error: err.Error()})
}

// Package http exposes the engine's operations as a small JSON API for the
// presentation layer: session lifecycle, transaction registration and the
// aggregated summary.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"gofinances/internal/core"
)

// errorResponse is the uniform error body. Kind lets the presentation layer
// translate error classes into user-facing messages.
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps the engine's error taxonomy onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	var (
		verr *core.ValidationError
		aerr *core.AuthProviderError
		perr *core.PersistenceError
		merr *core.MalformedRecordError
	)
	switch {
	case errors.Is(err, core.ErrNotAuthenticated):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error(), Kind: "not_authenticated"})
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error(), Kind: "validation"})
	case errors.As(err, &aerr):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: aerr.Error(), Kind: "auth_provider"})
	case errors.As(err, &merr):
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: merr.Error(), Kind: "malformed_record"})
	case errors.As(err, &perr):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: perr.Error(), Kind: "persistence"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error(), Kind: "internal"})
	}
}

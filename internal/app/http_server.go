package app

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/frudas24/rzctl/internal/control"
	"github.com/frudas24/rzctl/internal/pointer"
	"github.com/frudas24/rzctl/internal/session"
)

// RegisterRoutes wires API and websocket handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/ws/control", a.Control())
	mux.HandleFunc("/api/position", a.handlePosition)
	mux.HandleFunc("/api/size", a.handleSize)
	mux.HandleFunc("/api/state", a.handleState)
	mux.HandleFunc("/healthz", a.handleHealth)
	mux.HandleFunc("/favicon.ico", handleFavicon)
}

type healthResponse struct {
	OK          bool   `json:"ok"`
	Version     string `json:"version"`
	Backend     string `json:"backend"`
	Initialized bool   `json:"initialized"`
}

// handlePosition returns the cursor position.
func (a *App) handlePosition(w http.ResponseWriter, r *http.Request) {
	if !a.requireAuth(w, r) {
		return
	}
	pos, err := a.pointer.Position()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pos)
}

// handleSize returns the primary display size.
func (a *App) handleSize(w http.ResponseWriter, r *http.Request) {
	if !a.requireAuth(w, r) {
		return
	}
	size, err := a.pointer.Size()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, size)
}

// handleState returns the session snapshot.
func (a *App) handleState(w http.ResponseWriter, r *http.Request) {
	if !a.requireAuth(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, a.session.Snapshot())
}

// handleHealth reports liveness without authentication.
func (a *App) handleHealth(w http.ResponseWriter, _ *http.Request) {
	initialized := a.pointer.Initialized()
	status := http.StatusOK
	if !initialized {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthResponse{
		OK:          initialized,
		Version:     Version,
		Backend:     a.cfg.Backend,
		Initialized: initialized,
	})
}

// requireAuth returns false and writes an error if the request token is wrong.
// The shared session is left untouched so an open websocket keeps its state.
func (a *App) requireAuth(w http.ResponseWriter, r *http.Request) bool {
	if !session.Valid(a.cfg.ControlToken, control.RequestToken(r)) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

// writeError maps pointer errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, pointer.ErrUninitialized) {
		status = http.StatusServiceUnavailable
	}
	http.Error(w, err.Error(), status)
}

// writeJSON encodes v as the response body with status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"context"
	"encoding/json"
	"net/http"

	"gofinances/internal/core"
	"gofinances/internal/services"
)

// sessionResponse mirrors what the presentation layer consumes: the current
// user (absent when signed out) and the initial loading flag.
type sessionResponse struct {
	User      *core.User `json:"user,omitempty"`
	IsLoading bool       `json:"isLoading"`
}

func (s *Server) handleGetSession(w http.ResponseWriter, _ *http.Request) {
	session := s.svc.Session()
	resp := sessionResponse{IsLoading: session.IsLoading()}
	if u := session.User(); !u.IsZero() {
		resp.User = &u
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSignInGoogle(w http.ResponseWriter, r *http.Request) {
	s.signIn(w, r, s.svc.Session().SignInWithGoogle)
}

func (s *Server) handleSignInApple(w http.ResponseWriter, r *http.Request) {
	s.signIn(w, r, s.svc.Session().SignInWithApple)
}

// signIn runs a provider flow. A cancelled dialog leaves the session
// untouched and answers 204, distinct from both success and failure.
func (s *Server) signIn(w http.ResponseWriter, r *http.Request, do func(context.Context) error) {
	if err := do(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	u := s.svc.Session().User()
	if u.IsZero() {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{User: &u})
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Session().SignOut(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRegisterTransaction(w http.ResponseWriter, r *http.Request) {
	var form services.RegisterForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Kind: "validation"})
		return
	}

	tx, err := s.svc.RegisterTransaction(r.Context(), form)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

func (s *Server) handleLoadSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.svc.LoadSummary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) handleClearLedger(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.ClearLedger(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"net/http"

	"gofinances/internal/middleware/trace"
	"gofinances/internal/services"
)

type Server struct {
	http.Server
	svc *services.FinanceService
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server.
func NewServer(addr string, svc *services.FinanceService) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{Addr: addr},
		svc:    svc,
	}

	mux.HandleFunc("GET /healthz", handleHealth)

	mux.HandleFunc("GET /api/session", s.handleGetSession)
	mux.HandleFunc("POST /api/session/google", s.handleSignInGoogle)
	mux.HandleFunc("POST /api/session/apple", s.handleSignInApple)
	mux.HandleFunc("DELETE /api/session", s.handleSignOut)

	mux.HandleFunc("POST /api/transactions", s.handleRegisterTransaction)
	mux.HandleFunc("GET /api/transactions", s.handleLoadSummary)
	mux.HandleFunc("DELETE /api/transactions", s.handleClearLedger)

	s.Handler = trace.Middleware(mux)
	return s
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

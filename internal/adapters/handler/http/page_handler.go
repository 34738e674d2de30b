package http

import (
	"log"
	"net/http"

	"github.com/ballotcast/ballot/internal/core/domain"
	"github.com/ballotcast/ballot/internal/core/ports"
)

type PageHandler struct {
	identity ports.IdentityService
	results  ports.ResultsService
	sessions *SessionManager
}

func NewPageHandler(identity ports.IdentityService, results ports.ResultsService, sessions *SessionManager) *PageHandler {
	return &PageHandler{
		identity: identity,
		results:  results,
		sessions: sessions,
	}
}

type indexData struct {
	Candidates []domain.Candidate
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.results.ListCandidates(r.Context())
	if err != nil {
		log.Printf("failed to list candidates: %v", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	render(w, r, "index", indexData{Candidates: candidates})
}

type dashboardData struct {
	User       *domain.User
	Candidates []domain.Candidate
}

func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())

	user, err := h.identity.GetUser(r.Context(), sess.UserID)
	if err != nil {
		log.Printf("failed to get user: %v", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	if user == nil {
		// Stale session cookie for a user that no longer exists.
		h.sessions.ExpireCookie(w)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	candidates, err := h.results.ListCandidates(r.Context())
	if err != nil {
		log.Printf("failed to list candidates: %v", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	render(w, r, "dashboard", dashboardData{User: user, Candidates: candidates})
}

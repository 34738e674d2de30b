package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/ballotcast/ballot/internal/core/domain"
	"github.com/ballotcast/ballot/internal/core/ports"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type VoteHandler struct {
	service  ports.VotingService
	sessions *SessionManager
}

func NewVoteHandler(service ports.VotingService, sessions *SessionManager) *VoteHandler {
	return &VoteHandler{
		service:  service,
		sessions: sessions,
	}
}

func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(chi.URLParam(r, "candidateID"))
	if err != nil {
		setFlash(w, "Candidate not found!")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	sess, _ := SessionFromContext(r.Context())

	if _, err := h.service.CastVote(r.Context(), sess.UserID, candidateID); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyVoted):
			setFlash(w, "You have already voted!")
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		case errors.Is(err, domain.ErrCandidateNotFound):
			setFlash(w, "Candidate not found!")
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		case errors.Is(err, domain.ErrNotAuthenticated):
			h.sessions.ExpireCookie(w)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		default:
			log.Printf("cast vote failed: %v", err)
			setFlash(w, "Something went wrong. Please try again.")
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		}
		return
	}

	setFlash(w, "Your vote has been recorded!")
	http.Redirect(w, r, "/results", http.StatusSeeOther)
}

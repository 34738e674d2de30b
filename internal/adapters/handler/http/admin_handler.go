package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/ballotcast/ballot/internal/core/domain"
	"github.com/ballotcast/ballot/internal/core/ports"
)

type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{
		service: service,
	}
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		log.Printf("failed to load admin dashboard: %v", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	render(w, r, "admin", dashboard)
}

func (h *AdminHandler) AddCandidate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	input := ports.AddCandidateInput{
		Name:        r.FormValue("name"),
		Party:       r.FormValue("party"),
		Description: r.FormValue("description"),
	}

	candidate, err := h.service.AddCandidate(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			setFlash(w, "Candidate name is required")
		} else {
			log.Printf("failed to add candidate: %v", err)
			setFlash(w, "Something went wrong. Please try again.")
		}
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	setFlash(w, fmt.Sprintf("Candidate %s added successfully!", candidate.Name))
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

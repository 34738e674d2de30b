package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/ballotcast/ballot/internal/core/domain"
	"github.com/ballotcast/ballot/internal/core/ports"
)

type IdentityHandler struct {
	service  ports.IdentityService
	sessions *SessionManager
}

func NewIdentityHandler(service ports.IdentityService, sessions *SessionManager) *IdentityHandler {
	return &IdentityHandler{
		service:  service,
		sessions: sessions,
	}
}

func (h *IdentityHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, "login", nil)
}

func (h *IdentityHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	user, err := h.service.Login(r.Context(), r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			setFlash(w, "Invalid username or password")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		log.Printf("login failed: %v", err)
		setFlash(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	token, err := h.sessions.Issue(user)
	if err != nil {
		log.Printf("failed to issue session: %v", err)
		setFlash(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.sessions.SetCookie(w, token)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *IdentityHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, "register", nil)
}

func (h *IdentityHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	_, err := h.service.Register(r.Context(), r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername):
			setFlash(w, "Username already exists")
		case errors.Is(err, domain.ErrValidation):
			setFlash(w, "Username and password are required")
		default:
			log.Printf("registration failed: %v", err)
			setFlash(w, "Something went wrong. Please try again.")
		}
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	setFlash(w, "Registration successful! Please login.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout expires the session cookie. Calling it signed-out is a no-op.
func (h *IdentityHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ExpireCookie(w)
	setFlash(w, "You have been logged out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(
	sessions *SessionManager,
	identityHandler *IdentityHandler,
	pageHandler *PageHandler,
	voteHandler *VoteHandler,
	resultsHandler *ResultsHandler,
	adminHandler *AdminHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(sessions.Sessions)

	r.Get("/", pageHandler.Index)
	r.Get("/login", identityHandler.LoginForm)
	r.Post("/login", identityHandler.Login)
	r.Get("/register", identityHandler.RegisterForm)
	r.Post("/register", identityHandler.Register)
	r.Get("/results", resultsHandler.Results)
	r.Get("/logout", identityHandler.Logout)

	r.Group(func(r chi.Router) {
		r.Use(RequireUser)
		r.Get("/dashboard", pageHandler.Dashboard)
		r.Post("/vote/{candidateID}", voteHandler.CastVote)
	})

	r.Group(func(r chi.Router) {
		r.Use(RequireAdmin)
		r.Get("/admin", adminHandler.Dashboard)
		r.Post("/admin/add_candidate", adminHandler.AddCandidate)
	})

	return r
}

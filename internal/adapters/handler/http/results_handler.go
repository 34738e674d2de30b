package http

import (
	"log"
	"net/http"

	"github.com/ballotcast/ballot/internal/core/ports"
)

type ResultsHandler struct {
	service ports.ResultsService
}

func NewResultsHandler(service ports.ResultsService) *ResultsHandler {
	return &ResultsHandler{
		service: service,
	}
}

func (h *ResultsHandler) Results(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.ListResults(r.Context())
	if err != nil {
		log.Printf("failed to list results: %v", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	render(w, r, "results", results)
}

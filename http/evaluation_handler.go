package http

import (
	"net/http"

	"homebuy-agent/domain"
	"homebuy-agent/service"
)

type EvaluationHandler struct {
	service *service.EvaluationService
}

func NewEvaluationHandler(service *service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{service: service}
}

// Evaluate runs the four scenarios for the posted parameters. Fields left out
// of the body count as zero.
func (h *EvaluationHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.PercentInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.Evaluate(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Defaults returns the reference parameter set.
func (h *EvaluationHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, domain.DefaultPercentInput())
}

// Get returns a stored evaluation by id.
func (h *EvaluationHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// List returns every stored evaluation, oldest first.
func (h *EvaluationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	evaluations, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, evaluations)
}

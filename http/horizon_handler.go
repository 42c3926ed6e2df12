package http

import (
	"log"
	"net/http"

	"homebuy-agent/domain"
	"homebuy-agent/service"
)

type HorizonHandler struct {
	service *service.HorizonService
}

func NewHorizonHandler(service *service.HorizonService) *HorizonHandler {
	return &HorizonHandler{service: service}
}

func (h *HorizonHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.HorizonInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.Sweep(r.Context(), input)
	if err != nil {
		log.Printf("Error sweeping horizons: %v", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

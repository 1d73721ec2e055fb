package lighting

import (
	"encoding/json"
	"net/http"

	"Conduit/internal/metrics"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		metrics.CalcRequests.WithLabelValues("lighting", "bad_request").Inc()
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		metrics.CalcRequests.WithLabelValues("lighting", "rejected").Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	metrics.CalcRequests.WithLabelValues("lighting", "ok").Inc()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (a *API) handleRoster(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"names": a.mgr.Roster()})
}

func (a *API) handleSession(w http.ResponseWriter, r *http.Request) {
	channelID := mux.Vars(r)["channel_id"]

	s, ok, err := a.mgr.Snapshot(r.Context(), channelID)
	if err != nil {
		http.Error(w, "failed to load session", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "no session for channel", http.StatusNotFound)
		return
	}

	writeJSON(w, map[string]any{
		"phase":        s.Phase.String(),
		"participants": s.Participants,
		"drinkers":     s.Drinkers,
		"bath_cost":    s.BathCost,
		"bath_payer":   s.BathPayer,
		"food":         s.Food,
		"alcohol":      s.Alcohol,
	})
}

func (a *API) handleReport(w http.ResponseWriter, r *http.Request) {
	channelID := mux.Vars(r)["channel_id"]

	s, ok, err := a.mgr.Snapshot(r.Context(), channelID)
	if err != nil {
		http.Error(w, "failed to load session", http.StatusInternalServerError)
		return
	}
	if !ok || s.Report == nil {
		http.Error(w, "no report for channel", http.StatusNotFound)
		return
	}

	writeJSON(w, s.Report)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

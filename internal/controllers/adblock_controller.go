package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"

	"arenastreams/internal/providers"
	"arenastreams/internal/services"
)

// AdblockController receives client verdict reports and serves the counter
// snapshot. Reports are best-effort on the client side, so responses are
// small and unconditional.
type AdblockController struct {
	logger  providers.Logger
	tracker services.VisitTrackerInterface
}

func NewAdblockController(logger providers.Logger, tracker services.VisitTrackerInterface) *AdblockController {
	return &AdblockController{
		logger:  logger,
		tracker: tracker,
	}
}

type trackRequest struct {
	Adblock   bool   `json:"adblock"`
	Page      string `json:"page"`
	Timestamp string `json:"timestamp"`
}

func (ac *AdblockController) TrackAdblock(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload trackRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "invalid tracking payload")
		return
	}

	ac.tracker.RecordVisit(payload.Adblock)
	ac.logger.Debugf(providers.TypePost, "tracked visit adblock=%v page=%s", payload.Adblock, payload.Page)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"tracked": true,
	})
}

func (ac *AdblockController) AdblockStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.tracker.GetStats())
}

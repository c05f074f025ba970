package controllers

import (
	"fmt"
	"net/http"
	"time"

	"arenastreams/internal/services"
)

type HealthController struct {
	registry  services.ViewerRegistryInterface
	matches   services.MatchServiceInterface
	startTime time.Time
}

type healthResponse struct {
	Status            string  `json:"status"`
	Uptime            string  `json:"uptime"`
	UptimeSeconds     float64 `json:"uptime_seconds"`
	ViewerSlugs       int     `json:"viewer_slugs"`
	ViewerSubscribers int     `json:"viewer_subscribers"`
	Matches           int     `json:"matches"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	writeJSON(w, http.StatusOK, healthResponse{
		Status:            "ok",
		Uptime:            formatDuration(uptime),
		UptimeSeconds:     uptime.Seconds(),
		ViewerSlugs:       hc.registry.SlugCount(),
		ViewerSubscribers: hc.registry.SubscriberCount(),
		Matches:           hc.matches.Len(),
	})
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(registry services.ViewerRegistryInterface, matches services.MatchServiceInterface) *HealthController {
	return &HealthController{
		registry:  registry,
		matches:   matches,
		startTime: time.Now(),
	}
}

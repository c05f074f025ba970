package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"arenastreams/internal/providers"
	"arenastreams/internal/services"
	"arenastreams/internal/structures"
)

// ViewersController exposes the live viewer counts: one-shot lookups, bulk
// lookups, and SSE streams with heartbeats. Stream disconnects are normal
// control flow, never errors.
type ViewersController struct {
	logger              providers.Logger
	registry            services.ViewerRegistryInterface
	heartbeatInterval   time.Duration
	bulkRefreshInterval time.Duration
}

func NewViewersController(logger providers.Logger, registry services.ViewerRegistryInterface, conf *structures.Config) *ViewersController {
	vc := &ViewersController{
		logger:              logger,
		registry:            registry,
		heartbeatInterval:   conf.Viewers.HeartbeatInterval,
		bulkRefreshInterval: conf.Viewers.BulkRefreshInterval,
	}
	if vc.heartbeatInterval <= 0 {
		vc.heartbeatInterval = 30 * time.Second
	}
	if vc.bulkRefreshInterval <= 0 {
		vc.bulkRefreshInterval = 3 * time.Second
	}
	return vc
}

type viewerCount struct {
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

func (vc *ViewersController) GetCount(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	writeJSON(w, http.StatusOK, viewerCount{Slug: slug, Count: vc.registry.Count(slug)})
}

// Stream is the per-slug SSE endpoint: initial snapshot on subscribe, a new
// snapshot on every count change, comment-line heartbeats in between. The
// subscription and its timers are torn down in the same path that ends the
// request.
func (vc *ViewersController) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSONError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}
	slug := mux.Vars(r)["slug"]

	setStreamHeaders(w)
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	sub := vc.registry.Subscribe(slug)
	defer vc.registry.Unsubscribe(sub)

	heartbeat := time.NewTicker(vc.heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case count, open := <-sub.C():
			if !open {
				return
			}
			sendEvent(w, flusher, viewerCount{Slug: slug, Count: count})
		case <-heartbeat.C:
			sendHeartbeat(w, flusher)
		}
	}
}

type bulkCounts struct {
	Counts map[string]int `json:"counts"`
}

// Bulk resolves many slugs at once; with stream=true it becomes an SSE
// endpoint re-sending the full map on the refresh interval.
func (vc *ViewersController) Bulk(w http.ResponseWriter, r *http.Request) {
	slugs := splitSlugs(r.URL.Query().Get("slugs"))

	if r.URL.Query().Get("stream") != "true" {
		writeJSON(w, http.StatusOK, bulkCounts{Counts: vc.registry.BulkCount(slugs)})
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSONError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	setStreamHeaders(w)
	w.WriteHeader(http.StatusOK)
	sendEvent(w, flusher, bulkCounts{Counts: vc.registry.BulkCount(slugs)})

	refresh := time.NewTicker(vc.bulkRefreshInterval)
	defer refresh.Stop()
	heartbeat := time.NewTicker(vc.heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-refresh.C:
			sendEvent(w, flusher, bulkCounts{Counts: vc.registry.BulkCount(slugs)})
		case <-heartbeat.C:
			sendHeartbeat(w, flusher)
		}
	}
}

func splitSlugs(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	slugs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			slugs = append(slugs, p)
		}
	}
	return slugs
}

func setStreamHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
}

func sendEvent(w http.ResponseWriter, flusher http.Flusher, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "data: %s\n\n", gson)
	flusher.Flush()
}

func sendHeartbeat(w http.ResponseWriter, flusher http.Flusher) {
	fmt.Fprint(w, ": heartbeat\n\n")
	flusher.Flush()
}

package controllers

import (
	"errors"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"arenastreams/internal/models"
	"arenastreams/internal/providers"
	"arenastreams/internal/services"
)

// MatchesController is the JSON API over the manually-curated match
// directory. Reads are served through the response cache; mutations
// invalidate the affected keys.
type MatchesController struct {
	logger  providers.Logger
	service services.MatchServiceInterface
	cache   providers.CacheProviderInterface
}

func NewMatchesController(logger providers.Logger, service services.MatchServiceInterface, cache providers.CacheProviderInterface) *MatchesController {
	return &MatchesController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

func (mc *MatchesController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() any) {
	if data, ok := mc.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	gson, err := json.Marshal(compute())
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	mc.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

type matchListResponse struct {
	Success bool            `json:"success"`
	Sport   string          `json:"sport,omitempty"`
	Date    string          `json:"date,omitempty"`
	Matches []*models.Match `json:"matches"`
	Total   int             `json:"total"`
}

func (mc *MatchesController) List(w http.ResponseWriter, r *http.Request) {
	mc.serveFromCacheOrCompute(w, "matches:all", func() any {
		matches := mc.service.List()
		return matchListResponse{Success: true, Matches: matches, Total: len(matches)}
	})
}

func (mc *MatchesController) BySport(w http.ResponseWriter, r *http.Request) {
	sport := strings.ToLower(mux.Vars(r)["sport"])
	mc.serveFromCacheOrCompute(w, "matches:sport:"+sport, func() any {
		matches := mc.service.BySport(sport)
		return matchListResponse{Success: true, Sport: sport, Matches: matches, Total: len(matches)}
	})
}

func (mc *MatchesController) Today(w http.ResponseWriter, r *http.Request) {
	mc.serveFromCacheOrCompute(w, "matches:today", func() any {
		day, matches := mc.service.Today()
		return matchListResponse{Success: true, Date: day, Matches: matches, Total: len(matches)}
	})
}

func (mc *MatchesController) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	match, ok := mc.service.GetByID(id)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "Match not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"match":   match,
	})
}

func (mc *MatchesController) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload models.MatchInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Bad Request")
		return
	}

	match, err := mc.service.Create(&payload)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMatch) {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	mc.invalidate(match.Sport)
	mc.logger.Infof(providers.TypePost, "match added: %s (%s)", match.ID, match.Slug)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"match":   match,
		"message": "Match added successfully",
	})
}

func (mc *MatchesController) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	prev, _ := mc.service.GetByID(id)
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload models.MatchUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Bad Request")
		return
	}

	match, err := mc.service.Update(id, &payload)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMatch) {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if match == nil {
		writeJSONError(w, http.StatusNotFound, "Match not found")
		return
	}

	// a sport change leaves the old sport's cached list stale
	if prev != nil && !strings.EqualFold(prev.Sport, match.Sport) {
		mc.invalidate(prev.Sport)
	}
	mc.invalidate(match.Sport)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"match":   match,
		"message": "Match updated successfully",
	})
}

func (mc *MatchesController) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	match, ok := mc.service.GetByID(id)
	if !ok || !mc.service.Delete(id) {
		writeJSONError(w, http.StatusNotFound, "Match not found")
		return
	}

	mc.invalidate(match.Sport)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Match deleted successfully",
	})
}

func (mc *MatchesController) invalidate(sport string) {
	mc.cache.Del("matches:all")
	mc.cache.Del("matches:today")
	mc.cache.Del("matches:sport:" + strings.ToLower(sport))
}

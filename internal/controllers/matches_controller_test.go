package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arenastreams/internal/models"
	"arenastreams/internal/services"
	"arenastreams/internal/testutil"
)

func newMatchesController(svc *testutil.MockMatchService, cache *testutil.MockCache) *MatchesController {
	return NewMatchesController(&testutil.MockLogger{}, svc, cache)
}

func sampleMatch(id, sport string) *models.Match {
	return &models.Match{
		ID:    id,
		Sport: sport,
		TeamA: "Arsenal",
		TeamB: "Chelsea",
		Slug:  "arsenal-vs-chelsea-live-2026-08-28",
		Date:  time.Date(2026, 8, 28, 18, 0, 0, 0, time.UTC),
	}
}

func TestListMatches(t *testing.T) {
	svc := &testutil.MockMatchService{Matches: []*models.Match{sampleMatch("football-1", "football")}}
	mc := newMatchesController(svc, testutil.NewMockCache())

	req := httptest.NewRequest(http.MethodGet, "/api/matches", nil)
	rr := httptest.NewRecorder()
	mc.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body matchListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 1, body.Total)
	require.Len(t, body.Matches, 1)
	assert.Equal(t, "football-1", body.Matches[0].ID)
}

func TestListMatches_ServedFromCache(t *testing.T) {
	svc := &testutil.MockMatchService{}
	cache := testutil.NewMockCache()
	cache.Set("matches:all", []byte(`{"success":true,"matches":[],"total":0,"cached":true}`))
	mc := newMatchesController(svc, cache)

	req := httptest.NewRequest(http.MethodGet, "/api/matches", nil)
	rr := httptest.NewRecorder()
	mc.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"cached":true`)
}

func TestListMatches_PopulatesCache(t *testing.T) {
	svc := &testutil.MockMatchService{}
	cache := testutil.NewMockCache()
	mc := newMatchesController(svc, cache)

	rr := httptest.NewRecorder()
	mc.List(rr, httptest.NewRequest(http.MethodGet, "/api/matches", nil))

	_, ok := cache.Get("matches:all")
	assert.True(t, ok)
}

func TestMatchesBySport(t *testing.T) {
	svc := &testutil.MockMatchService{Matches: []*models.Match{
		sampleMatch("football-1", "football"),
		sampleMatch("tennis-1", "tennis"),
	}}
	mc := newMatchesController(svc, testutil.NewMockCache())

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/matches/sport/Football", nil), map[string]string{"sport": "Football"})
	rr := httptest.NewRecorder()
	mc.BySport(rr, req)

	var body matchListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "football", body.Sport)
	assert.Equal(t, 1, body.Total)
}

func TestMatchesToday(t *testing.T) {
	svc := &testutil.MockMatchService{Day: "2026-08-28", Matches: []*models.Match{sampleMatch("football-1", "football")}}
	mc := newMatchesController(svc, testutil.NewMockCache())

	rr := httptest.NewRecorder()
	mc.Today(rr, httptest.NewRequest(http.MethodGet, "/api/matches/today", nil))

	var body matchListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "2026-08-28", body.Date)
	assert.Equal(t, 1, body.Total)
}

func TestGetMatchByID_NotFound(t *testing.T) {
	mc := newMatchesController(&testutil.MockMatchService{}, testutil.NewMockCache())

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/matches/missing-1", nil), map[string]string{"id": "missing-1"})
	rr := httptest.NewRecorder()
	mc.GetByID(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Match not found")
}

func TestCreateMatch(t *testing.T) {
	svc := &testutil.MockMatchService{}
	cache := testutil.NewMockCache()
	cache.Set("matches:all", []byte("stale"))
	mc := newMatchesController(svc, cache)

	payload := `{"sport":"football","teamA":"Arsenal","teamB":"Chelsea","competition":"PL","date":"2026-08-28T18:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/matches", strings.NewReader(payload))
	rr := httptest.NewRecorder()
	mc.Create(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Match added successfully")
	require.Len(t, svc.CreateCalls, 1)

	// mutation must bust the list cache
	_, ok := cache.Get("matches:all")
	assert.False(t, ok)
}

func TestCreateMatch_MalformedBody(t *testing.T) {
	svc := &testutil.MockMatchService{}
	mc := newMatchesController(svc, testutil.NewMockCache())

	req := httptest.NewRequest(http.MethodPost, "/api/matches", strings.NewReader(`{"sport":`))
	rr := httptest.NewRecorder()
	mc.Create(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, svc.CreateCalls)
}

func TestCreateMatch_ValidationError(t *testing.T) {
	svc := &testutil.MockMatchService{CreateErr: services.ErrInvalidMatch}
	mc := newMatchesController(svc, testutil.NewMockCache())

	req := httptest.NewRequest(http.MethodPost, "/api/matches", strings.NewReader(`{"sport":"football"}`))
	rr := httptest.NewRecorder()
	mc.Create(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":false`)
}

func TestUpdateMatch(t *testing.T) {
	svc := &testutil.MockMatchService{Matches: []*models.Match{sampleMatch("football-1", "football")}}
	mc := newMatchesController(svc, testutil.NewMockCache())

	req := mux.SetURLVars(
		httptest.NewRequest(http.MethodPut, "/api/matches/football-1", strings.NewReader(`{"competition":"FA Cup"}`)),
		map[string]string{"id": "football-1"},
	)
	rr := httptest.NewRecorder()
	mc.Update(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Match updated successfully")
	assert.Equal(t, []string{"football-1"}, svc.UpdateCalls)
}

// Changing the sport must bust the old sport's cached list too, not just the
// new one.
func TestUpdateMatch_SportChangeInvalidatesOldList(t *testing.T) {
	svc := &testutil.MockMatchService{Matches: []*models.Match{sampleMatch("football-1", "football")}}
	cache := testutil.NewMockCache()
	cache.Set("matches:sport:football", []byte("stale"))
	cache.Set("matches:sport:tennis", []byte("stale"))
	mc := newMatchesController(svc, cache)

	req := mux.SetURLVars(
		httptest.NewRequest(http.MethodPut, "/api/matches/football-1", strings.NewReader(`{"sport":"tennis"}`)),
		map[string]string{"id": "football-1"},
	)
	rr := httptest.NewRecorder()
	mc.Update(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	_, ok := cache.Get("matches:sport:football")
	assert.False(t, ok)
	_, ok = cache.Get("matches:sport:tennis")
	assert.False(t, ok)
}

func TestUpdateMatch_NotFound(t *testing.T) {
	svc := &testutil.MockMatchService{}
	mc := newMatchesController(svc, testutil.NewMockCache())

	req := mux.SetURLVars(
		httptest.NewRequest(http.MethodPut, "/api/matches/missing-1", strings.NewReader(`{}`)),
		map[string]string{"id": "missing-1"},
	)
	rr := httptest.NewRecorder()
	mc.Update(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteMatch(t *testing.T) {
	svc := &testutil.MockMatchService{Matches: []*models.Match{sampleMatch("football-1", "football")}}
	cache := testutil.NewMockCache()
	cache.Set("matches:sport:football", []byte("stale"))
	mc := newMatchesController(svc, cache)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/matches/football-1", nil), map[string]string{"id": "football-1"})
	rr := httptest.NewRecorder()
	mc.Delete(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Match deleted successfully")

	_, ok := cache.Get("matches:sport:football")
	assert.False(t, ok)
}

func TestDeleteMatch_NotFound(t *testing.T) {
	mc := newMatchesController(&testutil.MockMatchService{}, testutil.NewMockCache())

	req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/matches/missing-1", nil), map[string]string{"id": "missing-1"})
	rr := httptest.NewRecorder()
	mc.Delete(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

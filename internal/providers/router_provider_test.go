package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dummyHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func TestRouterProvider_GetAddsRoute(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/test", dummyHandler())

	routes := rp.GetRoutes()
	require.Len(t, routes, 1)
	assert.Equal(t, "/test", routes[0].Url)
	assert.Equal(t, http.MethodGet, routes[0].Method)
}

func TestRouterProvider_MultipleRoutes(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/a", dummyHandler())
	rp.Post("/b", dummyHandler())
	rp.Put("/c", dummyHandler())
	rp.Delete("/d", dummyHandler())

	assert.Len(t, rp.GetRoutes(), 4)
}

func TestRouterProvider_ServesRegisteredRoute(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/test", dummyHandler())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	rp.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestRouterProvider_WrongMethodRejected(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/test", dummyHandler())

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	rr := httptest.NewRecorder()
	rp.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRouterProvider_UnknownPath404(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/test", dummyHandler())

	req := httptest.NewRequest(http.MethodGet, "/other", nil)
	rr := httptest.NewRecorder()
	rp.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouterProvider_PathVariables(t *testing.T) {
	rp := NewRouterProvider()
	var gotSlug string
	rp.Get("/api/viewers/{slug}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSlug = mux.Vars(r)["slug"]
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/viewers/a-vs-b-live-2026-08-28", nil)
	rr := httptest.NewRecorder()
	rp.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "a-vs-b-live-2026-08-28", gotSlug)
}

// Literal segments must win over variables regardless of registration quirks,
// as long as the literal route is registered first.
func TestRouterProvider_LiteralBeforeVariable(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/api/viewers/bulk", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("bulk"))
	}))
	rp.Get("/api/viewers/{slug}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("slug"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/viewers/bulk", nil)
	rr := httptest.NewRecorder()
	rp.Handler().ServeHTTP(rr, req)

	assert.Equal(t, "bulk", rr.Body.String())
}

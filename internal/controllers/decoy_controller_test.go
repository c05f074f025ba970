package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdImage(t *testing.T) {
	dc := NewDecoyController()

	req := httptest.NewRequest(http.MethodGet, "/ads/ad.gif?ts=1756375200000", nil)
	rr := httptest.NewRecorder()
	dc.AdImage(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/gif", rr.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=31536000, immutable", rr.Header().Get("Cache-Control"))

	body := rr.Body.Bytes()
	require.Len(t, body, 43)
	// GIF89a magic
	assert.Equal(t, []byte("GIF89a"), body[:6])
}

func TestAdScript(t *testing.T) {
	dc := NewDecoyController()

	req := httptest.NewRequest(http.MethodGet, "/ads/test.js", nil)
	rr := httptest.NewRecorder()
	dc.AdScript(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/javascript", rr.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
	assert.Contains(t, rr.Body.String(), "__adProbeLoaded")
}

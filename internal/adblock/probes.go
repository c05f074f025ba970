package adblock

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// ImageProbePath and ScriptProbePath are the same-origin decoys the server
// exposes for the network probes.
const (
	ImageProbePath  = "/ads/ad.gif"
	ScriptProbePath = "/ads/test.js"
)

// ImageProbeURL builds the cache-busted probe URL.
func ImageProbeURL(baseURL string) string {
	return fmt.Sprintf("%s%s?ts=%d", strings.TrimSuffix(baseURL, "/"), ImageProbePath, time.Now().UnixMilli())
}

// ScriptProbeURL builds the script probe URL.
func ScriptProbeURL(baseURL string) string {
	return strings.TrimSuffix(baseURL, "/") + ScriptProbePath
}

// HTTPProbe returns a ProbeFunc that fetches url and reports whether the
// resource loaded. Any transport error or non-200 status counts as blocked.
func HTTPProbe(client *http.Client, url string) ProbeFunc {
	if client == nil {
		client = http.DefaultClient
	}
	return func(ctx context.Context) bool {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return false
		}
		resp, err := client.Do(req)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode == http.StatusOK
	}
}

// TrackPayload is the wire body of a verdict report.
type TrackPayload struct {
	Adblock   bool   `json:"adblock"`
	Page      string `json:"page"`
	Timestamp string `json:"timestamp"`
}

// HTTPReporter posts verdicts to the tracking endpoint. Errors are logged and
// swallowed.
type HTTPReporter struct {
	client   *http.Client
	endpoint string
	logf     func(format string, args ...interface{})
}

func NewHTTPReporter(client *http.Client, endpoint string, logf func(string, ...interface{})) *HTTPReporter {
	if client == nil {
		client = http.DefaultClient
	}
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	return &HTTPReporter{client: client, endpoint: endpoint, logf: logf}
}

func (r *HTTPReporter) Report(v Verdict, page string) {
	body, err := json.Marshal(TrackPayload{
		Adblock:   v.Blocked,
		Page:      page,
		Timestamp: v.At.UTC().Format(time.RFC3339),
	})
	if err != nil {
		r.logf("verdict report marshal failed: %v", err)
		return
	}
	resp, err := r.client.Post(r.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		r.logf("verdict report failed: %v", err)
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

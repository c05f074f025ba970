package controllers

import "net/http"

// DecoyController serves the same-origin ad-shaped assets the client probe
// fetches. Blockers that filter by URL pattern kill these requests; that
// failure is the detection signal.
type DecoyController struct{}

func NewDecoyController() *DecoyController {
	return &DecoyController{}
}

// adGIF is a 1x1 transparent GIF89a.
var adGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0x21, 0xf9, 0x04, 0x01, 0x00,
	0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00,
	0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3b,
}

const adScript = "window.__adProbeLoaded = true;\n"

func (dc *DecoyController) AdImage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(adGIF)
}

func (dc *DecoyController) AdScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(adScript))
}

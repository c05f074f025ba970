package adblock

import "strings"

// Static lookup between canonical routes and their ad-heavy variants.
// Match pages map by prefix, everything else by exact path.

const (
	matchPrefix        = "/match/"
	matchAdHeavyPrefix = "/matchadblock/"
)

var adHeavyByCanonical = map[string]string{
	"/":           "/homepageadblock",
	"/football":   "/footballadblock",
	"/basketball": "/basketballadblock",
	"/tennis":     "/tennisadblock",
	"/ufc":        "/ufcadblock",
	"/rugby":      "/rugbyadblock",
	"/baseball":   "/baseballadblock",
}

var canonicalByAdHeavy = func() map[string]string {
	m := make(map[string]string, len(adHeavyByCanonical))
	for canonical, heavy := range adHeavyByCanonical {
		m[heavy] = canonical
	}
	return m
}()

// IsAdHeavy reports whether path is already an ad-heavy variant. Used as the
// redirect loop guard on both directions.
func IsAdHeavy(path string) bool {
	if _, ok := canonicalByAdHeavy[path]; ok {
		return true
	}
	return strings.HasPrefix(path, matchAdHeavyPrefix)
}

// AdHeavyPath maps a canonical path to its ad-heavy variant. Returns ok=false
// when the path has no mapping or is already ad-heavy.
func AdHeavyPath(path string) (string, bool) {
	if IsAdHeavy(path) {
		return path, false
	}
	if heavy, ok := adHeavyByCanonical[path]; ok {
		return heavy, true
	}
	if slug, ok := strings.CutPrefix(path, matchPrefix); ok && slug != "" {
		return matchAdHeavyPrefix + slug, true
	}
	return path, false
}

// CanonicalPath reverses AdHeavyPath. Returns ok=false when the path is not
// an ad-heavy variant.
func CanonicalPath(path string) (string, bool) {
	if canonical, ok := canonicalByAdHeavy[path]; ok {
		return canonical, true
	}
	if slug, ok := strings.CutPrefix(path, matchAdHeavyPrefix); ok && slug != "" {
		return matchPrefix + slug, true
	}
	return path, false
}

package adblock

import "fmt"

// Policy selects how probe outcomes are combined into a verdict. The two
// modes disagree on mixed outcomes: lenient treats any single signal as
// blocking, strict requires the style bait to be hidden plus at least one
// network-level signal.
type Policy int

const (
	PolicyLenient Policy = iota
	PolicyStrict
)

func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "lenient":
		return PolicyLenient, nil
	case "strict":
		return PolicyStrict, nil
	}
	return PolicyLenient, fmt.Errorf("unknown adblock policy %q", s)
}

func (p Policy) String() string {
	if p == PolicyStrict {
		return "strict"
	}
	return "lenient"
}

// ResponseMode selects what a Blocked verdict does to the page: inject more
// placements, or navigate to the parallel ad-heavy route.
type ResponseMode int

const (
	ModeDensity ResponseMode = iota
	ModeRedirect
)

func ParseResponseMode(s string) (ResponseMode, error) {
	switch s {
	case "density":
		return ModeDensity, nil
	case "redirect":
		return ModeRedirect, nil
	}
	return ModeDensity, fmt.Errorf("unknown adblock response mode %q", s)
}

func (m ResponseMode) String() string {
	if m == ModeRedirect {
		return "redirect"
	}
	return "density"
}

// ProbeOutcome holds the raw signals of one detection cycle.
type ProbeOutcome struct {
	StyleBlocked   bool `json:"styleBlocked"`
	NetworkBlocked bool `json:"networkBlocked"`
	ImageLoaded    bool `json:"imageLoaded"`
	ScriptBlocked  bool `json:"scriptBlocked"`
}

// Blocked combines probe signals under the policy.
func (p Policy) Blocked(o ProbeOutcome) bool {
	if p == PolicyStrict {
		return o.StyleBlocked && (o.NetworkBlocked || !o.ImageLoaded || o.ScriptBlocked)
	}
	return o.StyleBlocked || o.NetworkBlocked || !o.ImageLoaded
}

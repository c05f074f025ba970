package adblock

import (
	"context"
	"time"

	"go.uber.org/atomic"
)

// State is the page-level verdict marker. It starts Unknown and transitions
// exactly once per detection cycle; a manual recheck may transition it back.
type State int32

const (
	StateUnknown State = iota
	StateClean
	StateBlocked
)

func (s State) String() string {
	switch s {
	case StateClean:
		return "clean"
	case StateBlocked:
		return "blocked"
	}
	return "unknown"
}

// BodyClass is the DOM contract consumed by other on-page scripts.
func (s State) BodyClass() string {
	switch s {
	case StateClean:
		return "adblock-off"
	case StateBlocked:
		return "adblock-on"
	}
	return ""
}

// Placement describes one injected ad slot in density mode.
type Placement struct {
	Kind  string `json:"kind"` // sticky-top, sticky-bottom, inline
	Index int    `json:"index"`
}

// Response is the plan the page applies after a cycle: marker class, banner
// visibility, optional navigation and ad-slot changes.
type Response struct {
	State                  State       `json:"state"`
	BodyClass              string      `json:"bodyClass"`
	Banner                 bool        `json:"banner"`
	RedirectTo             string      `json:"redirectTo,omitempty"`
	Placements             []Placement `json:"placements,omitempty"`
	ActivateProviderScript bool        `json:"activateProviderScript"`
	RemoveProviderScript   bool        `json:"removeProviderScript"`
}

// Reporter delivers a verdict to the tracking backend. Calls are best-effort:
// failures must not surface to the caller.
type Reporter interface {
	Report(v Verdict, page string)
}

type SentinelConfig struct {
	Detector       *Detector
	Mode           ResponseMode
	MaxInlineAds   int
	RecheckTimeout time.Duration
	Page           string
	Reporter       Reporter
	Logf           func(format string, args ...interface{})
}

// Sentinel owns one page's detection state machine.
type Sentinel struct {
	detector       *Detector
	mode           ResponseMode
	maxInlineAds   int
	recheckTimeout time.Duration
	page           string
	reporter       Reporter
	logf           func(format string, args ...interface{})
	state          atomic.Int32
}

func NewSentinel(cfg SentinelConfig) *Sentinel {
	s := &Sentinel{
		detector:       cfg.Detector,
		mode:           cfg.Mode,
		maxInlineAds:   cfg.MaxInlineAds,
		recheckTimeout: cfg.RecheckTimeout,
		page:           cfg.Page,
		reporter:       cfg.Reporter,
		logf:           cfg.Logf,
	}
	if s.detector == nil {
		s.detector = NewDetector(DetectorConfig{})
	}
	if s.recheckTimeout <= 0 {
		s.recheckTimeout = DefaultRecheckTimeout
	}
	if s.maxInlineAds <= 0 {
		s.maxInlineAds = 12
	}
	if s.logf == nil {
		s.logf = func(string, ...interface{}) {}
	}
	return s
}

func (s *Sentinel) State() State {
	return State(s.state.Load())
}

func (s *Sentinel) Page() string {
	return s.page
}

// Run performs the page-load detection cycle with the full window.
func (s *Sentinel) Run(ctx context.Context) Response {
	return s.cycle(ctx, 0)
}

// Recheck re-runs detection with the shorter manual-action window and applies
// the same transition rules.
func (s *Sentinel) Recheck(ctx context.Context) Response {
	return s.cycle(ctx, s.recheckTimeout)
}

func (s *Sentinel) cycle(ctx context.Context, timeout time.Duration) Response {
	verdict := s.detector.DetectWithTimeout(ctx, timeout)

	next := StateClean
	if verdict.Blocked {
		next = StateBlocked
	}
	prev := State(s.state.Swap(int32(next)))
	if prev != next {
		s.logf("state %s -> %s on %s", prev, next, s.page)
	}

	s.report(verdict)
	return s.respond(next)
}

// report is fire-and-forget: a failed report never affects the page state.
func (s *Sentinel) report(v Verdict) {
	if s.reporter == nil {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logf("verdict report panic: %v", r)
			}
		}()
		s.reporter.Report(v, s.page)
	}()
}

func (s *Sentinel) respond(state State) Response {
	resp := Response{
		State:     state,
		BodyClass: state.BodyClass(),
		Banner:    state == StateBlocked,
	}
	switch state {
	case StateBlocked:
		resp.ActivateProviderScript = true
		if s.mode == ModeRedirect {
			if to, ok := AdHeavyPath(s.page); ok {
				resp.RedirectTo = to
			}
		} else {
			resp.Placements = densityPlan(s.maxInlineAds)
		}
	case StateClean:
		resp.RemoveProviderScript = true
		if to, ok := CanonicalPath(s.page); ok {
			resp.RedirectTo = to
		}
	}
	return resp
}

func densityPlan(maxInline int) []Placement {
	plan := make([]Placement, 0, maxInline+2)
	plan = append(plan, Placement{Kind: "sticky-top"}, Placement{Kind: "sticky-bottom"})
	for i := 0; i < maxInline; i++ {
		plan = append(plan, Placement{Kind: "inline", Index: i})
	}
	return plan
}

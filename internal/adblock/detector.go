package adblock

import (
	"context"
	"time"

	"go.uber.org/atomic"
)

const (
	DefaultTimeout        = 1200 * time.Millisecond
	DefaultRecheckTimeout = 800 * time.Millisecond

	// BaitClasses is the class list planted on the bait element. Filter
	// lists key on these names.
	BaitClasses = "ads ad adsbox sponsor advertisement ad-banner"
)

// Verdict is the immutable result of one detection cycle.
type Verdict struct {
	Blocked bool
	At      time.Time
	Outcome ProbeOutcome
}

// Bait models the decoy ad container: plant it, check whether a cosmetic
// filter hid it, remove it.
type Bait interface {
	Plant() error
	Hidden() bool
	Remove()
}

// ProbeFunc issues one network probe and reports whether the resource loaded.
type ProbeFunc func(ctx context.Context) bool

type DetectorConfig struct {
	Policy      Policy
	Timeout     time.Duration
	Bait        Bait
	ImageProbe  ProbeFunc
	ScriptProbe ProbeFunc
	Logf        func(format string, args ...interface{})
}

// Detector runs the bait-and-probe cycle. Detect always settles within the
// configured window and always removes the bait, whatever the probes do.
type Detector struct {
	policy      Policy
	timeout     time.Duration
	bait        Bait
	imageProbe  ProbeFunc
	scriptProbe ProbeFunc
	logf        func(format string, args ...interface{})
	cycles      atomic.Int64
}

func NewDetector(cfg DetectorConfig) *Detector {
	d := &Detector{
		policy:      cfg.Policy,
		timeout:     cfg.Timeout,
		bait:        cfg.Bait,
		imageProbe:  cfg.ImageProbe,
		scriptProbe: cfg.ScriptProbe,
		logf:        cfg.Logf,
	}
	if d.timeout <= 0 {
		d.timeout = DefaultTimeout
	}
	if d.bait == nil {
		d.bait = noopBait{}
	}
	if d.logf == nil {
		d.logf = func(string, ...interface{}) {}
	}
	return d
}

// Cycles returns how many detection cycles have completed.
func (d *Detector) Cycles() int64 {
	return d.cycles.Load()
}

// Detect runs one cycle with the default window.
func (d *Detector) Detect(ctx context.Context) Verdict {
	return d.DetectWithTimeout(ctx, d.timeout)
}

// DetectWithTimeout runs one cycle with an explicit window. A probe that has
// not answered by the end of the window counts as not loaded, matching the
// browser behavior where a stalled ad request is itself a blocking signal.
func (d *Detector) DetectWithTimeout(ctx context.Context, timeout time.Duration) Verdict {
	if timeout <= 0 {
		timeout = d.timeout
	}

	var out ProbeOutcome
	// An absent probe contributes no blocking evidence.
	out.ImageLoaded = d.imageProbe == nil

	planted := false
	if err := d.bait.Plant(); err != nil {
		d.logf("bait plant failed: %v", err)
	} else {
		planted = true
	}
	defer func() {
		if planted {
			d.bait.Remove()
		}
		d.cycles.Inc()
	}()

	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	imgCh := d.launch(probeCtx, d.imageProbe)
	scriptCh := d.launch(probeCtx, d.scriptProbe)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for imgCh != nil || scriptCh != nil {
		select {
		case loaded := <-imgCh:
			out.ImageLoaded = loaded
			out.NetworkBlocked = !loaded
			imgCh = nil
		case loaded := <-scriptCh:
			out.ScriptBlocked = !loaded
			scriptCh = nil
		case <-timer.C:
			imgCh, scriptCh = nil, nil
		}
	}

	if planted {
		out.StyleBlocked = d.safeHidden()
	}

	v := Verdict{Blocked: d.policy.Blocked(out), At: time.Now(), Outcome: out}
	d.logf("detection settled: blocked=%v outcome=%+v", v.Blocked, out)
	return v
}

// launch runs probe in a goroutine, converting a panic into "did not load".
// A nil probe yields a nil channel, which select ignores.
func (d *Detector) launch(ctx context.Context, probe ProbeFunc) chan bool {
	if probe == nil {
		return nil
	}
	ch := make(chan bool, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				d.logf("probe panic: %v", r)
				ch <- false
			}
		}()
		ch <- probe(ctx)
	}()
	return ch
}

// safeHidden inspects the bait; an inspection failure is not blocking
// evidence.
func (d *Detector) safeHidden() (hidden bool) {
	defer func() {
		if r := recover(); r != nil {
			d.logf("bait inspection panic: %v", r)
			hidden = false
		}
	}()
	return d.bait.Hidden()
}

type noopBait struct{}

func (noopBait) Plant() error { return nil }
func (noopBait) Hidden() bool { return false }
func (noopBait) Remove()      {}

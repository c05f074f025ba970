package models

import (
	"sync"
	"time"
)

const dayKeyLayout = "2006-01-02"

// retainedDays bounds the daily map so a long-lived process does not grow
// without limit. The rest of the counters are plain totals.
const retainedDays = 31

type DayStat struct {
	Adblock int `json:"adblock"`
	Clean   int `json:"clean"`
}

// VisitCounters is the process-wide visit state. Mutations are serialized by
// the mutex; nothing here is ever persisted — a restart resets to zero by
// design.
type VisitCounters struct {
	mu      sync.RWMutex
	total   int
	adblock int
	clean   int
	daily   map[string]*DayStat
	now     func() time.Time
}

func NewVisitCounters(now func() time.Time) *VisitCounters {
	if now == nil {
		now = time.Now
	}
	return &VisitCounters{
		daily: make(map[string]*DayStat),
		now:   now,
	}
}

// Record counts one visit. The daily bucket is keyed by the UTC date of the
// wall clock at call time; the first write after a midnight boundary lands in
// a fresh key (lazy rollover, no timer).
func (vc *VisitCounters) Record(isAdblock bool) {
	day := vc.now().UTC().Format(dayKeyLayout)

	vc.mu.Lock()
	defer vc.mu.Unlock()

	vc.total++
	bucket, ok := vc.daily[day]
	if !ok {
		bucket = &DayStat{}
		vc.daily[day] = bucket
		vc.pruneLocked(day)
	}
	if isAdblock {
		vc.adblock++
		bucket.Adblock++
	} else {
		vc.clean++
		bucket.Clean++
	}
}

// pruneLocked drops buckets older than the retention window. Day keys sort
// lexicographically, so a string cutoff suffices.
func (vc *VisitCounters) pruneLocked(today string) {
	if len(vc.daily) <= retainedDays {
		return
	}
	t, err := time.Parse(dayKeyLayout, today)
	if err != nil {
		return
	}
	cutoff := t.AddDate(0, 0, -retainedDays).Format(dayKeyLayout)
	for key := range vc.daily {
		if key < cutoff {
			delete(vc.daily, key)
		}
	}
}

func (vc *VisitCounters) Totals() (total, adblock, clean int) {
	vc.mu.RLock()
	defer vc.mu.RUnlock()
	return vc.total, vc.adblock, vc.clean
}

// Daily returns a copy of the per-day buckets.
func (vc *VisitCounters) Daily() map[string]DayStat {
	vc.mu.RLock()
	defer vc.mu.RUnlock()

	out := make(map[string]DayStat, len(vc.daily))
	for key, bucket := range vc.daily {
		out[key] = *bucket
	}
	return out
}

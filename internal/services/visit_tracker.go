package services

import (
	"math"
	"time"

	"arenastreams/internal/models"
)

// StatsReport is the admin-facing counter snapshot with derived percentages.
type StatsReport struct {
	TotalVisits       int                       `json:"totalVisits"`
	AdblockVisits     int                       `json:"adblockVisits"`
	CleanVisits       int                       `json:"cleanVisits"`
	AdblockPercentage int                       `json:"adblockPercentage"`
	CleanPercentage   int                       `json:"cleanPercentage"`
	DailyStats        map[string]models.DayStat `json:"dailyStats"`
}

type VisitTrackerInterface interface {
	RecordVisit(isAdblock bool)
	GetStats() StatsReport
	TotalVisits() int
}

// VisitTracker wraps the counters. Best-effort analytics: in-memory only,
// reset on restart.
type VisitTracker struct {
	counters *models.VisitCounters
}

func NewVisitTracker() VisitTrackerInterface {
	return NewVisitTrackerWithClock(time.Now)
}

func NewVisitTrackerWithClock(now func() time.Time) VisitTrackerInterface {
	return &VisitTracker{counters: models.NewVisitCounters(now)}
}

func (vt *VisitTracker) RecordVisit(isAdblock bool) {
	vt.counters.Record(isAdblock)
}

func (vt *VisitTracker) TotalVisits() int {
	total, _, _ := vt.counters.Totals()
	return total
}

func (vt *VisitTracker) GetStats() StatsReport {
	total, adblock, clean := vt.counters.Totals()
	return StatsReport{
		TotalVisits:       total,
		AdblockVisits:     adblock,
		CleanVisits:       clean,
		AdblockPercentage: percentage(adblock, total),
		CleanPercentage:   percentage(clean, total),
		DailyStats:        vt.counters.Daily(),
	}
}

func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

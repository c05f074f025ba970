package models

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// MatchStore is the in-memory match directory. All reads return clones so
// callers can never mutate shared state.
type MatchStore struct {
	mu   sync.RWMutex
	data map[string]*Match
}

func NewMatchStore() *MatchStore {
	return &MatchStore{data: make(map[string]*Match)}
}

func (s *MatchStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *MatchStore) Add(m *Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[m.ID] = m.Clone()
}

func (s *MatchStore) Update(m *Match) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[m.ID]; !ok {
		return false
	}
	s.data[m.ID] = m.Clone()
	return true
}

func (s *MatchStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[id]; !ok {
		return false
	}
	delete(s.data, id)
	return true
}

func (s *MatchStore) ByID(id string) (*Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.data[id]
	if !ok {
		return nil, false
	}
	return m.Clone(), true
}

func (s *MatchStore) BySlug(slug string) (*Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.data {
		if m.Slug == slug {
			return m.Clone(), true
		}
	}
	return nil, false
}

// List returns all matches ordered by kickoff, then id for stability.
func (s *MatchStore) List() []*Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked(func(*Match) bool { return true })
}

func (s *MatchStore) BySport(sport string) []*Match {
	sport = strings.ToLower(sport)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked(func(m *Match) bool {
		return strings.ToLower(m.Sport) == sport
	})
}

// ByDay returns matches whose kickoff falls on the given UTC date.
func (s *MatchStore) ByDay(day string) []*Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked(func(m *Match) bool {
		return m.Date.UTC().Format(dayKeyLayout) == day
	})
}

func (s *MatchStore) sortedLocked(keep func(*Match) bool) []*Match {
	out := make([]*Match, 0, len(s.data))
	for _, m := range s.data {
		if keep(m) {
			out = append(out, m.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Snapshot returns the full contents for persistence.
func (s *MatchStore) Snapshot() []*Match {
	return s.List()
}

// Replace swaps in a restored data set.
func (s *MatchStore) Replace(matches []*Match) {
	data := make(map[string]*Match, len(matches))
	for _, m := range matches {
		if m != nil && m.ID != "" {
			data[m.ID] = m.Clone()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
}

// PruneBefore drops matches with a kickoff older than cutoff. Returns how
// many were removed.
func (s *MatchStore) PruneBefore(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, m := range s.data {
		if m.Date.Before(cutoff) {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}

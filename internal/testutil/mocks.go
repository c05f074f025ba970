package testutil

import (
	"strings"
	"sync"

	"arenastreams/internal/models"
	"arenastreams/internal/providers"
	"arenastreams/internal/services"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockVisitTracker implements services.VisitTrackerInterface.
type MockVisitTracker struct {
	mu          sync.Mutex
	RecordCalls []bool
	Stats       services.StatsReport
}

func (m *MockVisitTracker) RecordVisit(isAdblock bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordCalls = append(m.RecordCalls, isAdblock)
}

func (m *MockVisitTracker) GetStats() services.StatsReport {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Stats
}

func (m *MockVisitTracker) TotalVisits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Stats.TotalVisits
}

func (m *MockVisitTracker) Recorded() []bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]bool, len(m.RecordCalls))
	copy(out, m.RecordCalls)
	return out
}

// MockViewerRegistry implements services.ViewerRegistryInterface. Subscription
// plumbing is backed by a real registry so channel semantics hold; count
// lookups can be overridden through CountData.
type MockViewerRegistry struct {
	mu               sync.Mutex
	backing          services.ViewerRegistryInterface
	SubscribeCalls   []string
	UnsubscribeCalls int
	CountData        map[string]int
}

func NewMockViewerRegistry() *MockViewerRegistry {
	return &MockViewerRegistry{backing: services.NewViewerRegistry(nil)}
}

func (m *MockViewerRegistry) Subscribe(slug string) *services.ViewerSubscription {
	m.mu.Lock()
	m.SubscribeCalls = append(m.SubscribeCalls, slug)
	m.mu.Unlock()
	return m.backing.Subscribe(slug)
}

func (m *MockViewerRegistry) Unsubscribe(sub *services.ViewerSubscription) {
	m.mu.Lock()
	m.UnsubscribeCalls++
	m.mu.Unlock()
	m.backing.Unsubscribe(sub)
}

func (m *MockViewerRegistry) SubscribeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SubscribeCalls)
}

func (m *MockViewerRegistry) UnsubscribeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.UnsubscribeCalls
}

func (m *MockViewerRegistry) Count(slug string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountData != nil {
		return m.CountData[slug]
	}
	return m.backing.Count(slug)
}

func (m *MockViewerRegistry) BulkCount(slugs []string) map[string]int {
	m.mu.Lock()
	override := m.CountData
	m.mu.Unlock()
	if override == nil {
		return m.backing.BulkCount(slugs)
	}
	out := make(map[string]int, len(slugs))
	for _, s := range slugs {
		out[s] = override[s]
	}
	return out
}

func (m *MockViewerRegistry) SlugCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountData != nil {
		return len(m.CountData)
	}
	return m.backing.SlugCount()
}

func (m *MockViewerRegistry) SubscriberCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountData != nil {
		total := 0
		for _, c := range m.CountData {
			total += c
		}
		return total
	}
	return m.backing.SubscriberCount()
}

// MockMatchService implements services.MatchServiceInterface.
type MockMatchService struct {
	mu           sync.Mutex
	Matches      []*models.Match
	Day          string
	CreateErr    error
	UpdateErr    error
	CreateCalls  []*models.MatchInput
	UpdateCalls  []string
	DeleteCalls  []string
	ReplaceCalls [][]*models.Match
	PruneCalls   []int
	PruneResult  int
}

func (m *MockMatchService) List() []*models.Match {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Matches
}

func (m *MockMatchService) BySport(sport string) []*models.Match {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Match
	for _, match := range m.Matches {
		if match.Sport == sport {
			out = append(out, match)
		}
	}
	return out
}

func (m *MockMatchService) Today() (string, []*models.Match) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Day, m.Matches
}

func (m *MockMatchService) GetByID(id string) (*models.Match, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, match := range m.Matches {
		if match.ID == id {
			return match.Clone(), true
		}
	}
	return nil, false
}

func (m *MockMatchService) GetBySlug(slug string) (*models.Match, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, match := range m.Matches {
		if match.Slug == slug {
			return match.Clone(), true
		}
	}
	return nil, false
}

func (m *MockMatchService) Create(in *models.MatchInput) (*models.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls = append(m.CreateCalls, in)
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	match := &models.Match{ID: in.Sport + "-1", Sport: in.Sport, TeamA: in.TeamA, TeamB: in.TeamB}
	m.Matches = append(m.Matches, match)
	return match, nil
}

func (m *MockMatchService) Update(id string, in *models.MatchUpdate) (*models.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls = append(m.UpdateCalls, id)
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	for _, match := range m.Matches {
		if match.ID == id {
			if in.Sport != nil {
				match.Sport = strings.ToLower(*in.Sport)
			}
			return match, nil
		}
	}
	return nil, nil
}

func (m *MockMatchService) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls = append(m.DeleteCalls, id)
	for i, match := range m.Matches {
		if match.ID == id {
			m.Matches = append(m.Matches[:i], m.Matches[i+1:]...)
			return true
		}
	}
	return false
}

func (m *MockMatchService) Snapshot() []*models.Match {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.Match, len(m.Matches))
	copy(out, m.Matches)
	return out
}

func (m *MockMatchService) Replace(matches []*models.Match) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReplaceCalls = append(m.ReplaceCalls, matches)
	m.Matches = matches
}

func (m *MockMatchService) Prune(retentionDays int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PruneCalls = append(m.PruneCalls, retentionDays)
	return m.PruneResult
}

func (m *MockMatchService) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Matches)
}

// MockCache implements providers.CacheProviderInterface over a plain map.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
	Dels []string
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Data[key]
	return v, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
	m.Dels = append(m.Dels, key)
}

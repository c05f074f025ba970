package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arenastreams/internal/models"
	"arenastreams/internal/structures"
	"arenastreams/internal/testutil"
)

type schedulerTestMetrics struct {
	mu               sync.Mutex
	persistDurations int
}

func (m *schedulerTestMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *schedulerTestMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *schedulerTestMetrics) IncCacheHits()                                    {}
func (m *schedulerTestMetrics) IncCacheMisses()                                  {}
func (m *schedulerTestMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.persistDurations++
}

func (m *schedulerTestMetrics) observed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.persistDurations
}

func schedulerFixture(t *testing.T, svc *testutil.MockMatchService, filePath string) (*Scheduler, *schedulerTestMetrics) {
	t.Helper()
	conf := &structures.Config{
		Persistence: structures.Persistence{
			FilePath:     filePath,
			SaveInterval: time.Hour,
		},
		Matches: structures.MatchesConfig{RetentionDays: 2},
	}
	fm, _ := newTestFileManager(t, svc)
	metrics := &schedulerTestMetrics{}
	s := NewScheduler(conf, &testutil.MockLogger{}, svc, fm, metrics).(*Scheduler)
	return s, metrics
}

func TestScheduler_PersistWritesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.bin")
	svc := &testutil.MockMatchService{Matches: []*models.Match{{ID: "football-1", Sport: "football"}}}
	s, metrics := schedulerFixture(t, svc, path)

	require.NoError(t, s.Persist())

	_, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Equal(t, 1, metrics.observed())
}

func TestScheduler_PersistErrorPropagates(t *testing.T) {
	svc := &testutil.MockMatchService{}
	s, metrics := schedulerFixture(t, svc, filepath.Join(t.TempDir(), "missing-dir", "matches.bin"))

	assert.Error(t, s.Persist())
	assert.Equal(t, 0, metrics.observed())
}

func TestScheduler_RestoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.bin")

	source := &testutil.MockMatchService{Matches: []*models.Match{{ID: "tennis-1", Sport: "tennis"}}}
	saver, _ := schedulerFixture(t, source, path)
	require.NoError(t, saver.Persist())

	target := &testutil.MockMatchService{}
	loader, _ := schedulerFixture(t, target, path)
	require.NoError(t, loader.Restore())

	require.Len(t, target.ReplaceCalls, 1)
	assert.Equal(t, "tennis-1", target.ReplaceCalls[0][0].ID)
}

func TestScheduler_RestoreMissingFile(t *testing.T) {
	svc := &testutil.MockMatchService{}
	s, _ := schedulerFixture(t, svc, filepath.Join(t.TempDir(), "never.bin"))

	assert.NoError(t, s.Restore())
	assert.Empty(t, svc.ReplaceCalls)
}

func TestScheduler_InitAndStop(t *testing.T) {
	svc := &testutil.MockMatchService{}
	s, _ := schedulerFixture(t, svc, filepath.Join(t.TempDir(), "matches.bin"))

	s.Init()
	s.Stop()
}

func TestScheduler_StopWithoutInit(t *testing.T) {
	svc := &testutil.MockMatchService{}
	s, _ := schedulerFixture(t, svc, filepath.Join(t.TempDir(), "matches.bin"))

	// must not panic
	s.Stop()
}

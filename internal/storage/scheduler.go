package storage

import (
	"sync"
	"time"

	"github.com/roylee0704/gron"

	"arenastreams/internal/providers"
	"arenastreams/internal/services"
	"arenastreams/internal/storage/interfaces"
	"arenastreams/internal/structures"
)

// Scheduler runs the periodic jobs: snapshot persistence on the configured
// interval and a daily prune of stale manual matches.
type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	service     services.MatchServiceInterface
	fileManager *FileManager
	metrics     providers.MetricsProviderInterface
	cron        *gron.Cron
	opsMu       sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.config.Persistence.SaveInterval), func() {
		if err := s.Persist(); err != nil {
			return
		}
		s.logger.Infof(providers.TypeApp, "Persisted matches to file %s", s.config.Persistence.FilePath)
	})

	s.cron.AddFunc(gron.Every(24*time.Hour), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		removed := s.service.Prune(s.config.Matches.RetentionDays)
		if removed > 0 {
			s.logger.Infof(providers.TypeApp, "Pruned %d stale matches", removed)
		}
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	return s.fileManager.LoadFromFile(s.config.Persistence.FilePath)
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	start := time.Now()
	err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting matches: %s", err)
		return err
	}
	s.metrics.ObservePersistenceDuration(time.Since(start))
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.MatchServiceInterface, fileManager *FileManager, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		service:     service,
		fileManager: fileManager,
		metrics:     metrics,
	}
}

package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/gookit/validate"
	"github.com/gosimple/slug"

	"arenastreams/internal/models"
)

// ErrInvalidMatch marks validation failures; controllers map it to 400.
var ErrInvalidMatch = fmt.Errorf("invalid match payload")

type MatchServiceInterface interface {
	List() []*models.Match
	BySport(sport string) []*models.Match
	Today() (string, []*models.Match)
	GetByID(id string) (*models.Match, bool)
	GetBySlug(slug string) (*models.Match, bool)
	Create(in *models.MatchInput) (*models.Match, error)
	Update(id string, in *models.MatchUpdate) (*models.Match, error)
	Delete(id string) bool
	Snapshot() []*models.Match
	Replace(matches []*models.Match)
	Prune(retentionDays int) int
	Len() int
}

// MatchService owns the manually-curated match directory.
type MatchService struct {
	store *models.MatchStore
	now   func() time.Time
}

func NewMatchService() MatchServiceInterface {
	return NewMatchServiceWithClock(time.Now)
}

func NewMatchServiceWithClock(now func() time.Time) MatchServiceInterface {
	return &MatchService{store: models.NewMatchStore(), now: now}
}

func (ms *MatchService) List() []*models.Match {
	return ms.withDerivedStatus(ms.store.List())
}

func (ms *MatchService) BySport(sport string) []*models.Match {
	return ms.withDerivedStatus(ms.store.BySport(sport))
}

func (ms *MatchService) Today() (string, []*models.Match) {
	day := ms.now().UTC().Format("2006-01-02")
	return day, ms.withDerivedStatus(ms.store.ByDay(day))
}

func (ms *MatchService) GetByID(id string) (*models.Match, bool) {
	m, ok := ms.store.ByID(id)
	if ok {
		m.Status = m.DerivedStatus(ms.now())
	}
	return m, ok
}

func (ms *MatchService) GetBySlug(s string) (*models.Match, bool) {
	m, ok := ms.store.BySlug(s)
	if ok {
		m.Status = m.DerivedStatus(ms.now())
	}
	return m, ok
}

func (ms *MatchService) Create(in *models.MatchInput) (*models.Match, error) {
	v := validate.Struct(in)
	if !v.Validate() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMatch, v.Errors.One())
	}
	date, err := models.ParseMatchDate(in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMatch, err)
	}

	now := ms.now()
	sport := strings.ToLower(in.Sport)
	m := &models.Match{
		ID:          fmt.Sprintf("%s-%d", sport, now.UnixMilli()),
		Sport:       sport,
		TeamA:       in.TeamA,
		TeamB:       in.TeamB,
		Competition: in.Competition,
		Date:        date,
		EmbedURLs:   []string(in.EmbedURLs),
		TeamABadge:  in.TeamABadge,
		TeamBBadge:  in.TeamBBadge,
		Status:      models.StatusUpcoming,
		Slug:        matchSlug(in.TeamA, in.TeamB, date),
		Source:      "manual",
		CreatedAt:   now.UTC(),
	}
	ms.store.Add(m)
	return m.Clone(), nil
}

func (ms *MatchService) Update(id string, in *models.MatchUpdate) (*models.Match, error) {
	m, ok := ms.store.ByID(id)
	if !ok {
		return nil, nil
	}

	reslug := false
	if in.Sport != nil {
		m.Sport = strings.ToLower(*in.Sport)
	}
	if in.TeamA != nil {
		m.TeamA = *in.TeamA
		reslug = true
	}
	if in.TeamB != nil {
		m.TeamB = *in.TeamB
		reslug = true
	}
	if in.Competition != nil {
		m.Competition = *in.Competition
	}
	if in.Date != nil {
		date, err := models.ParseMatchDate(*in.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidMatch, err)
		}
		m.Date = date
		reslug = true
	}
	if in.EmbedURLs != nil {
		m.EmbedURLs = []string(*in.EmbedURLs)
	}
	if in.TeamABadge != nil {
		m.TeamABadge = *in.TeamABadge
	}
	if in.TeamBBadge != nil {
		m.TeamBBadge = *in.TeamBBadge
	}
	if reslug {
		m.Slug = matchSlug(m.TeamA, m.TeamB, m.Date)
	}

	if !ms.store.Update(m) {
		return nil, nil
	}
	m.Status = m.DerivedStatus(ms.now())
	return m, nil
}

func (ms *MatchService) Delete(id string) bool {
	return ms.store.Delete(id)
}

func (ms *MatchService) Snapshot() []*models.Match {
	return ms.store.Snapshot()
}

func (ms *MatchService) Replace(matches []*models.Match) {
	ms.store.Replace(matches)
}

func (ms *MatchService) Prune(retentionDays int) int {
	if retentionDays <= 0 {
		return 0
	}
	cutoff := ms.now().UTC().AddDate(0, 0, -retentionDays)
	return ms.store.PruneBefore(cutoff)
}

func (ms *MatchService) Len() int {
	return ms.store.Len()
}

func (ms *MatchService) withDerivedStatus(matches []*models.Match) []*models.Match {
	now := ms.now()
	for _, m := range matches {
		m.Status = m.DerivedStatus(now)
	}
	return matches
}

func matchSlug(teamA, teamB string, date time.Time) string {
	return slug.Make(fmt.Sprintf("%s-vs-%s-live-%s", teamA, teamB, date.UTC().Format("2006-01-02")))
}

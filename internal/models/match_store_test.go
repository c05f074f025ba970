package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeMatch(id, sport string, date time.Time) *Match {
	return &Match{ID: id, Sport: sport, Slug: "slug-" + id, Date: date}
}

func TestMatchStore_AddAndLookup(t *testing.T) {
	s := NewMatchStore()
	date := time.Date(2026, 8, 28, 18, 0, 0, 0, time.UTC)
	s.Add(storeMatch("football-1", "football", date))

	m, ok := s.ByID("football-1")
	require.True(t, ok)
	assert.Equal(t, "football", m.Sport)

	m, ok = s.BySlug("slug-football-1")
	require.True(t, ok)
	assert.Equal(t, "football-1", m.ID)

	_, ok = s.ByID("missing")
	assert.False(t, ok)
}

func TestMatchStore_ReadsReturnClones(t *testing.T) {
	s := NewMatchStore()
	s.Add(storeMatch("football-1", "football", time.Now()))

	m, _ := s.ByID("football-1")
	m.Sport = "mutated"

	fresh, _ := s.ByID("football-1")
	assert.Equal(t, "football", fresh.Sport)
}

func TestMatchStore_ListOrder(t *testing.T) {
	s := NewMatchStore()
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	s.Add(storeMatch("b-2", "tennis", base.Add(time.Hour)))
	s.Add(storeMatch("a-1", "football", base))
	s.Add(storeMatch("a-2", "football", base))

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "a-1", list[0].ID)
	assert.Equal(t, "a-2", list[1].ID)
	assert.Equal(t, "b-2", list[2].ID)
}

func TestMatchStore_BySportIsCaseInsensitive(t *testing.T) {
	s := NewMatchStore()
	s.Add(storeMatch("football-1", "Football", time.Now()))

	assert.Len(t, s.BySport("football"), 1)
	assert.Len(t, s.BySport("FOOTBALL"), 1)
	assert.Empty(t, s.BySport("tennis"))
}

func TestMatchStore_ByDay(t *testing.T) {
	s := NewMatchStore()
	s.Add(storeMatch("a-1", "football", time.Date(2026, 8, 28, 23, 30, 0, 0, time.UTC)))
	s.Add(storeMatch("a-2", "football", time.Date(2026, 8, 29, 0, 30, 0, 0, time.UTC)))

	today := s.ByDay("2026-08-28")
	require.Len(t, today, 1)
	assert.Equal(t, "a-1", today[0].ID)
}

func TestMatchStore_UpdateMissing(t *testing.T) {
	s := NewMatchStore()
	assert.False(t, s.Update(storeMatch("nope-1", "football", time.Now())))
}

func TestMatchStore_Delete(t *testing.T) {
	s := NewMatchStore()
	s.Add(storeMatch("football-1", "football", time.Now()))

	assert.True(t, s.Delete("football-1"))
	assert.False(t, s.Delete("football-1"))
	assert.Equal(t, 0, s.Len())
}

func TestMatchStore_ReplaceSkipsInvalid(t *testing.T) {
	s := NewMatchStore()
	s.Add(storeMatch("old-1", "football", time.Now()))

	s.Replace([]*Match{
		storeMatch("new-1", "tennis", time.Now()),
		nil,
		{Sport: "no-id"},
	})

	assert.Equal(t, 1, s.Len())
	_, ok := s.ByID("new-1")
	assert.True(t, ok)
	_, ok = s.ByID("old-1")
	assert.False(t, ok)
}

func TestMatchStore_PruneBefore(t *testing.T) {
	s := NewMatchStore()
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	s.Add(storeMatch("old-1", "football", now.AddDate(0, 0, -3)))
	s.Add(storeMatch("new-1", "football", now))

	removed := s.PruneBefore(now.AddDate(0, 0, -2))
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, s.Len())
	_, ok := s.ByID("new-1")
	assert.True(t, ok)
}

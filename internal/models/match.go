package models

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
)

const (
	StatusUpcoming = "upcoming"
	StatusLive     = "live"
	StatusFinished = "finished"

	// liveWindow is how long after kickoff a match counts as live.
	liveWindow = 3 * time.Hour
)

type Match struct {
	ID          string    `json:"id"`
	Sport       string    `json:"sport"`
	TeamA       string    `json:"teamA"`
	TeamB       string    `json:"teamB"`
	Competition string    `json:"competition"`
	Date        time.Time `json:"date"`
	EmbedURLs   []string  `json:"embedUrls"`
	TeamABadge  string    `json:"teamABadge"`
	TeamBBadge  string    `json:"teamBBadge"`
	Status      string    `json:"status"`
	Slug        string    `json:"slug"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DerivedStatus computes the display status from the kickoff time. Stored
// status is only the initial value; readers always derive.
func (m *Match) DerivedStatus(now time.Time) string {
	switch {
	case now.Before(m.Date):
		return StatusUpcoming
	case now.Before(m.Date.Add(liveWindow)):
		return StatusLive
	default:
		return StatusFinished
	}
}

func (m *Match) Clone() *Match {
	cp := *m
	if m.EmbedURLs != nil {
		cp.EmbedURLs = append([]string(nil), m.EmbedURLs...)
	}
	return &cp
}

// StringList accepts either a JSON string or an array of strings, the same
// leniency the admin payloads always had.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*l = nil
		} else {
			*l = StringList{single}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("embedUrls must be a string or an array of strings")
	}
	*l = StringList(many)
	return nil
}

// MatchInput is the create payload.
type MatchInput struct {
	Sport       string     `json:"sport" validate:"required"`
	TeamA       string     `json:"teamA" validate:"required"`
	TeamB       string     `json:"teamB" validate:"required"`
	Competition string     `json:"competition" validate:"required"`
	Date        string     `json:"date" validate:"required"`
	EmbedURLs   StringList `json:"embedUrls"`
	TeamABadge  string     `json:"teamABadge"`
	TeamBBadge  string     `json:"teamBBadge"`
}

// MatchUpdate is the partial update payload; nil fields are left untouched.
type MatchUpdate struct {
	Sport       *string     `json:"sport"`
	TeamA       *string     `json:"teamA"`
	TeamB       *string     `json:"teamB"`
	Competition *string     `json:"competition"`
	Date        *string     `json:"date"`
	EmbedURLs   *StringList `json:"embedUrls"`
	TeamABadge  *string     `json:"teamABadge"`
	TeamBBadge  *string     `json:"teamBBadge"`
}

// ParseMatchDate accepts RFC3339 or a bare date.
func ParseMatchDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04", s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dayKeyLayout, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

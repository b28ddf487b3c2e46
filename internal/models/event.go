package models

import (
	"sort"
	"time"
)

// WeekendFormat distinguishes standard and sprint event weekends
type WeekendFormat string

// Weekend formats
const (
	FormatStandard WeekendFormat = "standard"
	FormatSprint   WeekendFormat = "sprint"
)

// Event bundles everything the engine needs for one race weekend: the
// session fields materialized by the feature extractor, the standings
// snapshot used for priors, and the ground-truth qualifying order.
type Event struct {
	ID        string                     `json:"id" validate:"required"`
	Name      string                     `json:"name"`
	Round     int                        `json:"round" validate:"gte=0"`
	Start     time.Time                  `json:"start" validate:"required"`
	Sessions  map[SessionID]SessionField `json:"sessions"`
	Standings []StandingsRow             `json:"standings"`
	Entries   map[CompetitorID]TeamID    `json:"entries"`
	TeamTiers map[TeamID]Tier            `json:"team_tiers"`
	Result    map[CompetitorID]int       `json:"result"`
}

// SessionIDs returns the identifiers of all sessions present for the event
func (e *Event) SessionIDs() []SessionID {
	ids := make([]SessionID, 0, len(e.Sessions))
	for id := range e.Sessions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Competitors returns every competitor that appears in any session field
func (e *Event) Competitors() []CompetitorID {
	seen := map[CompetitorID]struct{}{}
	for _, field := range e.Sessions {
		for id := range field {
			seen[id] = struct{}{}
		}
	}
	ids := make([]CompetitorID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SortEventsByStart orders events chronologically in place
func SortEventsByStart(events []Event) {
	sort.Slice(events, func(i, j int) bool {
		if events[i].Start.Equal(events[j].Start) {
			return events[i].Round < events[j].Round
		}
		return events[i].Start.Before(events[j].Start)
	})
}

// Package models defines the shared domain types for the pace prediction engine.
package models

// CompetitorID identifies a competitor across a season
type CompetitorID string

// TeamID identifies an entrant team
type TeamID string

// Tier classifies a team's expected competitiveness
type Tier string

// Team tiers
const (
	TierTop        Tier = "top"
	TierMidfield   Tier = "midfield"
	TierBackmarker Tier = "backmarker"
)

// StandingsRow represents one competitor's line in the championship standings
type StandingsRow struct {
	CompetitorID CompetitorID `json:"competitor_id" validate:"required"`
	TeamID       TeamID       `json:"team_id" validate:"required"`
	Rank         int          `json:"rank" validate:"required,gt=0"`
	Points       float64      `json:"points" validate:"gte=0"`
	Seasons      int          `json:"seasons" validate:"gte=0"`
}

// IsRookie reports whether the competitor has no prior standings history
func (s StandingsRow) IsRookie() bool {
	return s.Seasons == 0
}

// CompetitorPrior is the initial pace belief for one competitor,
// built once per event from standings and tier inputs and never mutated
type CompetitorPrior struct {
	CompetitorID CompetitorID `json:"competitor_id"`
	TeamID       TeamID       `json:"team_id"`
	Mean         float64      `json:"mean"`
	Variance     float64      `json:"variance"`
	Tier         Tier         `json:"tier"`
}

// Belief is the current pace estimate for one competitor within an event.
// SessionIndex strictly advances as weekend sessions are folded in.
type Belief struct {
	CompetitorID CompetitorID `json:"competitor_id"`
	Mean         float64      `json:"mean"`
	Variance     float64      `json:"variance"`
	SessionIndex int          `json:"session_index"`
}

// Seed creates the session-zero belief from a prior
func (p CompetitorPrior) Seed() Belief {
	return Belief{
		CompetitorID: p.CompetitorID,
		Mean:         p.Mean,
		Variance:     p.Variance,
		SessionIndex: 0,
	}
}

// Package prior builds initial pace beliefs from championship standings
// and team tier information.
package prior

import (
	"fmt"

	"github.com/yourusername/gridpace/internal/config"
	"github.com/yourusername/gridpace/internal/models"
)

// Anchor ranks used when a rookie's team has no teammate with standings
// history to average over. Chosen for a 20-car grid.
var tierAnchorRank = map[models.Tier]int{
	models.TierTop:        2,
	models.TierMidfield:   9,
	models.TierBackmarker: 16,
}

// BuildPriors maps a standings snapshot to one CompetitorPrior per
// competitor appearing in session data. The transform is rank-linear:
// rank 1 receives TopMean and every further rank drops by RankStep, so
// higher mean = faster on the shared pace scale. Variance comes from the
// team tier table, shrunk for long-established entrants and inflated for
// rookies, who inherit their team's aggregate prior instead of an
// individual one. Pure function of its inputs.
func BuildPriors(
	standings []models.StandingsRow,
	entries map[models.CompetitorID]models.TeamID,
	tiers map[models.TeamID]models.Tier,
	competitors []models.CompetitorID,
	cfg config.PriorConfig,
) (map[models.CompetitorID]models.CompetitorPrior, error) {
	rows := make(map[models.CompetitorID]models.StandingsRow, len(standings))
	for _, row := range standings {
		rows[row.CompetitorID] = row
	}

	priors := make(map[models.CompetitorID]models.CompetitorPrior, len(competitors))
	for _, id := range competitors {
		row, hasRow := rows[id]
		if hasRow && !row.IsRookie() {
			priors[id] = establishedPrior(row, tiers, cfg)
			continue
		}

		teamID, err := resolveTeam(id, row, hasRow, entries)
		if err != nil {
			return nil, err
		}
		tier, ok := tiers[teamID]
		if !ok {
			return nil, fmt.Errorf("%w: competitor %s (team %s)", models.ErrMissingPriorInput, id, teamID)
		}
		priors[id] = rookiePrior(id, teamID, tier, rows, tiers, cfg)
	}

	return priors, nil
}

func establishedPrior(row models.StandingsRow, tiers map[models.TeamID]models.Tier, cfg config.PriorConfig) models.CompetitorPrior {
	tier := tiers[row.TeamID]
	variance := tierVariance(tier, cfg)
	if row.Seasons >= cfg.EstablishedAfter {
		variance *= cfg.EstablishedShrink
	}
	return models.CompetitorPrior{
		CompetitorID: row.CompetitorID,
		TeamID:       row.TeamID,
		Mean:         rankMean(row.Rank, cfg),
		Variance:     variance,
		Tier:         tier,
	}
}

// rookiePrior copies the team's aggregate prior: the average of teammates
// with standings history, or the tier anchor when no teammate has any.
func rookiePrior(
	id models.CompetitorID,
	teamID models.TeamID,
	tier models.Tier,
	rows map[models.CompetitorID]models.StandingsRow,
	tiers map[models.TeamID]models.Tier,
	cfg config.PriorConfig,
) models.CompetitorPrior {
	sum := 0.0
	count := 0
	for _, row := range rows {
		if row.TeamID == teamID && !row.IsRookie() {
			sum += rankMean(row.Rank, cfg)
			count++
		}
	}

	mean := rankMean(tierAnchorRank[tier], cfg)
	if count > 0 {
		mean = sum / float64(count)
	}

	return models.CompetitorPrior{
		CompetitorID: id,
		TeamID:       teamID,
		Mean:         mean,
		Variance:     tierVariance(tier, cfg) * cfg.RookieInflation,
		Tier:         tier,
	}
}

func resolveTeam(id models.CompetitorID, row models.StandingsRow, hasRow bool, entries map[models.CompetitorID]models.TeamID) (models.TeamID, error) {
	if hasRow && row.TeamID != "" {
		return row.TeamID, nil
	}
	if teamID, ok := entries[id]; ok {
		return teamID, nil
	}
	return "", fmt.Errorf("%w: competitor %s", models.ErrMissingPriorInput, id)
}

func rankMean(rank int, cfg config.PriorConfig) float64 {
	if rank < 1 {
		rank = 1
	}
	return cfg.TopMean - cfg.RankStep*float64(rank-1)
}

func tierVariance(tier models.Tier, cfg config.PriorConfig) float64 {
	if v, ok := cfg.TierVariance[string(tier)]; ok {
		return v
	}
	// Unknown tier gets the widest configured variance
	widest := 0.0
	for _, v := range cfg.TierVariance {
		if v > widest {
			widest = v
		}
	}
	return widest
}

package prior

import (
	"errors"
	"testing"

	"github.com/yourusername/gridpace/internal/config"
	"github.com/yourusername/gridpace/internal/models"
)

func testPriorConfig() config.PriorConfig {
	return config.PriorConfig{
		TopMean:  20.0,
		RankStep: 0.75,
		TierVariance: map[string]float64{
			"top":        9.0,
			"midfield":   16.0,
			"backmarker": 25.0,
		},
		RookieInflation:   1.5,
		EstablishedAfter:  3,
		EstablishedShrink: 0.8,
	}
}

func TestBuildPriorsRankTransform(t *testing.T) {
	standings := []models.StandingsRow{
		{CompetitorID: "1", TeamID: "red", Rank: 1, Points: 400, Seasons: 10},
		{CompetitorID: "4", TeamID: "orange", Rank: 2, Points: 380, Seasons: 6},
		{CompetitorID: "63", TeamID: "silver", Rank: 5, Points: 200, Seasons: 2},
	}
	tiers := map[models.TeamID]models.Tier{
		"red": models.TierTop, "orange": models.TierTop, "silver": models.TierMidfield,
	}

	priors, err := BuildPriors(standings, nil, tiers, []models.CompetitorID{"1", "4", "63"}, testPriorConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if priors["1"].Mean != 20.0 {
		t.Errorf("rank 1 should map to top mean, got %f", priors["1"].Mean)
	}
	if priors["4"].Mean != 19.25 {
		t.Errorf("rank 2 should drop by one step, got %f", priors["4"].Mean)
	}
	if priors["1"].Mean <= priors["4"].Mean || priors["4"].Mean <= priors["63"].Mean {
		t.Error("prior means must decrease monotonically with rank")
	}
}

func TestBuildPriorsEstablishedShrink(t *testing.T) {
	standings := []models.StandingsRow{
		{CompetitorID: "44", TeamID: "scarlet", Rank: 6, Seasons: 18},
		{CompetitorID: "12", TeamID: "scarlet", Rank: 7, Seasons: 1},
	}
	tiers := map[models.TeamID]models.Tier{"scarlet": models.TierMidfield}

	priors, err := BuildPriors(standings, nil, tiers, []models.CompetitorID{"44", "12"}, testPriorConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if priors["44"].Variance >= priors["12"].Variance {
		t.Errorf("established entrant should carry lower variance: %f vs %f",
			priors["44"].Variance, priors["12"].Variance)
	}
	if priors["44"].Variance != 16.0*0.8 {
		t.Errorf("expected shrunk variance 12.8, got %f", priors["44"].Variance)
	}
}

func TestBuildPriorsRookieInheritsTeamPrior(t *testing.T) {
	standings := []models.StandingsRow{
		{CompetitorID: "16", TeamID: "scarlet", Rank: 4, Seasons: 7},
		{CompetitorID: "90", TeamID: "scarlet", Rank: 15, Seasons: 0},
	}
	tiers := map[models.TeamID]models.Tier{"scarlet": models.TierMidfield}

	priors, err := BuildPriors(standings, nil, tiers, []models.CompetitorID{"16", "90"}, testPriorConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Rookie copies the teammate aggregate, not their own standings rank
	if priors["90"].Mean != priors["16"].Mean {
		t.Errorf("rookie should inherit team aggregate mean %f, got %f", priors["16"].Mean, priors["90"].Mean)
	}
	if priors["90"].Variance != 16.0*1.5 {
		t.Errorf("rookie variance should be inflated, got %f", priors["90"].Variance)
	}
}

func TestBuildPriorsRookieWithoutTeammateUsesTierAnchor(t *testing.T) {
	standings := []models.StandingsRow{}
	entries := map[models.CompetitorID]models.TeamID{"5": "sauber"}
	tiers := map[models.TeamID]models.Tier{"sauber": models.TierBackmarker}

	priors, err := BuildPriors(standings, entries, tiers, []models.CompetitorID{"5"}, testPriorConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := 20.0 - 0.75*float64(16-1)
	if priors["5"].Mean != want {
		t.Errorf("expected backmarker anchor mean %f, got %f", want, priors["5"].Mean)
	}
}

func TestBuildPriorsMissingInput(t *testing.T) {
	_, err := BuildPriors(nil, nil, nil, []models.CompetitorID{"99"}, testPriorConfig())
	if !errors.Is(err, models.ErrMissingPriorInput) {
		t.Fatalf("expected ErrMissingPriorInput, got %v", err)
	}

	// Team resolvable but tier table has no entry for it
	entries := map[models.CompetitorID]models.TeamID{"99": "mystery"}
	_, err = BuildPriors(nil, entries, map[models.TeamID]models.Tier{}, []models.CompetitorID{"99"}, testPriorConfig())
	if !errors.Is(err, models.ErrMissingPriorInput) {
		t.Fatalf("expected ErrMissingPriorInput for unresolvable tier, got %v", err)
	}
}

package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/gridpace/internal/config"
	"github.com/yourusername/gridpace/internal/models"
)

func testPredictorConfig(method string) config.PredictorConfig {
	return config.PredictorConfig{
		ScoringMethod:   method,
		RegulationState: "stable",
		MinCleanLaps:    3,
		VarianceFloor:   1e-9,
		TrustWeights: map[string]float64{
			"practice":          0.3,
			"sprint_qualifying": 0.8,
		},
		RegulationScale: map[string]float64{"stable": 1.0, "reset": 1.5},
		MetricWeights: map[string]float64{
			models.MetricSlowCorner:   0.2,
			models.MetricMediumCorner: 0.4,
			models.MetricHighCorner:   0.2,
			models.MetricStraight:     0.2,
		},
		Prior: config.PriorConfig{
			TopMean:  20.0,
			RankStep: 0.75,
			TierVariance: map[string]float64{
				"top": 9.0, "midfield": 16.0, "backmarker": 25.0,
			},
			RookieInflation:   1.5,
			EstablishedAfter:  3,
			EstablishedShrink: 0.8,
		},
		Evidence: config.EvidenceConfig{BaseVariance: 4.0, ReferenceLaps: 10},
	}
}

func metricsFor(session models.SessionID, pace float64) models.SessionMetrics {
	return models.SessionMetrics{
		SessionID: session,
		Type:      models.SessionPractice,
		CleanLaps: 12,
		Metrics: map[string]float64{
			models.MetricSlowCorner:   pace,
			models.MetricMediumCorner: pace,
			models.MetricHighCorner:   pace,
			models.MetricStraight:     pace,
		},
	}
}

// testEvent builds a standard weekend where the standings order is
// 1 > 44 > 90 but 90 shows dominant practice pace
func testEvent() models.Event {
	return models.Event{
		ID:    "2026_rd04",
		Name:  "Test Grand Prix",
		Round: 4,
		Start: time.Date(2026, 4, 19, 0, 0, 0, 0, time.UTC),
		Sessions: map[models.SessionID]models.SessionField{
			"FP1": {
				"1":  metricsFor("FP1", 10),
				"44": metricsFor("FP1", 9),
				"90": metricsFor("FP1", 30),
			},
			"FP2": {
				"1":  metricsFor("FP2", 10),
				"44": metricsFor("FP2", 9),
				"90": metricsFor("FP2", 30),
			},
			"FP3": {
				"1":  metricsFor("FP3", 10),
				"44": metricsFor("FP3", 9),
				"90": metricsFor("FP3", 30),
			},
		},
		Standings: []models.StandingsRow{
			{CompetitorID: "1", TeamID: "red", Rank: 1, Seasons: 10},
			{CompetitorID: "44", TeamID: "silver", Rank: 2, Seasons: 17},
			{CompetitorID: "90", TeamID: "green", Rank: 12, Seasons: 4},
		},
		TeamTiers: map[models.TeamID]models.Tier{
			"red": models.TierTop, "silver": models.TierTop, "green": models.TierMidfield,
		},
		Result: map[models.CompetitorID]int{"90": 1, "1": 2, "44": 3},
	}
}

func TestPriorOnlyReproducesStandingsOrder(t *testing.T) {
	runner, err := NewRunner(testPredictorConfig("prior_only"), nil)
	require.NoError(t, err)

	prediction, err := runner.PredictEvent(context.Background(), testEvent())
	require.NoError(t, err)

	assert.Equal(t, []models.CompetitorID{"1", "44", "90"}, prediction.Ranking,
		"prior_only must reproduce the prior ranking unchanged")
	for _, b := range prediction.Beliefs {
		assert.Equal(t, 3, b.SessionIndex, "sessions still advance the chain index")
	}
}

func TestEvidenceInformedRankingMovesOnEvidence(t *testing.T) {
	runner, err := NewRunner(testPredictorConfig("simple_weighted"), nil)
	require.NoError(t, err)

	prediction, err := runner.PredictEvent(context.Background(), testEvent())
	require.NoError(t, err)

	require.Equal(t, models.FormatStandard, prediction.Format)
	assert.Equal(t, models.CompetitorID("90"), prediction.Ranking[0],
		"three sessions of dominant evidence should outweigh a midfield prior")
}

func TestPredictEventSprintFormat(t *testing.T) {
	event := testEvent()
	event.Sessions = map[models.SessionID]models.SessionField{
		"FP1": event.Sessions["FP1"],
		"SQ": {
			"1":  metricsFor("SQ", 10),
			"44": metricsFor("SQ", 9),
			"90": metricsFor("SQ", 30),
		},
	}

	runner, err := NewRunner(testPredictorConfig("zscore_normalized"), nil)
	require.NoError(t, err)

	prediction, err := runner.PredictEvent(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, models.FormatSprint, prediction.Format)
}

func TestPredictEventMissingPriorInput(t *testing.T) {
	event := testEvent()
	event.Standings = event.Standings[:2] // competitor 90 unresolvable
	event.Entries = nil

	runner, err := NewRunner(testPredictorConfig("simple_weighted"), nil)
	require.NoError(t, err)

	_, err = runner.PredictEvent(context.Background(), event)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrMissingPriorInput)
}

func TestWithScaleDoesNotMutateOriginal(t *testing.T) {
	runner, err := NewRunner(testPredictorConfig("simple_weighted"), nil)
	require.NoError(t, err)

	scaled := runner.WithScale(2.0)
	assert.Equal(t, 1.0, runner.regulationScale)
	assert.Equal(t, 2.0, scaled.regulationScale)
}

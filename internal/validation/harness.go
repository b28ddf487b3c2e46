package validation

import (
	"context"
	"math"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/yourusername/gridpace/internal/config"
	"github.com/yourusername/gridpace/internal/logger"
	"github.com/yourusername/gridpace/internal/models"
	"github.com/yourusername/gridpace/internal/pipeline"
)

// Harness walks a season chronologically and scores predictions against
// qualifying results. Every event is predicted with hyperparameters fitted
// on strictly earlier events only, so no future information leaks into any
// per-event score.
type Harness struct {
	cfg    config.ValidationConfig
	log    *logrus.Logger
	runLog *logger.RunLogger
}

// Comparison pairs two validation results over the identical event set with
// the significance test on their per-event error differences.
type Comparison struct {
	Baseline  models.ValidationResult `json:"baseline"`
	Candidate models.ValidationResult `json:"candidate"`
	Test      TTestResult             `json:"test"`
}

// AblationResult records the accuracy impact of removing one metric category.
type AblationResult struct {
	Category string  `json:"category"`
	MAE      float64 `json:"mae"`
	Delta    float64 `json:"delta"`
}

// AblationReport holds the unablated reference run and one entry per
// metric category.
type AblationReport struct {
	Full       models.ValidationResult `json:"full"`
	Categories []AblationResult        `json:"categories"`
}

func NewHarness(cfg config.ValidationConfig, log *logrus.Logger) *Harness {
	if log == nil {
		log = logrus.New()
	}
	return &Harness{
		cfg:    cfg,
		log:    log,
		runLog: logger.NewRunLogger(log),
	}
}

type evalOutcome struct {
	score   *models.EventScore
	failure *models.EventError
}

// EvaluateSeason predicts every event in the season with the given method
// and scores each prediction against its qualifying result. Events with
// fewer than min_history strictly earlier events are skipped, and per-event
// failures are recorded without aborting the run.
func (h *Harness) EvaluateSeason(ctx context.Context, events []models.Event, method config.PredictorConfig) (models.ValidationResult, error) {
	runner, err := pipeline.NewRunner(method, h.log)
	if err != nil {
		return models.ValidationResult{}, err
	}

	ordered := append([]models.Event(nil), events...)
	models.SortEventsByStart(ordered)

	result := models.ValidationResult{
		ID:     uuid.New(),
		Method: method.ScoringMethod,
	}
	runID := result.ID.String()

	workers := h.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(ordered) {
		workers = len(ordered)
	}

	outcomes := make([]evalOutcome, len(ordered))
	indices := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				outcomes[i] = h.evaluateEvent(ctx, runner, ordered[:i], ordered[i], runID)
			}
		}()
	}

	for i := range ordered {
		select {
		case <-ctx.Done():
			close(indices)
			wg.Wait()
			return result, ctx.Err()
		case indices <- i:
		}
	}
	close(indices)
	wg.Wait()

	for _, out := range outcomes {
		if out.score != nil {
			result.Events = append(result.Events, *out.score)
		}
		if out.failure != nil {
			result.Failures = append(result.Failures, *out.failure)
		}
	}
	if len(result.Events) > 0 {
		result.AggregateMAE = stat.Mean(result.Errors(), nil)
	}
	return result, nil
}

func (h *Harness) evaluateEvent(ctx context.Context, runner *pipeline.Runner, train []models.Event, event models.Event, runID string) evalOutcome {
	if len(train) < h.cfg.MinHistory {
		failure := models.NewEventError(event.ID, models.ErrInsufficientHistory)
		h.runLog.LogEventSkipped(runID, event.ID, failure.Reason)
		return evalOutcome{failure: &failure}
	}

	scale := h.fitScale(ctx, runner, train)
	pred, err := runner.WithScale(scale).PredictEvent(ctx, event)
	if err != nil {
		failure := models.NewEventError(event.ID, err)
		h.runLog.LogEventSkipped(runID, event.ID, failure.Reason)
		return evalOutcome{failure: &failure}
	}

	mae, err := PositionMAE(pred.Ranking, event.Result)
	if err != nil {
		failure := models.NewEventError(event.ID, err)
		h.runLog.LogEventSkipped(runID, event.ID, failure.Reason)
		return evalOutcome{failure: &failure}
	}

	h.runLog.LogEventEvaluation(runID, event.ID, runner.Method(), len(train), mae, scale)
	return evalOutcome{score: &models.EventScore{
		EventID: event.ID,
		Format:  pred.Format,
		MAE:     mae,
	}}
}

// fitScale grid-searches the regulation trust scale over the training
// window and returns the value with the lowest mean error. Falls back to
// the configured scale when nothing in the window can be evaluated.
func (h *Harness) fitScale(ctx context.Context, runner *pipeline.Runner, train []models.Event) float64 {
	best := runner.Scale()
	bestMAE := math.Inf(1)

	for _, candidate := range h.cfg.ScaleGrid {
		scaled := runner.WithScale(candidate)
		var total float64
		var count int
		for _, event := range train {
			pred, err := scaled.PredictEvent(ctx, event)
			if err != nil {
				continue
			}
			mae, err := PositionMAE(pred.Ranking, event.Result)
			if err != nil {
				continue
			}
			total += mae
			count++
		}
		if count == 0 {
			continue
		}
		if mean := total / float64(count); mean < bestMAE {
			bestMAE = mean
			best = candidate
		}
	}
	return best
}

// Compare evaluates two scoring configurations over the identical season
// and tests whether their per-event errors differ. Only events that both
// runs scored successfully contribute pairs.
func (h *Harness) Compare(ctx context.Context, events []models.Event, baseline, candidate config.PredictorConfig) (*Comparison, error) {
	baseRes, err := h.EvaluateSeason(ctx, events, baseline)
	if err != nil {
		return nil, err
	}
	candRes, err := h.EvaluateSeason(ctx, events, candidate)
	if err != nil {
		return nil, err
	}

	candByEvent := make(map[string]float64, len(candRes.Events))
	for _, e := range candRes.Events {
		candByEvent[e.EventID] = e.MAE
	}

	var baseErrs, candErrs []float64
	for _, e := range baseRes.Events {
		candMAE, ok := candByEvent[e.EventID]
		if !ok {
			continue
		}
		baseErrs = append(baseErrs, e.MAE)
		candErrs = append(candErrs, candMAE)
	}

	test, err := PairedTTest(baseErrs, candErrs)
	if err != nil {
		return nil, err
	}
	return &Comparison{Baseline: baseRes, Candidate: candRes, Test: test}, nil
}

// Ablate reruns the season once per metric category with that category's
// weight zeroed and reports the aggregate error change against the full
// configuration. A positive delta means the category was contributing.
func (h *Harness) Ablate(ctx context.Context, events []models.Event, method config.PredictorConfig) (*AblationReport, error) {
	full, err := h.EvaluateSeason(ctx, events, method)
	if err != nil {
		return nil, err
	}

	report := &AblationReport{Full: full}
	for _, category := range models.MetricCategories {
		ablated := method
		ablated.MetricWeights = zeroCategory(method.MetricWeights, category)

		res, err := h.EvaluateSeason(ctx, events, ablated)
		if err != nil {
			return nil, err
		}
		res.Ablation = category

		report.Categories = append(report.Categories, AblationResult{
			Category: category,
			MAE:      res.AggregateMAE,
			Delta:    res.AggregateMAE - full.AggregateMAE,
		})
	}
	return report, nil
}

func zeroCategory(weights map[string]float64, category string) map[string]float64 {
	out := make(map[string]float64, len(weights))
	for k, v := range weights {
		out[k] = v
	}
	out[category] = 0
	return out
}

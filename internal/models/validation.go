package models

import "github.com/google/uuid"

// EventScore records one evaluated event's prediction error
type EventScore struct {
	EventID string        `json:"event_id"`
	Format  WeekendFormat `json:"format"`
	MAE     float64       `json:"mae"`
}

// ValidationResult is the immutable outcome of one validation pass over a
// season: chronological per-event errors plus any events that could not be
// evaluated. Results are only ever compared, never mutated.
type ValidationResult struct {
	ID           uuid.UUID    `json:"id"`
	Method       string       `json:"method"`
	Ablation     string       `json:"ablation,omitempty"`
	Events       []EventScore `json:"events"`
	Failures     []EventError `json:"failures,omitempty"`
	AggregateMAE float64      `json:"aggregate_mae"`
}

// Errors returns the per-event absolute errors in chronological order
func (r ValidationResult) Errors() []float64 {
	errs := make([]float64, len(r.Events))
	for i, e := range r.Events {
		errs[i] = e.MAE
	}
	return errs
}

// SegmentMAE aggregates MAE separately per weekend format
func (r ValidationResult) SegmentMAE() map[WeekendFormat]float64 {
	sums := map[WeekendFormat]float64{}
	counts := map[WeekendFormat]int{}
	for _, e := range r.Events {
		sums[e.Format] += e.MAE
		counts[e.Format]++
	}
	out := make(map[WeekendFormat]float64, len(sums))
	for format, sum := range sums {
		out[format] = sum / float64(counts[format])
	}
	return out
}

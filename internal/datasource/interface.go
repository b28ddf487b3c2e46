// Package datasource provides access to the materialized inputs the engine
// consumes: session metric bundles from the feature extractor, standings
// snapshots and ground-truth qualifying results. It does no telemetry
// processing of its own.
package datasource

import (
	"context"

	"github.com/yourusername/gridpace/internal/models"
)

// Provider fetches fully materialized event bundles. Implementations must
// be safe for concurrent use; the validation harness fans out across events.
type Provider interface {
	// Events retrieves every event of the season in provider order
	Events(ctx context.Context) ([]models.Event, error)

	// Event retrieves a single event bundle by identifier
	Event(ctx context.Context, eventID string) (*models.Event, error)

	// Name returns the name of the provider
	Name() string
}

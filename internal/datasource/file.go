package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/yourusername/gridpace/internal/models"
)

// FileProvider reads a season bundle the extractor materialized as JSON
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider backed by a season JSON file
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Name returns the provider name
func (f *FileProvider) Name() string {
	return "file"
}

// Events loads and decodes the whole season bundle
func (f *FileProvider) Events(ctx context.Context) ([]models.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read season bundle %s: %w", f.path, err)
	}

	var events []models.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("failed to decode season bundle %s: %w", f.path, err)
	}

	return events, nil
}

// Event returns one event from the bundle by identifier
func (f *FileProvider) Event(ctx context.Context, eventID string) (*models.Event, error) {
	events, err := f.Events(ctx)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].ID == eventID {
			return &events[i], nil
		}
	}
	return nil, fmt.Errorf("event %s not found in %s", eventID, f.path)
}

package store

import (
	"context"

	"github.com/inkwell-data/policyscan/internal/model"
)

// Store persists extraction runs.
type Store interface {
	CreateRun(ctx context.Context, result *model.ExtractionResult) (*model.Run, error)
	GetRun(ctx context.Context, runID string) (*model.Run, error)
	ListRuns(ctx context.Context, filter model.RunFilter) ([]model.Run, error)

	Migrate(ctx context.Context) error
	Close() error
}

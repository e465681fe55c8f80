package mock

import (
	"context"

	"github.com/fwojciec/goyax"
)

var _ goyax.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of goyax.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn   func(ctx context.Context, snapshot *goyax.Snapshot) error
	FindSnapshotByIDFn func(ctx context.Context, id string) (*goyax.Snapshot, error)
	FindSnapshotsFn    func(ctx context.Context, filter goyax.SnapshotFilter) ([]*goyax.Snapshot, error)
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, snapshot *goyax.Snapshot) error {
	return s.CreateSnapshotFn(ctx, snapshot)
}

func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*goyax.Snapshot, error) {
	return s.FindSnapshotByIDFn(ctx, id)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter goyax.SnapshotFilter) ([]*goyax.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}

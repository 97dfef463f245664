package domain

import (
	"context"

	"github.com/csops-dev/csops/domain/model"
)

// HistoryRepository stores and retrieves reconcile run records.
type HistoryRepository interface {
	Append(ctx context.Context, run *model.ReconcileRun) error
	List(ctx context.Context, opts ...model.HistoryListOption) ([]*model.ReconcileRun, error)
}

package history

import (
	"context"

	"github.com/csops-dev/csops/domain/model"
)

// ListInput filters the reconcile run history.
type ListInput struct {
	Kind  string `json:"kind,omitempty"`
	Name  string `json:"name,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

// ListOutput wraps the matching runs, most recent first.
type ListOutput struct {
	Runs []*model.ReconcileRun `json:"runs"`
}

// List retrieves past reconcile runs.
func (u *UseCase) List(ctx context.Context, in *ListInput) (*ListOutput, error) {
	var opts []model.HistoryListOption
	if in != nil {
		if in.Kind != "" {
			opts = append(opts, model.WithHistoryKind(in.Kind))
		}
		if in.Name != "" {
			opts = append(opts, model.WithHistoryName(in.Name))
		}
		if in.Limit > 0 {
			opts = append(opts, model.WithHistoryLimit(in.Limit))
		}
	}
	runs, err := u.Repos.History.List(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Runs: runs}, nil
}

package history

import (
	"context"
	"errors"
	"time"

	"github.com/csops-dev/csops/domain/model"
)

// RecordInput describes one reconcile outcome to persist.
type RecordInput struct {
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	State   string `json:"state"`
	Changed bool   `json:"changed"`
	Failed  bool   `json:"failed"`
	DryRun  bool   `json:"dry_run"`
	Msg     string `json:"msg,omitempty"`
}

// RecordOutput wraps the persisted run.
type RecordOutput struct {
	Run *model.ReconcileRun `json:"run"`
}

// Record persists one reconcile outcome.
func (u *UseCase) Record(ctx context.Context, in *RecordInput) (*RecordOutput, error) {
	if in == nil || in.Kind == "" {
		return nil, errors.New("history record requires a resource kind")
	}
	run := &model.ReconcileRun{
		Kind:      in.Kind,
		Name:      in.Name,
		State:     in.State,
		Changed:   in.Changed,
		Failed:    in.Failed,
		DryRun:    in.DryRun,
		Msg:       in.Msg,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.Repos.History.Append(ctx, run); err != nil {
		return nil, err
	}
	return &RecordOutput{Run: run}, nil
}

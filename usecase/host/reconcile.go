package host

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/csops-dev/csops/domain/model"
	"github.com/csops-dev/csops/internal/diff"
	"github.com/csops-dev/csops/internal/logging"
)

// Reconcile converges the remote host toward the declared state in a single
// fetch -> diff -> apply -> verify pass, without retry. Only the resource
// state of an existing host is ever compared: the API does not echo the
// connection credentials back, and a host cannot move to another pod.
func (u *UseCase) Reconcile(ctx context.Context, in *ReconcileInput) (*ReconcileOutput, error) {
	logger := logging.FromContext(ctx)

	state, err := normalizeState(in.State)
	if err != nil {
		return nil, err
	}
	if state == StateAbsent && in.Name == "" {
		return nil, &model.MissingArgsError{Args: []string{"name"}}
	}

	var current *model.Host
	if in.Name != "" || in.ID != "" {
		current, err = u.Ports.Host.Get(ctx, in.Name, in.ID)
		if err != nil && !errors.Is(err, model.ErrHostNotFound) {
			return nil, &model.FetchError{Kind: "host", Name: in.Name, Err: err}
		}
	}
	exists := current != nil

	desired := desiredHost(in, state)
	var fields []string
	if exists {
		fields = diff.Changed([]diff.Field{
			{Key: "state", Desired: desired.State, Current: current.State},
		})
	}
	plan := diff.Resolve(exists, state == StateAbsent, fields)
	logger.Debug(ctx, "host plan", "name", in.Name, "op", string(plan.Op), "fields", plan.Fields)

	changed := plan.Op != diff.OpNone
	snapshot := current

	// Registration requirements hold in dry runs too: a declaration that
	// could never be applied must fail, not predict a change.
	if plan.Op == diff.OpCreate {
		if missing := missingCreateArgs(in); len(missing) > 0 {
			return nil, &model.MissingArgsError{Args: missing}
		}
	}

	if in.DryRun {
		return &ReconcileOutput{Result: resultFromHost(in, predictHost(plan, current, desired), changed)}, nil
	}

	switch plan.Op {
	case diff.OpCreate:
		h, err := u.Ports.Host.Create(ctx, desired)
		if err != nil {
			return nil, &model.ApplyError{Kind: "host", Name: in.Name, Op: "create", Err: err}
		}
		snapshot = h
	case diff.OpUpdate:
		h, err := u.Ports.Host.Update(ctx, current.ID, desired, plan.Fields)
		if err != nil {
			return nil, &model.ApplyError{Kind: "host", Name: in.Name, Op: "update", Err: err}
		}
		snapshot = h
	case diff.OpDelete:
		if err := u.Ports.Host.Delete(ctx, current.ID); err != nil {
			return nil, &model.ApplyError{Kind: "host", Name: in.Name, Op: "delete", Err: err}
		}
		snapshot = current
	}

	return &ReconcileOutput{Result: resultFromHost(in, snapshot, changed)}, nil
}

// normalizeState resolves the requested state, defaulting to enabled.
func normalizeState(s string) (string, error) {
	switch strings.ToLower(s) {
	case "", StateEnabled:
		return StateEnabled, nil
	case StateDisabled:
		return StateDisabled, nil
	case StateAbsent:
		return StateAbsent, nil
	default:
		return "", fmt.Errorf("state must be one of enabled, disabled, absent: got %q", s)
	}
}

// desiredHost assembles the declared attribute set with the API casing for
// the resource state.
func desiredHost(in *ReconcileInput, state string) *model.Host {
	hostState := model.HostStateEnabled
	if state == StateDisabled {
		hostState = model.HostStateDisabled
	}
	return &model.Host{
		Name:       in.Name,
		Pod:        in.Pod,
		Zone:       in.Zone,
		Hypervisor: in.Hypervisor,
		URL:        in.URL,
		Username:   in.Username,
		Password:   in.Password,
		State:      hostState,
	}
}

// missingCreateArgs lists creation-required attributes that were not
// declared, in the documented order.
func missingCreateArgs(in *ReconcileInput) []string {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Pod == "" {
		missing = append(missing, "pod")
	}
	if in.URL == "" {
		missing = append(missing, "url")
	}
	if in.Username == "" {
		missing = append(missing, "username")
	}
	if in.Password == "" {
		missing = append(missing, "password")
	}
	return missing
}

// predictHost builds the snapshot a dry run reports.
func predictHost(plan diff.Plan, current, desired *model.Host) *model.Host {
	switch plan.Op {
	case diff.OpCreate:
		h := *desired
		return &h
	case diff.OpUpdate:
		h := *current
		for _, f := range plan.Fields {
			if f == "state" {
				h.State = desired.State
			}
		}
		return &h
	default:
		return current
	}
}

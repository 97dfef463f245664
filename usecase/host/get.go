package host

import (
	"context"
	"errors"

	"github.com/csops-dev/csops/domain/model"
)

// Get fetches the current host representation without reconciling.
func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || (in.Name == "" && in.ID == "") {
		return nil, &model.MissingArgsError{Args: []string{"name"}}
	}
	h, err := u.Ports.Host.Get(ctx, in.Name, in.ID)
	if err != nil {
		if errors.Is(err, model.ErrHostNotFound) {
			return nil, err
		}
		return nil, &model.FetchError{Kind: "host", Name: in.Name, Err: err}
	}
	return &GetOutput{Host: h}, nil
}

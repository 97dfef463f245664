package zone

import (
	"context"
	"errors"

	"github.com/csops-dev/csops/domain/model"
)

// Get fetches the current zone representation without reconciling.
func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || (in.Name == "" && in.ID == "") {
		return nil, &model.MissingArgsError{Args: []string{"name"}}
	}
	z, err := u.Ports.Zone.Get(ctx, in.Name, in.ID)
	if err != nil {
		if errors.Is(err, model.ErrZoneNotFound) {
			return nil, err
		}
		return nil, &model.FetchError{Kind: "zone", Name: in.Name, Err: err}
	}
	return &GetOutput{Zone: z}, nil
}

package model

import "context"

// ZonePort is an interface (domain port) for zone state on the cloud API.
//
// Get looks up a zone by id when given, by name otherwise, and returns
// ErrZoneNotFound when no such zone exists. Create and Update return the
// post-apply representation reported by the API. Update applies only the
// attributes named in fields, taking their values from desired.
type ZonePort interface {
	Get(ctx context.Context, name, id string) (*Zone, error)
	Create(ctx context.Context, desired *Zone) (*Zone, error)
	Update(ctx context.Context, id string, desired *Zone, fields []string) (*Zone, error)
	Delete(ctx context.Context, id string) error
}

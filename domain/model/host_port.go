package model

import "context"

// HostPort is an interface (domain port) for host state on the cloud API.
//
// Get looks up a host by id when given, by name otherwise, and returns
// ErrHostNotFound when no such host exists. Create and Update return the
// post-apply representation reported by the API. Update applies only the
// attributes named in fields, taking their values from desired.
type HostPort interface {
	Get(ctx context.Context, name, id string) (*Host, error)
	Create(ctx context.Context, desired *Host) (*Host, error)
	Update(ctx context.Context, id string, desired *Host, fields []string) (*Host, error)
	Delete(ctx context.Context, id string) error
}

package zone

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/csops-dev/csops/domain/model"
	"github.com/csops-dev/csops/internal/diff"
	"github.com/csops-dev/csops/internal/logging"
)

// Reconcile converges the remote zone toward the declared state in a single
// fetch -> diff -> apply -> verify pass. There is no retry; callers converge
// by invoking again. The returned record carries changed=true only when an
// apply step completed successfully.
func (u *UseCase) Reconcile(ctx context.Context, in *ReconcileInput) (*ReconcileOutput, error) {
	logger := logging.FromContext(ctx)

	state, err := normalizeState(in.State)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, &model.MissingArgsError{Args: []string{"name"}}
	}
	networkType, err := normalizeNetworkType(in.NetworkType)
	if err != nil {
		return nil, err
	}

	current, err := u.Ports.Zone.Get(ctx, in.Name, in.ID)
	if err != nil && !errors.Is(err, model.ErrZoneNotFound) {
		return nil, &model.FetchError{Kind: "zone", Name: in.Name, Err: err}
	}
	exists := current != nil

	desired := desiredZone(in, state, networkType)
	var fields []string
	if exists {
		fields = diff.Changed(zoneFields(desired, current))
	}
	plan := diff.Resolve(exists, state == StateAbsent, fields)
	logger.Debug(ctx, "zone plan", "name", in.Name, "op", string(plan.Op), "fields", plan.Fields)

	changed := plan.Op != diff.OpNone
	snapshot := current

	// Creation requirements hold in dry runs too: a declaration that could
	// never be applied must fail, not predict a change.
	if plan.Op == diff.OpCreate {
		if missing := missingCreateArgs(in); len(missing) > 0 {
			return nil, &model.MissingArgsError{Args: missing}
		}
	}

	if in.DryRun {
		return &ReconcileOutput{Result: resultFromZone(in, predictZone(plan, current, desired), changed)}, nil
	}

	switch plan.Op {
	case diff.OpCreate:
		z, err := u.Ports.Zone.Create(ctx, desired)
		if err != nil {
			return nil, &model.ApplyError{Kind: "zone", Name: in.Name, Op: "create", Err: err}
		}
		snapshot = z
	case diff.OpUpdate:
		z, err := u.Ports.Zone.Update(ctx, current.ID, desired, plan.Fields)
		if err != nil {
			return nil, &model.ApplyError{Kind: "zone", Name: in.Name, Op: "update", Err: err}
		}
		snapshot = z
	case diff.OpDelete:
		if err := u.Ports.Zone.Delete(ctx, current.ID); err != nil {
			return nil, &model.ApplyError{Kind: "zone", Name: in.Name, Op: "delete", Err: err}
		}
		snapshot = current
	}

	return &ReconcileOutput{Result: resultFromZone(in, snapshot, changed)}, nil
}

// normalizeState resolves the requested state, defaulting to present.
func normalizeState(s string) (string, error) {
	switch strings.ToLower(s) {
	case "", StatePresent:
		return StatePresent, nil
	case StateEnabled:
		return StateEnabled, nil
	case StateDisabled:
		return StateDisabled, nil
	case StateAbsent:
		return StateAbsent, nil
	default:
		return "", fmt.Errorf("state must be one of present, enabled, disabled, absent: got %q", s)
	}
}

// normalizeNetworkType maps any-case input onto the API casing.
func normalizeNetworkType(s string) (string, error) {
	switch strings.ToLower(s) {
	case "":
		return "", nil
	case "basic":
		return "Basic", nil
	case "advanced":
		return "Advanced", nil
	default:
		return "", fmt.Errorf("network_type must be basic or advanced: got %q", s)
	}
}

// desiredZone assembles the declared attribute set. Internal DNS entries fall
// back to the public ones, and the allocation state is set only for an
// explicit enable/disable request so that plain creates and updates never
// touch it.
func desiredZone(in *ReconcileInput, state, networkType string) *model.Zone {
	internalDNS1 := in.InternalDNS1
	if internalDNS1 == "" {
		internalDNS1 = in.DNS1
	}
	internalDNS2 := in.InternalDNS2
	if internalDNS2 == "" {
		internalDNS2 = in.DNS2
	}
	allocation := ""
	switch state {
	case StateEnabled:
		allocation = model.AllocationStateEnabled
	case StateDisabled:
		allocation = model.AllocationStateDisabled
	}
	return &model.Zone{
		Name:             in.Name,
		DNS1:             in.DNS1,
		DNS2:             in.DNS2,
		InternalDNS1:     internalDNS1,
		InternalDNS2:     internalDNS2,
		DNS1IPv6:         in.DNS1IPv6,
		DNS2IPv6:         in.DNS2IPv6,
		NetworkType:      networkType,
		NetworkDomain:    in.NetworkDomain,
		GuestCIDRAddress: in.GuestCIDRAddress,
		DHCPProvider:     in.DHCPProvider,
		AllocationState:  allocation,
	}
}

// zoneFields pairs declared and observed attributes for the diff engine, in
// declaration order.
func zoneFields(desired, current *model.Zone) []diff.Field {
	return []diff.Field{
		{Key: "dns1", Desired: desired.DNS1, Current: current.DNS1},
		{Key: "dns2", Desired: desired.DNS2, Current: current.DNS2},
		{Key: "internal_dns1", Desired: desired.InternalDNS1, Current: current.InternalDNS1},
		{Key: "internal_dns2", Desired: desired.InternalDNS2, Current: current.InternalDNS2},
		{Key: "dns1_ipv6", Desired: desired.DNS1IPv6, Current: current.DNS1IPv6},
		{Key: "dns2_ipv6", Desired: desired.DNS2IPv6, Current: current.DNS2IPv6},
		{Key: "network_type", Desired: desired.NetworkType, Current: current.NetworkType},
		{Key: "network_domain", Desired: desired.NetworkDomain, Current: current.NetworkDomain},
		{Key: "guest_cidr_address", Desired: desired.GuestCIDRAddress, Current: current.GuestCIDRAddress},
		{Key: "dhcp_provider", Desired: desired.DHCPProvider, Current: current.DHCPProvider},
		{Key: "allocation_state", Desired: desired.AllocationState, Current: current.AllocationState},
	}
}

// missingCreateArgs lists creation-required attributes that were not declared.
// Name is validated earlier, so only dns1 remains.
func missingCreateArgs(in *ReconcileInput) []string {
	var missing []string
	if in.DNS1 == "" {
		missing = append(missing, "dns1")
	}
	return missing
}

// predictZone builds the snapshot a dry run reports: what the zone would look
// like had the plan been applied.
func predictZone(plan diff.Plan, current, desired *model.Zone) *model.Zone {
	switch plan.Op {
	case diff.OpCreate:
		z := *desired
		if z.NetworkType == "" {
			z.NetworkType = "Basic"
		}
		if z.AllocationState == "" {
			z.AllocationState = model.AllocationStateDisabled
		}
		return &z
	case diff.OpUpdate:
		z := *current
		for _, f := range plan.Fields {
			switch f {
			case "dns1":
				z.DNS1 = desired.DNS1
			case "dns2":
				z.DNS2 = desired.DNS2
			case "internal_dns1":
				z.InternalDNS1 = desired.InternalDNS1
			case "internal_dns2":
				z.InternalDNS2 = desired.InternalDNS2
			case "dns1_ipv6":
				z.DNS1IPv6 = desired.DNS1IPv6
			case "dns2_ipv6":
				z.DNS2IPv6 = desired.DNS2IPv6
			case "network_type":
				z.NetworkType = desired.NetworkType
			case "network_domain":
				z.NetworkDomain = desired.NetworkDomain
			case "guest_cidr_address":
				z.GuestCIDRAddress = desired.GuestCIDRAddress
			case "dhcp_provider":
				z.DHCPProvider = desired.DHCPProvider
			case "allocation_state":
				z.AllocationState = desired.AllocationState
			}
		}
		return &z
	default:
		return current
	}
}

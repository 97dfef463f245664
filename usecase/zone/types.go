// Package zone implements the reconcile-and-report use cases for CloudStack
// zones: converge the remote zone toward a declared desired state and report
// the outcome with a changed flag.
package zone

import "github.com/csops-dev/csops/domain/model"

// Requested states accepted by Reconcile.
const (
	StatePresent  = "present"
	StateEnabled  = "enabled"
	StateDisabled = "disabled"
	StateAbsent   = "absent"
)

// Ports holds driver ports needed for zone use cases.
type Ports struct {
	Zone model.ZonePort
}

// UseCase wires driver ports needed for zone use cases.
type UseCase struct {
	Ports *Ports
}

// ReconcileInput is the declared desired state of one zone.
type ReconcileInput struct {
	// Name identifies the zone; required for every operation.
	Name string `json:"name" yaml:"name"`
	// ID optionally pins an existing zone by uuid instead of name lookup.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	DNS1         string `json:"dns1,omitempty" yaml:"dns1,omitempty"`
	DNS2         string `json:"dns2,omitempty" yaml:"dns2,omitempty"`
	InternalDNS1 string `json:"internal_dns1,omitempty" yaml:"internal_dns1,omitempty"`
	InternalDNS2 string `json:"internal_dns2,omitempty" yaml:"internal_dns2,omitempty"`
	DNS1IPv6     string `json:"dns1_ipv6,omitempty" yaml:"dns1_ipv6,omitempty"`
	DNS2IPv6     string `json:"dns2_ipv6,omitempty" yaml:"dns2_ipv6,omitempty"`
	// NetworkType is "basic" or "advanced", any case; defaults to basic on
	// creation when unset.
	NetworkType      string `json:"network_type,omitempty" yaml:"network_type,omitempty"`
	NetworkDomain    string `json:"network_domain,omitempty" yaml:"network_domain,omitempty"`
	GuestCIDRAddress string `json:"guest_cidr_address,omitempty" yaml:"guest_cidr_address,omitempty"`
	DHCPProvider     string `json:"dhcp_provider,omitempty" yaml:"dhcp_provider,omitempty"`

	// State is present (default), enabled, disabled or absent.
	State string `json:"state,omitempty" yaml:"state,omitempty"`

	// DryRun computes and reports the plan without applying it.
	DryRun bool `json:"-" yaml:"-"`
}

// Result is the reconcile record reported to the caller. Field names follow
// the stable output schema consumed by external harnesses.
type Result struct {
	ID                    string `json:"id,omitempty" yaml:"id,omitempty"`
	Name                  string `json:"name" yaml:"name"`
	DNS1                  string `json:"dns1,omitempty" yaml:"dns1,omitempty"`
	DNS2                  string `json:"dns2,omitempty" yaml:"dns2,omitempty"`
	InternalDNS1          string `json:"internal_dns1,omitempty" yaml:"internal_dns1,omitempty"`
	InternalDNS2          string `json:"internal_dns2,omitempty" yaml:"internal_dns2,omitempty"`
	DNS1IPv6              string `json:"dns1_ipv6,omitempty" yaml:"dns1_ipv6,omitempty"`
	DNS2IPv6              string `json:"dns2_ipv6,omitempty" yaml:"dns2_ipv6,omitempty"`
	NetworkType           string `json:"network_type,omitempty" yaml:"network_type,omitempty"`
	NetworkDomain         string `json:"network_domain,omitempty" yaml:"network_domain,omitempty"`
	GuestCIDRAddress      string `json:"guest_cidr_address,omitempty" yaml:"guest_cidr_address,omitempty"`
	DHCPProvider          string `json:"dhcp_provider,omitempty" yaml:"dhcp_provider,omitempty"`
	AllocationState       string `json:"allocation_state,omitempty" yaml:"allocation_state,omitempty"`
	LocalStorageEnabled   bool   `json:"local_storage_enabled" yaml:"local_storage_enabled"`
	SecurityGroupsEnabled bool   `json:"securitygroups_enabled" yaml:"securitygroups_enabled"`
	ZoneToken             string `json:"zone_token,omitempty" yaml:"zone_token,omitempty"`
	Changed               bool   `json:"changed" yaml:"changed"`
	Failed                bool   `json:"failed,omitempty" yaml:"failed,omitempty"`
	Msg                   string `json:"msg,omitempty" yaml:"msg,omitempty"`
}

// ReconcileOutput wraps the reconcile record.
type ReconcileOutput struct {
	Result *Result `json:"result"`
}

// GetInput identifies the zone to fetch.
type GetInput struct {
	Name string `json:"name"`
	ID   string `json:"id,omitempty"`
}

// GetOutput wraps the fetched zone.
type GetOutput struct {
	Zone *model.Zone `json:"zone"`
}

// resultFromZone builds the output record from a resource snapshot. A nil
// snapshot (resource absent and left absent) echoes just the declared name.
func resultFromZone(in *ReconcileInput, z *model.Zone, changed bool) *Result {
	if z == nil {
		return &Result{Name: in.Name, Changed: changed}
	}
	return &Result{
		ID:                    z.ID,
		Name:                  z.Name,
		DNS1:                  z.DNS1,
		DNS2:                  z.DNS2,
		InternalDNS1:          z.InternalDNS1,
		InternalDNS2:          z.InternalDNS2,
		DNS1IPv6:              z.DNS1IPv6,
		DNS2IPv6:              z.DNS2IPv6,
		NetworkType:           z.NetworkType,
		NetworkDomain:         z.NetworkDomain,
		GuestCIDRAddress:      z.GuestCIDRAddress,
		DHCPProvider:          z.DHCPProvider,
		AllocationState:       z.AllocationState,
		LocalStorageEnabled:   z.LocalStorageEnabled,
		SecurityGroupsEnabled: z.SecurityGroupsEnabled,
		ZoneToken:             z.ZoneToken,
		Changed:               changed,
	}
}

// FailureResult builds the failure record for a reconcile that aborted.
func FailureResult(in *ReconcileInput, err error) *Result {
	name := ""
	if in != nil {
		name = in.Name
	}
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &Result{Name: name, Failed: true, Msg: msg}
}

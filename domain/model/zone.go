package model

// Zone allocation states as reported by the CloudStack API.
const (
	AllocationStateEnabled  = "Enabled"
	AllocationStateDisabled = "Disabled"
)

// Zone represents a CloudStack zone as observed through the API.
type Zone struct {
	ID               string `json:"id" yaml:"id"`
	Name             string `json:"name" yaml:"name"`
	DNS1             string `json:"dns1,omitempty" yaml:"dns1,omitempty"`
	DNS2             string `json:"dns2,omitempty" yaml:"dns2,omitempty"`
	InternalDNS1     string `json:"internal_dns1,omitempty" yaml:"internal_dns1,omitempty"`
	InternalDNS2     string `json:"internal_dns2,omitempty" yaml:"internal_dns2,omitempty"`
	DNS1IPv6         string `json:"dns1_ipv6,omitempty" yaml:"dns1_ipv6,omitempty"`
	DNS2IPv6         string `json:"dns2_ipv6,omitempty" yaml:"dns2_ipv6,omitempty"`
	NetworkType      string `json:"network_type,omitempty" yaml:"network_type,omitempty"` // "Basic" or "Advanced"
	NetworkDomain    string `json:"network_domain,omitempty" yaml:"network_domain,omitempty"`
	GuestCIDRAddress string `json:"guest_cidr_address,omitempty" yaml:"guest_cidr_address,omitempty"`
	DHCPProvider     string `json:"dhcp_provider,omitempty" yaml:"dhcp_provider,omitempty"`
	// AllocationState is "Enabled" or "Disabled". New zones come up Disabled
	// until explicitly enabled.
	AllocationState       string `json:"allocation_state,omitempty" yaml:"allocation_state,omitempty"`
	LocalStorageEnabled   bool   `json:"local_storage_enabled" yaml:"local_storage_enabled"`
	SecurityGroupsEnabled bool   `json:"securitygroups_enabled" yaml:"securitygroups_enabled"`
	ZoneToken             string `json:"zone_token,omitempty" yaml:"zone_token,omitempty"`
}

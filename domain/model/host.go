package model

// Host resource states as reported by the CloudStack API.
const (
	HostStateEnabled  = "Enabled"
	HostStateDisabled = "Disabled"
)

// Host represents a CloudStack host as observed through the API.
//
// Username and Password are write-only: the API accepts them on creation but
// never echoes them back, so they are empty on entities returned by a port Get.
type Host struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Pod        string `json:"pod,omitempty" yaml:"pod,omitempty"`
	Zone       string `json:"zone,omitempty" yaml:"zone,omitempty"`
	Hypervisor string `json:"hypervisor,omitempty" yaml:"hypervisor,omitempty"`
	URL        string `json:"url,omitempty" yaml:"url,omitempty"`
	Username   string `json:"username,omitempty" yaml:"username,omitempty"`
	Password   string `json:"password,omitempty" yaml:"password,omitempty"`
	IPAddress  string `json:"ip_address,omitempty" yaml:"ip_address,omitempty"`
	// State is the resource state, "Enabled" or "Disabled". New hosts come up
	// Enabled.
	State string `json:"state,omitempty" yaml:"state,omitempty"`
}

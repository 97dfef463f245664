// Package host implements the reconcile-and-report use cases for CloudStack
// hosts: converge the remote host toward a declared desired state and report
// the outcome with a changed flag.
package host

import "github.com/csops-dev/csops/domain/model"

// Requested states accepted by Reconcile. Hosts have no bare "present": an
// existing host is always either enabled or disabled, and enabled is the
// default.
const (
	StateEnabled  = "enabled"
	StateDisabled = "disabled"
	StateAbsent   = "absent"
)

// Ports holds driver ports needed for host use cases.
type Ports struct {
	Host model.HostPort
}

// UseCase wires driver ports needed for host use cases.
type UseCase struct {
	Ports *Ports
}

// ReconcileInput is the declared desired state of one host.
type ReconcileInput struct {
	// Name identifies the host; required for every operation.
	Name string `json:"name" yaml:"name"`
	// ID optionally pins an existing host by uuid instead of name lookup.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Pod, URL, Username and Password are required together on creation.
	Pod      string `json:"pod,omitempty" yaml:"pod,omitempty"`
	URL      string `json:"url,omitempty" yaml:"url,omitempty"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	Password string `json:"password,omitempty" yaml:"password,omitempty"`

	// Zone and Hypervisor are needed by the CloudStack API on creation; the
	// cloudstack driver can also take them from its settings.
	Zone       string `json:"zone,omitempty" yaml:"zone,omitempty"`
	Hypervisor string `json:"hypervisor,omitempty" yaml:"hypervisor,omitempty"`

	// State is enabled (default), disabled or absent.
	State string `json:"state,omitempty" yaml:"state,omitempty"`

	// DryRun computes and reports the plan without applying it.
	DryRun bool `json:"-" yaml:"-"`
}

// Result is the reconcile record reported to the caller. URL, username and
// password are echoed from the input because the API never returns them.
type Result struct {
	ID         string `json:"id,omitempty" yaml:"id,omitempty"`
	Name       string `json:"name" yaml:"name"`
	Pod        string `json:"pod,omitempty" yaml:"pod,omitempty"`
	Zone       string `json:"zone,omitempty" yaml:"zone,omitempty"`
	Hypervisor string `json:"hypervisor,omitempty" yaml:"hypervisor,omitempty"`
	URL        string `json:"url,omitempty" yaml:"url,omitempty"`
	Username   string `json:"username,omitempty" yaml:"username,omitempty"`
	Password   string `json:"password,omitempty" yaml:"password,omitempty"`
	IPAddress  string `json:"ip_address,omitempty" yaml:"ip_address,omitempty"`
	State      string `json:"state,omitempty" yaml:"state,omitempty"`
	Changed    bool   `json:"changed" yaml:"changed"`
	Failed     bool   `json:"failed,omitempty" yaml:"failed,omitempty"`
	Msg        string `json:"msg,omitempty" yaml:"msg,omitempty"`
}

// ReconcileOutput wraps the reconcile record.
type ReconcileOutput struct {
	Result *Result `json:"result"`
}

// GetInput identifies the host to fetch.
type GetInput struct {
	Name string `json:"name"`
	ID   string `json:"id,omitempty"`
}

// GetOutput wraps the fetched host.
type GetOutput struct {
	Host *model.Host `json:"host"`
}

// resultFromHost builds the output record from a resource snapshot, echoing
// write-only attributes from the input. A nil snapshot (host absent and left
// absent) echoes just the declared name.
func resultFromHost(in *ReconcileInput, h *model.Host, changed bool) *Result {
	if h == nil {
		return &Result{Name: in.Name, Changed: changed}
	}
	r := &Result{
		ID:         h.ID,
		Name:       h.Name,
		Pod:        h.Pod,
		Zone:       h.Zone,
		Hypervisor: h.Hypervisor,
		URL:        h.URL,
		Username:   h.Username,
		Password:   h.Password,
		IPAddress:  h.IPAddress,
		State:      h.State,
		Changed:    changed,
	}
	if r.URL == "" {
		r.URL = in.URL
	}
	if r.Username == "" {
		r.Username = in.Username
	}
	if r.Password == "" {
		r.Password = in.Password
	}
	return r
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

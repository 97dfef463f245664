package cloudstack

import (
	"context"
	"fmt"

	"github.com/apache/cloudstack-go/v2/cloudstack"

	"github.com/csops-dev/csops/domain/model"
)

// hostPort implements model.HostPort against the CloudStack host API.
// Zone and hypervisor for host registration fall back to the driver settings
// when the desired host does not carry them.
type hostPort struct {
	cs       *cloudstack.CloudStackClient
	settings map[string]string
}

func (p *hostPort) Get(_ context.Context, name, id string) (*model.Host, error) {
	params := p.cs.Host.NewListHostsParams()
	if id != "" {
		params.SetId(id)
	} else {
		params.SetName(name)
	}
	resp, err := p.cs.Host.ListHosts(params)
	if err != nil {
		return nil, err
	}
	if resp.Count == 0 || len(resp.Hosts) == 0 {
		return nil, model.ErrHostNotFound
	}
	h := resp.Hosts[0]
	return &model.Host{
		ID:         h.Id,
		Name:       h.Name,
		Pod:        h.Podname,
		Zone:       h.Zonename,
		Hypervisor: h.Hypervisor,
		IPAddress:  h.Ipaddress,
		State:      h.Resourcestate,
	}, nil
}

func (p *hostPort) Create(ctx context.Context, desired *model.Host) (*model.Host, error) {
	zoneName := desired.Zone
	if zoneName == "" {
		zoneName = p.settings["zone"]
	}
	if zoneName == "" {
		return nil, fmt.Errorf("host registration requires a zone (input or driver settings)")
	}
	hypervisor := desired.Hypervisor
	if hypervisor == "" {
		hypervisor = p.settings["hypervisor"]
	}
	if hypervisor == "" {
		return nil, fmt.Errorf("host registration requires a hypervisor (input or driver settings)")
	}

	zoneID, _, err := p.cs.Zone.GetZoneID(zoneName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve zone %s: %w", zoneName, err)
	}
	podParams := p.cs.Pod.NewListPodsParams()
	podParams.SetName(desired.Pod)
	podParams.SetZoneid(zoneID)
	pods, err := p.cs.Pod.ListPods(podParams)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve pod %s: %w", desired.Pod, err)
	}
	if pods.Count == 0 || len(pods.Pods) == 0 {
		return nil, fmt.Errorf("pod %s not found in zone %s", desired.Pod, zoneName)
	}

	params := p.cs.Host.NewAddHostParams(hypervisor, pods.Pods[0].Id, desired.URL, zoneID)
	params.SetUsername(desired.Username)
	params.SetPassword(desired.Password)
	resp, err := p.cs.Host.AddHost(params)
	if err != nil {
		return nil, err
	}
	created := &model.Host{
		ID:         resp.Id,
		Name:       resp.Name,
		Pod:        resp.Podname,
		Zone:       resp.Zonename,
		Hypervisor: resp.Hypervisor,
		IPAddress:  resp.Ipaddress,
		State:      resp.Resourcestate,
	}
	// Hosts register enabled; apply a requested disable right after.
	if desired.State == model.HostStateDisabled {
		return p.Update(ctx, created.ID, desired, []string{"state"})
	}
	return created, nil
}

func (p *hostPort) Update(_ context.Context, id string, desired *model.Host, fields []string) (*model.Host, error) {
	params := p.cs.Host.NewUpdateHostParams(id)
	for _, f := range fields {
		switch f {
		case "state":
			// The update call takes the transition verb, not the state name.
			if desired.State == model.HostStateDisabled {
				params.SetAllocationstate("Disable")
			} else {
				params.SetAllocationstate("Enable")
			}
		default:
			return nil, fmt.Errorf("host attribute %s cannot be updated", f)
		}
	}
	resp, err := p.cs.Host.UpdateHost(params)
	if err != nil {
		return nil, err
	}
	return &model.Host{
		ID:         resp.Id,
		Name:       resp.Name,
		Pod:        resp.Podname,
		Zone:       resp.Zonename,
		Hypervisor: resp.Hypervisor,
		IPAddress:  resp.Ipaddress,
		State:      resp.Resourcestate,
	}, nil
}

func (p *hostPort) Delete(_ context.Context, id string) error {
	params := p.cs.Host.NewDeleteHostParams(id)
	_, err := p.cs.Host.DeleteHost(params)
	return err
}

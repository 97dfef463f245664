package cloudstack

import (
	"context"
	"fmt"

	"github.com/apache/cloudstack-go/v2/cloudstack"

	"github.com/csops-dev/csops/domain/model"
)

// zonePort implements model.ZonePort against the CloudStack zone API.
type zonePort struct {
	cs *cloudstack.CloudStackClient
}

func (p *zonePort) Get(_ context.Context, name, id string) (*model.Zone, error) {
	params := p.cs.Zone.NewListZonesParams()
	if id != "" {
		params.SetId(id)
	} else {
		params.SetName(name)
	}
	resp, err := p.cs.Zone.ListZones(params)
	if err != nil {
		return nil, err
	}
	if resp.Count == 0 || len(resp.Zones) == 0 {
		return nil, model.ErrZoneNotFound
	}
	z := resp.Zones[0]
	return &model.Zone{
		ID:                    z.Id,
		Name:                  z.Name,
		DNS1:                  z.Dns1,
		DNS2:                  z.Dns2,
		InternalDNS1:          z.Internaldns1,
		InternalDNS2:          z.Internaldns2,
		DNS1IPv6:              z.Ip6dns1,
		DNS2IPv6:              z.Ip6dns2,
		NetworkType:           z.Networktype,
		NetworkDomain:         z.Domain,
		GuestCIDRAddress:      z.Guestcidraddress,
		DHCPProvider:          z.Dhcpprovider,
		AllocationState:       z.Allocationstate,
		LocalStorageEnabled:   z.Localstorageenabled,
		SecurityGroupsEnabled: z.Securitygroupsenabled,
		ZoneToken:             z.Zonetoken,
	}, nil
}

func (p *zonePort) Create(ctx context.Context, desired *model.Zone) (*model.Zone, error) {
	networkType := desired.NetworkType
	if networkType == "" {
		networkType = "Basic"
	}
	params := p.cs.Zone.NewCreateZoneParams(desired.DNS1, desired.InternalDNS1, desired.Name, networkType)
	if desired.DNS2 != "" {
		params.SetDns2(desired.DNS2)
	}
	if desired.InternalDNS2 != "" {
		params.SetInternaldns2(desired.InternalDNS2)
	}
	if desired.DNS1IPv6 != "" {
		params.SetIp6dns1(desired.DNS1IPv6)
	}
	if desired.DNS2IPv6 != "" {
		params.SetIp6dns2(desired.DNS2IPv6)
	}
	if desired.NetworkDomain != "" {
		params.SetDomain(desired.NetworkDomain)
	}
	if desired.GuestCIDRAddress != "" {
		params.SetGuestcidraddress(desired.GuestCIDRAddress)
	}
	if desired.AllocationState != "" {
		params.SetAllocationstate(desired.AllocationState)
	}
	resp, err := p.cs.Zone.CreateZone(params)
	if err != nil {
		return nil, err
	}
	return &model.Zone{
		ID:                    resp.Id,
		Name:                  resp.Name,
		DNS1:                  resp.Dns1,
		DNS2:                  resp.Dns2,
		InternalDNS1:          resp.Internaldns1,
		InternalDNS2:          resp.Internaldns2,
		DNS1IPv6:              resp.Ip6dns1,
		DNS2IPv6:              resp.Ip6dns2,
		NetworkType:           resp.Networktype,
		NetworkDomain:         resp.Domain,
		GuestCIDRAddress:      resp.Guestcidraddress,
		DHCPProvider:          resp.Dhcpprovider,
		AllocationState:       resp.Allocationstate,
		LocalStorageEnabled:   resp.Localstorageenabled,
		SecurityGroupsEnabled: resp.Securitygroupsenabled,
		ZoneToken:             resp.Zonetoken,
	}, nil
}

func (p *zonePort) Update(_ context.Context, id string, desired *model.Zone, fields []string) (*model.Zone, error) {
	params := p.cs.Zone.NewUpdateZoneParams(id)
	for _, f := range fields {
		switch f {
		case "dns1":
			params.SetDns1(desired.DNS1)
		case "dns2":
			params.SetDns2(desired.DNS2)
		case "internal_dns1":
			params.SetInternaldns1(desired.InternalDNS1)
		case "internal_dns2":
			params.SetInternaldns2(desired.InternalDNS2)
		case "dns1_ipv6":
			params.SetIp6dns1(desired.DNS1IPv6)
		case "dns2_ipv6":
			params.SetIp6dns2(desired.DNS2IPv6)
		case "network_domain":
			params.SetDomain(desired.NetworkDomain)
		case "guest_cidr_address":
			params.SetGuestcidraddress(desired.GuestCIDRAddress)
		case "dhcp_provider":
			params.SetDhcpprovider(desired.DHCPProvider)
		case "allocation_state":
			params.SetAllocationstate(desired.AllocationState)
		case "network_type":
			return nil, fmt.Errorf("network_type of an existing zone cannot be changed")
		}
	}
	resp, err := p.cs.Zone.UpdateZone(params)
	if err != nil {
		return nil, err
	}
	return &model.Zone{
		ID:                    resp.Id,
		Name:                  resp.Name,
		DNS1:                  resp.Dns1,
		DNS2:                  resp.Dns2,
		InternalDNS1:          resp.Internaldns1,
		InternalDNS2:          resp.Internaldns2,
		DNS1IPv6:              resp.Ip6dns1,
		DNS2IPv6:              resp.Ip6dns2,
		NetworkType:           resp.Networktype,
		NetworkDomain:         resp.Domain,
		GuestCIDRAddress:      resp.Guestcidraddress,
		DHCPProvider:          resp.Dhcpprovider,
		AllocationState:       resp.Allocationstate,
		LocalStorageEnabled:   resp.Localstorageenabled,
		SecurityGroupsEnabled: resp.Securitygroupsenabled,
		ZoneToken:             resp.Zonetoken,
	}, nil
}

func (p *zonePort) Delete(_ context.Context, id string) error {
	params := p.cs.Zone.NewDeleteZoneParams(id)
	_, err := p.cs.Zone.DeleteZone(params)
	return err
}

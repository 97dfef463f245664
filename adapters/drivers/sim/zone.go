package sim

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/csops-dev/csops/domain/model"
)

// zoneStore is a thread-safe in-memory model.ZonePort implementation.
type zoneStore struct {
	mu    sync.RWMutex
	items map[string]*model.Zone // keyed by ID
}

func newZoneStore() *zoneStore {
	return &zoneStore{items: make(map[string]*model.Zone)}
}

func (s *zoneStore) Get(_ context.Context, name, id string) (*model.Zone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id != "" {
		if z, ok := s.items[id]; ok {
			cp := *z
			return &cp, nil
		}
		return nil, model.ErrZoneNotFound
	}
	for _, z := range s.items {
		if strings.EqualFold(z.Name, name) {
			cp := *z
			return &cp, nil
		}
	}
	return nil, model.ErrZoneNotFound
}

func (s *zoneStore) Create(_ context.Context, desired *model.Zone) (*model.Zone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	z := *desired
	z.ID = uuid.NewString()
	z.ZoneToken = uuid.NewString()
	if z.NetworkType == "" {
		z.NetworkType = "Basic"
	}
	// CloudStack brings new zones up disabled unless asked otherwise.
	if z.AllocationState == "" {
		z.AllocationState = model.AllocationStateDisabled
	}
	s.items[z.ID] = &z
	cp := z
	return &cp, nil
}

func (s *zoneStore) Update(_ context.Context, id string, desired *model.Zone, fields []string) (*model.Zone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	z, ok := s.items[id]
	if !ok {
		return nil, model.ErrZoneNotFound
	}
	for _, f := range fields {
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
		case "network_domain":
			z.NetworkDomain = desired.NetworkDomain
		case "guest_cidr_address":
			z.GuestCIDRAddress = desired.GuestCIDRAddress
		case "dhcp_provider":
			z.DHCPProvider = desired.DHCPProvider
		case "allocation_state":
			z.AllocationState = desired.AllocationState
		case "network_type":
			return nil, fmt.Errorf("network_type of an existing zone cannot be changed")
		}
	}
	cp := *z
	return &cp, nil
}

func (s *zoneStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return model.ErrZoneNotFound
	}
	delete(s.items, id)
	return nil
}

package sim

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/csops-dev/csops/domain/model"
)

// hostStore is a thread-safe in-memory model.HostPort implementation. Like
// the real API it stores the connection credentials but never echoes them.
type hostStore struct {
	mu    sync.RWMutex
	items map[string]*model.Host // keyed by ID
}

func newHostStore() *hostStore {
	return &hostStore{items: make(map[string]*model.Host)}
}

// sanitize copies a host the way the API reports it: without write-only
// attributes.
func sanitize(h *model.Host) *model.Host {
	cp := *h
	cp.URL = ""
	cp.Username = ""
	cp.Password = ""
	return &cp
}

func (s *hostStore) Get(_ context.Context, name, id string) (*model.Host, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id != "" {
		if h, ok := s.items[id]; ok {
			return sanitize(h), nil
		}
		return nil, model.ErrHostNotFound
	}
	for _, h := range s.items {
		if strings.EqualFold(h.Name, name) {
			return sanitize(h), nil
		}
	}
	return nil, model.ErrHostNotFound
}

func (s *hostStore) Create(_ context.Context, desired *model.Host) (*model.Host, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := *desired
	h.ID = uuid.NewString()
	if h.State == "" {
		h.State = model.HostStateEnabled
	}
	s.items[h.ID] = &h
	return sanitize(&h), nil
}

func (s *hostStore) Update(_ context.Context, id string, desired *model.Host, fields []string) (*model.Host, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.items[id]
	if !ok {
		return nil, model.ErrHostNotFound
	}
	for _, f := range fields {
		if f == "state" {
			h.State = desired.State
		}
	}
	return sanitize(h), nil
}

func (s *hostStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return model.ErrHostNotFound
	}
	delete(s.items, id)
	return nil
}

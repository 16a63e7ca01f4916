package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-notify-client/internal/domain"
	"github.com/go-notify-client/internal/pkg/id"
)

// Registration is an address registered for delivery over a transport.
type Registration struct {
	ID        string           `json:"id"`
	Address   string           `json:"address"`
	UID       string           `json:"uid"`
	Transport domain.Transport `json:"transport"`
	Namespace string           `json:"namespace"`
	Bundle    string           `json:"bundle"`
	OS        domain.OS        `json:"os"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func registrationKey(t domain.Transport, address string) string {
	return string(t) + "\x00" + address
}

// Register upserts r keyed by transport and address. Re-registering an address
// moves it to r.UID.
func (s *Store) Register(_ context.Context, r Registration) (*Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	key := registrationKey(r.Transport, r.Address)
	if existing, ok := s.registrations[key]; ok {
		r.ID = existing.ID
		r.CreatedAt = existing.CreatedAt
	} else {
		r.ID = id.New()
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	s.registrations[key] = r
	out := r
	return &out, nil
}

// Deregister removes the registration of address on transport owned by uid.
func (s *Store) Deregister(_ context.Context, t domain.Transport, address, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := registrationKey(t, address)
	r, ok := s.registrations[key]
	if !ok {
		return fmt.Errorf("registration not found: %w", domain.ErrNotFound)
	}
	if r.UID != uid {
		return fmt.Errorf("registration owned by another user: %w", domain.ErrForbidden)
	}
	delete(s.registrations, key)
	return nil
}

// Registrations lists the registrations of uid ordered by creation.
func (s *Store) Registrations(_ context.Context, uid string) ([]Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Registration
	for _, r := range s.registrations {
		if r.UID == uid {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

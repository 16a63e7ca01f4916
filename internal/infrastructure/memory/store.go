// Package memory is an in-process backend store for the preview server.
// Nothing is persisted.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-notify-client/internal/domain"
	"github.com/go-notify-client/internal/pkg/id"
)

// Store holds registrations, notifications, topics and settings. Safe for concurrent use.
type Store struct {
	mu            sync.RWMutex
	now           func() time.Time
	registrations map[string]Registration
	notifications map[string]domain.Notification
	topics        map[string]domain.Topic
	settings      map[string]bool
}

// NewStore returns an empty Store. A nil clock uses time.Now in UTC.
func NewStore(clock func() time.Time) *Store {
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	return &Store{
		now:           func() time.Time { return clock().Truncate(time.Millisecond) },
		registrations: make(map[string]Registration),
		notifications: make(map[string]domain.Notification),
		topics:        make(map[string]domain.Topic),
		settings:      make(map[string]bool),
	}
}

func (s *Store) PutTopic(_ context.Context, t domain.Topic) (*domain.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = id.New()
	}
	s.topics[t.ID] = t
	out := t
	return &out, nil
}

// ListTopics returns uid's topics ordered by name.
func (s *Store) ListTopics(_ context.Context, uid string, limit, offset int) ([]domain.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Topic
	for _, t := range s.topics {
		if t.UID == uid {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return page(out, limit, offset), nil
}

func settingsKey(uid, namespace string) string { return uid + "\x00" + namespace }

// Enabled reports the notification switch of uid in namespace. Unset means enabled.
func (s *Store) Enabled(_ context.Context, uid, namespace string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	enabled, ok := s.settings[settingsKey(uid, namespace)]
	if !ok {
		return true, nil
	}
	return enabled, nil
}

func (s *Store) SetEnabled(_ context.Context, uid, namespace string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings[settingsKey(uid, namespace)] = enabled
	return nil
}

// Seed fills the store with sample topics and notifications for uid.
func (s *Store) Seed(ctx context.Context, uid string) error {
	base := s.now().Add(-time.Hour)
	samples := []domain.Notification{
		{RefID: "welcome", Category: int(domain.CategoryNone), Title: "Welcome", Body: "Thanks for signing up.", Content: "Glad to have you"},
		{RefID: "promo-1", Category: int(domain.CategoryAdvertising), Title: "Spring sale", Body: "Everything 20% off.", Content: "https://picsum.photos/seed/sale/600/300 Spring sale banner"},
		{RefID: "inv-42", Category: int(domain.CategoryPayment), Title: "Payment received", Body: "Invoice #42 is paid.", Content: ""},
	}
	for i, n := range samples {
		n.UID = uid
		n.CreatedAt = base.Add(time.Duration(i) * 10 * time.Minute)
		if _, err := s.PutNotification(ctx, n); err != nil {
			return fmt.Errorf("seed notification %s: %w", n.RefID, err)
		}
	}
	for _, name := range []string{"news", "billing", "promotions"} {
		if _, err := s.PutTopic(ctx, domain.Topic{Name: name, UID: uid}); err != nil {
			return fmt.Errorf("seed topic %s: %w", name, err)
		}
	}
	return nil
}

// Package inbox keeps the ordered list of delivered notifications a screen
// displays, refreshed and mutated through the notification Service.
package inbox

import (
	"context"
	"slices"
	"sync"

	"github.com/go-notify-client/internal/application/notification"
	"github.com/go-notify-client/internal/domain"
)

// Store holds the notifications currently on screen, newest first.
// Subscribers receive a fresh snapshot after every change.
type Store struct {
	svc notification.Service

	mu     sync.Mutex
	items  []domain.Notification
	subs   map[int]chan []domain.Notification
	nextID int
}

func New(svc notification.Service) *Store {
	return &Store{svc: svc, subs: make(map[int]chan []domain.Notification)}
}

// Load replaces the list with the server's delivered notifications.
func (s *Store) Load(ctx context.Context, cfg domain.ListConfig) ([]domain.Notification, error) {
	items, err := s.svc.DeliveredNotifications(ctx, cfg)
	if err != nil {
		return nil, err
	}
	items = slices.Clone(items)
	sortNewestFirst(items)

	s.mu.Lock()
	s.items = items
	snap := s.snapshotLocked()
	s.publishLocked(snap)
	s.mu.Unlock()
	return snap, nil
}

// MarkRead marks ids as read and merges the server's updated records.
func (s *Store) MarkRead(ctx context.Context, cfg domain.ReadConfig) error {
	updated, err := s.svc.MarkAsRead(ctx, cfg)
	if err != nil {
		return err
	}
	byID := make(map[string]domain.Notification, len(updated))
	for _, n := range updated {
		byID[n.ID] = n
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.items {
		if u, ok := byID[n.ID]; ok {
			s.items[i] = u
		}
	}
	sortNewestFirst(s.items)
	s.publishLocked(s.snapshotLocked())
	return nil
}

// Remove deletes notifications on the server, then drops them locally.
func (s *Store) Remove(ctx context.Context, cfg domain.DeleteConfig) error {
	if err := s.svc.RemoveDeliveredNotifications(ctx, cfg); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg.DeleteAll {
		s.items = nil
	} else {
		s.items = slices.DeleteFunc(s.items, func(n domain.Notification) bool {
			return slices.Contains(cfg.IDs, n.ID)
		})
	}
	s.publishLocked(s.snapshotLocked())
	return nil
}

// Snapshot returns a copy of the current list.
func (s *Store) Snapshot() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Unread counts notifications in the list without a read timestamp.
func (s *Store) Unread() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, item := range s.items {
		if !item.IsRead() {
			n++
		}
	}
	return n
}

// Subscribe returns a channel that always holds the latest snapshot; a slow
// reader skips intermediate ones. cancel closes the channel.
func (s *Store) Subscribe() (<-chan []domain.Notification, func()) {
	ch := make(chan []domain.Notification, 1)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (s *Store) snapshotLocked() []domain.Notification {
	return slices.Clone(s.items)
}

func (s *Store) publishLocked(snap []domain.Notification) {
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- slices.Clone(snap)
	}
}

func sortNewestFirst(items []domain.Notification) {
	slices.SortStableFunc(items, func(a, b domain.Notification) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

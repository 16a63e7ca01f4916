package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-notify-client/internal/domain"
	"github.com/go-notify-client/internal/pkg/id"
)

// PutNotification stores n, assigning an id and timestamps when missing.
func (s *Store) PutNotification(_ context.Context, n domain.Notification) (*domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	if n.UpdatedAt.IsZero() {
		n.UpdatedAt = n.CreatedAt
	}
	if n.ID == "" {
		n.ID = id.At(n.CreatedAt)
	}
	s.notifications[n.ID] = n
	out := n
	return &out, nil
}

func (s *Store) GetNotification(_ context.Context, notificationID string) (*domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.notifications[notificationID]
	if !ok || n.DeletedAt != nil {
		return nil, fmt.Errorf("notification not found: %w", domain.ErrNotFound)
	}
	return &n, nil
}

// ListNotifications returns uid's live notifications, newest first.
// limit <= 0 means no limit.
func (s *Store) ListNotifications(_ context.Context, uid string, limit, offset int) ([]domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Notification
	for _, n := range s.notifications {
		if n.UID == uid && n.DeletedAt == nil {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return page(out, limit, offset), nil
}

// MarkAsRead sets read_at on the listed notifications owned by uid and returns
// them. Already-read notifications keep their original read_at. Unknown ids
// and ids owned by other users are skipped.
func (s *Store) MarkAsRead(_ context.Context, uid string, ids []string) ([]domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	out := make([]domain.Notification, 0, len(ids))
	for _, nid := range ids {
		n, ok := s.notifications[nid]
		if !ok || n.UID != uid || n.DeletedAt != nil {
			continue
		}
		if n.ReadAt == nil {
			readAt := now
			n.ReadAt = &readAt
			n.UpdatedAt = now
			s.notifications[nid] = n
		}
		out = append(out, n)
	}
	return out, nil
}

// Delete soft-deletes the listed notifications of uid, or all of them.
// It returns how many records changed; repeating a delete changes nothing.
func (s *Store) Delete(_ context.Context, uid string, ids []string, all bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	remove := func(nid string, n domain.Notification) {
		deletedAt := now
		n.DeletedAt = &deletedAt
		n.UpdatedAt = now
		s.notifications[nid] = n
	}
	changed := 0
	if all {
		for nid, n := range s.notifications {
			if n.UID == uid && n.DeletedAt == nil {
				remove(nid, n)
				changed++
			}
		}
		return changed, nil
	}
	for _, nid := range ids {
		n, ok := s.notifications[nid]
		if !ok || n.UID != uid || n.DeletedAt != nil {
			continue
		}
		remove(nid, n)
		changed++
	}
	return changed, nil
}

// Unread counts uid's live notifications without read_at.
func (s *Store) Unread(_ context.Context, uid string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.notifications {
		if n.UID == uid && n.DeletedAt == nil && n.ReadAt == nil {
			count++
		}
	}
	return count, nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

package memory

import (
	"context"
	"testing"
	"time"

	"github.com/go-notify-client/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore() (*Store, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 3, 1, 10, 0, 0, 123456789, time.UTC)}
	return NewStore(clock.now), clock
}

func TestStore_ClockTruncatedToMillis(t *testing.T) {
	s, _ := newTestStore()
	n, err := s.PutNotification(context.Background(), domain.Notification{UID: "u1", Title: "x"})
	require.NoError(t, err)
	assert.Equal(t, 123000000, n.CreatedAt.Nanosecond())
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, n.CreatedAt, n.UpdatedAt)
}

func TestStore_ListNotificationsNewestFirstAndPaged(t *testing.T) {
	s, clock := newTestStore()
	ctx := context.Background()
	var made []string
	for i := 0; i < 5; i++ {
		n, err := s.PutNotification(ctx, domain.Notification{UID: "u1"})
		require.NoError(t, err)
		made = append(made, n.ID)
		clock.advance(time.Minute)
	}
	_, err := s.PutNotification(ctx, domain.Notification{UID: "other"})
	require.NoError(t, err)

	all, err := s.ListNotifications(ctx, "u1", 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, made[4], all[0].ID)
	assert.Equal(t, made[0], all[4].ID)

	page2, err := s.ListNotifications(ctx, "u1", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{made[2], made[1]}, []string{page2[0].ID, page2[1].ID})

	past, err := s.ListNotifications(ctx, "u1", 2, 10)
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestStore_MarkAsReadKeepsFirstReadAt(t *testing.T) {
	s, clock := newTestStore()
	ctx := context.Background()
	n, err := s.PutNotification(ctx, domain.Notification{UID: "u1"})
	require.NoError(t, err)

	clock.advance(time.Minute)
	first, err := s.MarkAsRead(ctx, "u1", []string{n.ID, "missing"})
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.NotNil(t, first[0].ReadAt)

	clock.advance(time.Minute)
	second, err := s.MarkAsRead(ctx, "u1", []string{n.ID})
	require.NoError(t, err)
	assert.True(t, first[0].ReadAt.Equal(*second[0].ReadAt))

	foreign, err := s.MarkAsRead(ctx, "intruder", []string{n.ID})
	require.NoError(t, err)
	assert.Empty(t, foreign)

	unread, err := s.Unread(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestStore_DeleteAllIsIdempotent(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	require.NoError(t, s.Seed(ctx, "u1"))

	changed, err := s.Delete(ctx, "u1", nil, true)
	require.NoError(t, err)
	assert.Equal(t, 3, changed)

	changed, err = s.Delete(ctx, "u1", nil, true)
	require.NoError(t, err)
	assert.Zero(t, changed)

	items, err := s.ListNotifications(ctx, "u1", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStore_DeleteByID(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	n, err := s.PutNotification(ctx, domain.Notification{UID: "u1"})
	require.NoError(t, err)

	changed, err := s.Delete(ctx, "other", []string{n.ID}, false)
	require.NoError(t, err)
	assert.Zero(t, changed)

	changed, err = s.Delete(ctx, "u1", []string{n.ID}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	_, err = s.GetNotification(ctx, n.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_RegisterUpsertsAndDeregister(t *testing.T) {
	s, clock := newTestStore()
	ctx := context.Background()
	r := Registration{Address: "fcm-1", UID: "u1", Transport: domain.TransportFirebase, OS: domain.OSAndroid}

	first, err := s.Register(ctx, r)
	require.NoError(t, err)
	clock.advance(time.Minute)
	r.Bundle = "com.example"
	second, err := s.Register(ctx, r)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	regs, err := s.Registrations(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, "com.example", regs[0].Bundle)

	assert.ErrorIs(t, s.Deregister(ctx, domain.TransportFirebase, "fcm-1", "u2"), domain.ErrForbidden)
	require.NoError(t, s.Deregister(ctx, domain.TransportFirebase, "fcm-1", "u1"))
	assert.ErrorIs(t, s.Deregister(ctx, domain.TransportFirebase, "fcm-1", "u1"), domain.ErrNotFound)
}

func TestStore_TopicsAndSettings(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	require.NoError(t, s.Seed(ctx, "u1"))

	topics, err := s.ListTopics(ctx, "u1", 0, 0)
	require.NoError(t, err)
	require.Len(t, topics, 3)
	assert.Equal(t, "billing", topics[0].Name)
	assert.Equal(t, "promotions", topics[2].Name)

	enabled, err := s.Enabled(ctx, "u1", "shop")
	require.NoError(t, err)
	assert.True(t, enabled)

	require.NoError(t, s.SetEnabled(ctx, "u1", "shop", false))
	enabled, err = s.Enabled(ctx, "u1", "shop")
	require.NoError(t, err)
	assert.False(t, enabled)

	enabled, err = s.Enabled(ctx, "u1", "other")
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestStore_SeedHasImageNotification(t *testing.T) {
	s, _ := newTestStore()
	require.NoError(t, s.Seed(context.Background(), "u1"))

	items, err := s.ListNotifications(context.Background(), "u1", 0, 0)
	require.NoError(t, err)
	withImage := 0
	for _, n := range items {
		if _, ok := n.ImageURL(); ok {
			withImage++
		}
	}
	assert.Equal(t, 1, withImage)
}

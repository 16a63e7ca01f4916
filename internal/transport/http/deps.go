package http

import (
	"context"

	"github.com/go-notify-client/internal/domain"
	jwtinfra "github.com/go-notify-client/internal/infrastructure/jwt"
	"github.com/go-notify-client/internal/infrastructure/memory"
)

// Backend is everything the preview router needs from a store.
// *memory.Store satisfies it.
type Backend interface {
	Register(ctx context.Context, r memory.Registration) (*memory.Registration, error)
	Deregister(ctx context.Context, t domain.Transport, address, uid string) error

	ListNotifications(ctx context.Context, uid string, limit, offset int) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, uid string, ids []string) ([]domain.Notification, error)
	Delete(ctx context.Context, uid string, ids []string, all bool) (int, error)
	Unread(ctx context.Context, uid string) (int, error)

	ListTopics(ctx context.Context, uid string, limit, offset int) ([]domain.Topic, error)

	Enabled(ctx context.Context, uid, namespace string) (bool, error)
	SetEnabled(ctx context.Context, uid, namespace string, enabled bool) error
}

var _ Backend = (*memory.Store)(nil)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	Backend     Backend
	JWTProvider *jwtinfra.Provider
}

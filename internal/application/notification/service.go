package notification

import (
	"context"

	"github.com/go-notify-client/internal/domain"
	"github.com/go-notify-client/internal/platform"
)

// Service is the notification client capability set. Implementations are
// chosen at composition time: NewService for the live backend, Unimplemented
// for tests that must not reach the network, Preview for design-time data.
type Service interface {
	RequestAuthorization(ctx context.Context, opts platform.AuthorizationOptions) (bool, error)
	Register(ctx context.Context, cfg domain.RegisterConfig) error
	Deregister(ctx context.Context, cfg domain.RegisterConfig) error
	DeliveredNotifications(ctx context.Context, cfg domain.ListConfig) ([]domain.Notification, error)
	DeliveredTopics(ctx context.Context, cfg domain.ListConfig) ([]domain.Topic, error)
	MarkAsRead(ctx context.Context, cfg domain.ReadConfig) ([]domain.Notification, error)
	RemoveDeliveredNotifications(ctx context.Context, cfg domain.DeleteConfig) error
	NotificationSettings(ctx context.Context, cfg domain.SettingsConfig) (domain.SettingsResponse, error)
	SetNotificationSettings(ctx context.Context, cfg domain.SettingsConfig) error
	UnreadNotifications(ctx context.Context, cfg domain.UnreadConfig) (domain.UnreadResponse, error)
}

var (
	_ Service = (*Gateway)(nil)
	_ Service = Unimplemented{}
	_ Service = Preview{}
)

// NewService returns the live Service backed by gw.
func NewService(gw *Gateway) Service {
	return gw
}

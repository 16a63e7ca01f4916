package notification

import (
	"context"
	"fmt"

	"github.com/go-notify-client/internal/domain"
	"github.com/go-notify-client/internal/platform"
)

// Unimplemented fails every call with domain.ErrUnimplemented. Use it as the
// default in tests so an unexpected call is reported instead of hitting the network.
type Unimplemented struct{}

func unimplemented(op string) error { return fmt.Errorf("notification.%s: %w", op, domain.ErrUnimplemented) }

func (Unimplemented) RequestAuthorization(context.Context, platform.AuthorizationOptions) (bool, error) {
	return false, unimplemented("RequestAuthorization")
}

func (Unimplemented) Register(context.Context, domain.RegisterConfig) error {
	return unimplemented("Register")
}

func (Unimplemented) Deregister(context.Context, domain.RegisterConfig) error {
	return unimplemented("Deregister")
}

func (Unimplemented) DeliveredNotifications(context.Context, domain.ListConfig) ([]domain.Notification, error) {
	return nil, unimplemented("DeliveredNotifications")
}

func (Unimplemented) DeliveredTopics(context.Context, domain.ListConfig) ([]domain.Topic, error) {
	return nil, unimplemented("DeliveredTopics")
}

func (Unimplemented) MarkAsRead(context.Context, domain.ReadConfig) ([]domain.Notification, error) {
	return nil, unimplemented("MarkAsRead")
}

func (Unimplemented) RemoveDeliveredNotifications(context.Context, domain.DeleteConfig) error {
	return unimplemented("RemoveDeliveredNotifications")
}

func (Unimplemented) NotificationSettings(context.Context, domain.SettingsConfig) (domain.SettingsResponse, error) {
	return domain.SettingsResponse{}, unimplemented("NotificationSettings")
}

func (Unimplemented) SetNotificationSettings(context.Context, domain.SettingsConfig) error {
	return unimplemented("SetNotificationSettings")
}

func (Unimplemented) UnreadNotifications(context.Context, domain.UnreadConfig) (domain.UnreadResponse, error) {
	return domain.UnreadResponse{}, unimplemented("UnreadNotifications")
}

// Preview answers every call with an inert placeholder and never performs I/O.
type Preview struct{}

func (Preview) RequestAuthorization(context.Context, platform.AuthorizationOptions) (bool, error) {
	return false, nil
}

func (Preview) Register(context.Context, domain.RegisterConfig) error   { return nil }
func (Preview) Deregister(context.Context, domain.RegisterConfig) error { return nil }

func (Preview) DeliveredNotifications(context.Context, domain.ListConfig) ([]domain.Notification, error) {
	return []domain.Notification{}, nil
}

func (Preview) DeliveredTopics(context.Context, domain.ListConfig) ([]domain.Topic, error) {
	return []domain.Topic{}, nil
}

func (Preview) MarkAsRead(context.Context, domain.ReadConfig) ([]domain.Notification, error) {
	return []domain.Notification{}, nil
}

func (Preview) RemoveDeliveredNotifications(context.Context, domain.DeleteConfig) error { return nil }

func (Preview) NotificationSettings(context.Context, domain.SettingsConfig) (domain.SettingsResponse, error) {
	return domain.SettingsResponse{}, nil
}

func (Preview) SetNotificationSettings(context.Context, domain.SettingsConfig) error { return nil }

func (Preview) UnreadNotifications(context.Context, domain.UnreadConfig) (domain.UnreadResponse, error) {
	return domain.UnreadResponse{}, nil
}

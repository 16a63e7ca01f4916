package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-notify-client/internal/domain"
	"github.com/go-notify-client/internal/infrastructure/notifyapi"
	"github.com/go-notify-client/internal/pkg/logger"
	"github.com/go-notify-client/internal/pkg/validate"
	"github.com/go-notify-client/internal/platform"
)

// Gateway performs one backend round trip per call: build the request, send it
// through the transport, classify and decode the response. It holds no mutable
// state, so calls may run concurrently.
type Gateway struct {
	transport notifyapi.Transport
	builder   notifyapi.Builder
	center    platform.Center
	log       *slog.Logger
}

// NewGateway wires a Gateway. A nil log discards records.
func NewGateway(transport notifyapi.Transport, builder notifyapi.Builder, center platform.Center, log *slog.Logger) *Gateway {
	if log == nil {
		log = logger.Discard()
	}
	return &Gateway{transport: transport, builder: builder, center: center, log: log}
}

// RequestAuthorization asks the platform for permission to show notifications.
func (g *Gateway) RequestAuthorization(ctx context.Context, opts platform.AuthorizationOptions) (bool, error) {
	if g.center == nil {
		return false, &domain.PlatformError{Err: errors.New("no notification center configured")}
	}
	granted, err := g.center.RequestAuthorization(ctx, opts)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return false, err
		}
		g.log.WarnContext(ctx, "authorization request failed", slog.String("options", opts.String()), slog.Any("error", err))
		return false, &domain.PlatformError{Err: err}
	}
	return granted, nil
}

// ClearAllLocalNotifications removes every notification the platform has shown.
func (g *Gateway) ClearAllLocalNotifications() {
	if g.center != nil {
		g.center.RemoveAllDelivered()
	}
}

func (g *Gateway) Register(ctx context.Context, cfg domain.RegisterConfig) error {
	if err := checkConfig(notifyapi.OpRegister, cfg); err != nil {
		return err
	}
	req, err := g.builder.Register(cfg)
	if err != nil {
		return err
	}
	return g.exec(ctx, req)
}

func (g *Gateway) Deregister(ctx context.Context, cfg domain.RegisterConfig) error {
	if err := checkConfig(notifyapi.OpDeregister, cfg); err != nil {
		return err
	}
	req, err := g.builder.Deregister(cfg)
	if err != nil {
		return err
	}
	return g.exec(ctx, req)
}

func (g *Gateway) DeliveredNotifications(ctx context.Context, cfg domain.ListConfig) ([]domain.Notification, error) {
	if err := checkConfig(notifyapi.OpListNotifications, cfg); err != nil {
		return nil, err
	}
	out, err := fetch[domain.NotifiesResponse](ctx, g, g.builder.ListNotifications(cfg))
	if err != nil {
		return nil, err
	}
	return out.Notifies, nil
}

func (g *Gateway) DeliveredTopics(ctx context.Context, cfg domain.ListConfig) ([]domain.Topic, error) {
	if err := checkConfig(notifyapi.OpListTopics, cfg); err != nil {
		return nil, err
	}
	out, err := fetch[domain.TopicsResponse](ctx, g, g.builder.ListTopics(cfg))
	if err != nil {
		return nil, err
	}
	return out.Topics, nil
}

func (g *Gateway) MarkAsRead(ctx context.Context, cfg domain.ReadConfig) ([]domain.Notification, error) {
	if err := checkConfig(notifyapi.OpMarkRead, cfg); err != nil {
		return nil, err
	}
	req, err := g.builder.MarkRead(cfg)
	if err != nil {
		return nil, err
	}
	out, err := fetch[domain.NotifiesResponse](ctx, g, req)
	if err != nil {
		return nil, err
	}
	return out.Notifies, nil
}

// RemoveDeliveredNotifications deletes the given ids, or everything when
// DeleteAll is set. Deleting everything twice is not an error.
func (g *Gateway) RemoveDeliveredNotifications(ctx context.Context, cfg domain.DeleteConfig) error {
	if err := checkConfig(notifyapi.OpDelete, cfg); err != nil {
		return err
	}
	req, err := g.builder.Delete(cfg)
	if err != nil {
		return err
	}
	return g.exec(ctx, req)
}

func (g *Gateway) NotificationSettings(ctx context.Context, cfg domain.SettingsConfig) (domain.SettingsResponse, error) {
	if err := checkConfig(notifyapi.OpGetSettings, cfg); err != nil {
		return domain.SettingsResponse{}, err
	}
	return fetch[domain.SettingsResponse](ctx, g, g.builder.GetSettings(cfg))
}

func (g *Gateway) SetNotificationSettings(ctx context.Context, cfg domain.SettingsConfig) error {
	if err := checkConfig(notifyapi.OpSetSettings, cfg); err != nil {
		return err
	}
	req, err := g.builder.SetSettings(cfg)
	if err != nil {
		return err
	}
	return g.exec(ctx, req)
}

func (g *Gateway) UnreadNotifications(ctx context.Context, cfg domain.UnreadConfig) (domain.UnreadResponse, error) {
	if err := checkConfig(notifyapi.OpUnreadCount, cfg); err != nil {
		return domain.UnreadResponse{}, err
	}
	return fetch[domain.UnreadResponse](ctx, g, g.builder.UnreadCount(cfg))
}

// exec runs a call whose response body is required but not decoded.
func (g *Gateway) exec(ctx context.Context, req notifyapi.Request) error {
	resp, err := g.send(ctx, req)
	if err != nil {
		return err
	}
	if err := notifyapi.Check(resp); err != nil {
		g.logFailure(ctx, req, err)
		return err
	}
	return nil
}

func fetch[T any](ctx context.Context, g *Gateway, req notifyapi.Request) (T, error) {
	resp, err := g.send(ctx, req)
	if err != nil {
		var zero T
		return zero, err
	}
	out, err := notifyapi.Decode[T](resp)
	if err != nil {
		g.logFailure(ctx, req, err)
	}
	return out, err
}

func (g *Gateway) send(ctx context.Context, req notifyapi.Request) (*notifyapi.Response, error) {
	start := time.Now()
	resp, err := g.transport.Send(ctx, req)
	attrs := []any{
		slog.String("op", req.Operation.String()),
		slog.String("method", req.Method),
		slog.String("path", req.Path),
		slog.Duration("elapsed", time.Since(start)),
	}
	if err != nil {
		g.log.WarnContext(ctx, "notification request failed", append(attrs, slog.Any("error", err))...)
		return nil, err
	}
	if resp != nil && resp.Metadata.Code != nil {
		attrs = append(attrs, slog.Int("code", *resp.Metadata.Code))
	}
	g.log.DebugContext(ctx, "notification request", attrs...)
	return resp, nil
}

func (g *Gateway) logFailure(ctx context.Context, req notifyapi.Request, err error) {
	g.log.WarnContext(ctx, "notification response rejected",
		slog.String("op", req.Operation.String()),
		slog.Any("error", err),
	)
}

func checkConfig(op notifyapi.Operation, cfg any) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrInvalidConfig, err)
	}
	return nil
}

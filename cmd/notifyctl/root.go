package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/go-notify-client/internal/application/notification"
	"github.com/go-notify-client/internal/config"
	"github.com/go-notify-client/internal/infrastructure/notifyapi"
	"github.com/go-notify-client/internal/pkg/logger"
	"github.com/go-notify-client/internal/platform"
	"github.com/spf13/cobra"
)

// globals are the flags shared by every subcommand.
type globals struct {
	baseURL   string
	token     string
	userID    string
	namespace string
	bundle    string
	timeout   time.Duration
	preview   bool
	logLevel  string
}

// RootCommand builds the notifyctl command tree with flag defaults from cfg.
func RootCommand(cfg *config.Config) *cobra.Command {
	g := &globals{}
	var svc notification.Service

	rootCmd := &cobra.Command{
		Use:           "notifyctl",
		Short:         "Talk to the notification backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "token" {
				return nil
			}
			s, err := newService(cfg, g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			svc = s
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&g.baseURL, "base-url", cfg.NotifyBaseURL, "notification backend base URL")
	pf.StringVar(&g.token, "token", cfg.NotifyToken, "bearer token")
	pf.StringVar(&g.userID, "user", cfg.NotifyUserID, "user id")
	pf.StringVar(&g.namespace, "namespace", cfg.NotifyNamespace, "tenant namespace")
	pf.StringVar(&g.bundle, "bundle", cfg.AppBundle, "application bundle (defaults to the executable name)")
	pf.DurationVar(&g.timeout, "timeout", cfg.NotifyTimeout, "request timeout")
	pf.BoolVar(&g.preview, "preview", false, "use placeholder data instead of the backend")
	pf.StringVar(&g.logLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")

	get := func() notification.Service { return svc }
	rootCmd.AddCommand(
		authorizeCommand(get),
		registerCommand(get, g, "register"),
		registerCommand(get, g, "deregister"),
		listCommand(get, g),
		topicsCommand(get, g),
		readCommand(get, g),
		deleteCommand(get, g),
		settingsCommand(get, g),
		unreadCommand(get, g),
		tokenCommand(cfg, g),
	)
	return rootCmd
}

func newService(cfg *config.Config, g *globals, logOut io.Writer) (notification.Service, error) {
	if g.preview {
		return notification.Preview{}, nil
	}
	transport, err := notifyapi.NewHTTPTransport(notifyapi.HTTPConfig{
		BaseURL: g.baseURL,
		Timeout: g.timeout,
	})
	if err != nil {
		return nil, err
	}
	gw := notification.NewGateway(
		transport,
		notifyapi.NewBuilder(g.bundle),
		&platform.Headless{Granted: true},
		logger.NewWithWriter(logOut, cfg.AppEnv, g.logLevel),
	)
	return notification.NewService(gw), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

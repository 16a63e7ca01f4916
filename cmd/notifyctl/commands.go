package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-notify-client/internal/application/notification"
	"github.com/go-notify-client/internal/config"
	"github.com/go-notify-client/internal/domain"
	jwtinfra "github.com/go-notify-client/internal/infrastructure/jwt"
	"github.com/go-notify-client/internal/platform"
	"github.com/spf13/cobra"
)

type serviceFunc func() notification.Service

func authorizeCommand(svc serviceFunc) *cobra.Command {
	var options []string
	cmd := &cobra.Command{
		Use:   "authorize",
		Short: "Ask the platform for permission to show notifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := platform.DefaultOptions
			if len(options) > 0 {
				opts = platform.ParseOptions(options)
			}
			granted, err := svc().RequestAuthorization(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{"granted": granted, "options": opts.String()})
		},
	}
	cmd.Flags().StringSliceVar(&options, "options", nil, "badge, sound, alert, carPlay, criticalAlert, provisional")
	return cmd
}

// registerCommand builds both register and deregister; they take the same flags.
func registerCommand(svc serviceFunc, g *globals, name string) *cobra.Command {
	var address, transport, osName string
	cmd := &cobra.Command{
		Use:   name,
		Short: strings.ToUpper(name[:1]) + name[1:] + " a device address",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := domain.RegisterConfig{
				Address:   address,
				UID:       g.userID,
				Transport: domain.Transport(strings.ToUpper(transport)),
				Namespace: g.namespace,
				Bundle:    g.bundle,
				OS:        domain.OS(strings.ToUpper(osName)),
				Token:     g.token,
			}
			var err error
			if name == "deregister" {
				err = svc().Deregister(cmd.Context(), cfg)
			} else {
				err = svc().Register(cmd.Context(), cfg)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]string{"status": name + "ed"})
		},
	}
	f := cmd.Flags()
	f.StringVar(&address, "address", "", "device token, e-mail address or chat id")
	f.StringVar(&transport, "transport", string(domain.TransportFirebase), "NONE, SYSTEM, FIREBASE, SEND_GRID, TELEGRAM or DISCORD")
	f.StringVar(&osName, "os", string(domain.OSWeb), "IOS, ANDROID or WEB")
	_ = cmd.MarkFlagRequired("address")
	return cmd
}

func listFlags(cmd *cobra.Command, limit, offset *int) {
	cmd.Flags().IntVar(limit, "limit", 20, "page size")
	cmd.Flags().IntVar(offset, "offset", 0, "page offset")
}

func (g *globals) listConfig(limit, offset int) domain.ListConfig {
	return domain.ListConfig{
		UserID:    g.userID,
		Limit:     limit,
		Offset:    offset,
		Namespace: g.namespace,
		Bundle:    g.bundle,
		Token:     g.token,
	}
}

func listCommand(svc serviceFunc, g *globals) *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List delivered notifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := svc().DeliveredNotifications(cmd.Context(), g.listConfig(limit, offset))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), domain.NotifiesResponse{Notifies: items})
		},
	}
	listFlags(cmd, &limit, &offset)
	return cmd
}

func topicsCommand(svc serviceFunc, g *globals) *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "List topics the user is subscribed to",
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := svc().DeliveredTopics(cmd.Context(), g.listConfig(limit, offset))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), domain.TopicsResponse{Topics: items})
		},
	}
	listFlags(cmd, &limit, &offset)
	return cmd
}

func readCommand(svc serviceFunc, g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "read ID...",
		Short: "Mark notifications as read",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := svc().MarkAsRead(cmd.Context(), domain.ReadConfig{IDs: args, Token: g.token})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), domain.NotifiesResponse{Notifies: items})
		},
	}
}

func deleteCommand(svc serviceFunc, g *globals) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "delete [ID...]",
		Short: "Delete notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && len(args) == 0 {
				return errors.New("pass notification ids or --all")
			}
			err := svc().RemoveDeliveredNotifications(cmd.Context(), domain.DeleteConfig{IDs: args, DeleteAll: all, Token: g.token})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]string{"status": "deleted"})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "delete every notification of the token's user")
	return cmd
}

func settingsCommand(svc serviceFunc, g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read or change the notification switch",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Show whether notifications are enabled",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := svc().NotificationSettings(cmd.Context(), domain.SettingsConfig{
				UserID: g.userID, Namespace: g.namespace, Token: g.token,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:       "set on|off",
		Short:     "Enable or disable notifications",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var enabled bool
			switch strings.ToLower(args[0]) {
			case "on", "true":
				enabled = true
			case "off", "false":
			default:
				return fmt.Errorf("expected on or off, got %q", args[0])
			}
			err := svc().SetNotificationSettings(cmd.Context(), domain.SettingsConfig{
				Enabled: enabled, UserID: g.userID, Namespace: g.namespace, Token: g.token,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), domain.SettingsResponse{Enabled: enabled})
		},
	})
	return cmd
}

func unreadCommand(svc serviceFunc, g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "unread",
		Short: "Show the unread counter",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := svc().UnreadNotifications(cmd.Context(), domain.UnreadConfig{
				UserID: g.userID, Namespace: g.namespace, Bundle: g.bundle, Token: g.token,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

// tokenCommand mints a bearer token the preview backend accepts.
func tokenCommand(cfg *config.Config, g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Sign a token for the preview backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := jwtinfra.NewProvider(cfg)
			if err != nil {
				return err
			}
			if g.userID == "" {
				return errors.New("--user is required")
			}
			tok, err := p.Sign(g.userID, g.namespace)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]string{"token": tok})
		},
	}
}

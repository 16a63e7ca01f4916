package notifyapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-notify-client/internal/domain"
)

// Operation names one of the REST calls of the notification backend.
type Operation int

const (
	OpRegister Operation = iota + 1
	OpDeregister
	OpListNotifications
	OpListTopics
	OpMarkRead
	OpDelete
	OpGetSettings
	OpSetSettings
	OpUnreadCount
)

func (o Operation) String() string {
	switch o {
	case OpRegister:
		return "register"
	case OpDeregister:
		return "deregister"
	case OpListNotifications:
		return "list_notifications"
	case OpListTopics:
		return "list_topics"
	case OpMarkRead:
		return "mark_read"
	case OpDelete:
		return "delete"
	case OpGetSettings:
		return "get_settings"
	case OpSetSettings:
		return "set_settings"
	case OpUnreadCount:
		return "unread_count"
	default:
		return "unknown"
	}
}

// Request describes one HTTP call. Path is relative to the backend base URL.
type Request struct {
	Operation Operation
	Method    string
	Path      string
	Query     url.Values
	Header    http.Header
	Body      []byte
}

// Builder maps call configurations to Requests. It performs no I/O.
type Builder struct {
	bundle string
}

// NewBuilder returns a Builder that fills empty bundles with bundle,
// or with HostBundle when bundle is empty.
func NewBuilder(bundle string) Builder {
	if bundle == "" {
		bundle = HostBundle()
	}
	return Builder{bundle: bundle}
}

// HostBundle returns the identifier of the running executable.
func HostBundle() string {
	if len(os.Args) == 0 {
		return ""
	}
	return filepath.Base(os.Args[0])
}

// Bundle returns the default bundle used for configs that leave it empty.
func (b Builder) Bundle() string { return b.bundle }

type options struct {
	Namespace string `json:"namespace"`
	Bundle    string `json:"bundle,omitempty"`
}

type registerBody struct {
	Address   string  `json:"address"`
	UID       string  `json:"uid"`
	Transport string  `json:"transport"`
	Options   options `json:"options"`
	OS        string  `json:"os"`
}

type readBody struct {
	IDs []string `json:"ids"`
}

type deleteBody struct {
	IDs []string `json:"ids"`
	All string   `json:"all"`
}

type settingsBody struct {
	Enabled bool    `json:"enabled"`
	Options options `json:"options"`
}

func (b Builder) Register(cfg domain.RegisterConfig) (Request, error) {
	return b.registration(OpRegister, "register", cfg)
}

func (b Builder) Deregister(cfg domain.RegisterConfig) (Request, error) {
	return b.registration(OpDeregister, "deregister", cfg)
}

func (b Builder) registration(op Operation, action string, cfg domain.RegisterConfig) (Request, error) {
	body := registerBody{
		Address:   cfg.Address,
		UID:       cfg.UID,
		Transport: string(cfg.Transport),
		Options:   options{Namespace: cfg.Namespace, Bundle: b.bundleOr(cfg.Bundle)},
		OS:        string(cfg.OS),
	}
	path := fmt.Sprintf("/notify/%s/%s", url.PathEscape(string(cfg.Transport)), action)
	return newRequest(op, http.MethodPost, path, nil, cfg.Token, body)
}

func (b Builder) ListNotifications(cfg domain.ListConfig) Request {
	path := fmt.Sprintf("/users/%s/notifies", url.PathEscape(cfg.UserID))
	req, _ := newRequest(OpListNotifications, http.MethodGet, path, b.listQuery(cfg), cfg.Token, nil)
	return req
}

func (b Builder) ListTopics(cfg domain.ListConfig) Request {
	req, _ := newRequest(OpListTopics, http.MethodGet, "/notify/topics", b.listQuery(cfg), cfg.Token, nil)
	return req
}

func (b Builder) MarkRead(cfg domain.ReadConfig) (Request, error) {
	return newRequest(OpMarkRead, http.MethodPost, "/notifies/read", nil, cfg.Token, readBody{IDs: nonNil(cfg.IDs)})
}

func (b Builder) Delete(cfg domain.DeleteConfig) (Request, error) {
	body := deleteBody{IDs: nonNil(cfg.IDs), All: strconv.FormatBool(cfg.DeleteAll)}
	return newRequest(OpDelete, http.MethodPost, "/notifies/delete", nil, cfg.Token, body)
}

func (b Builder) GetSettings(cfg domain.SettingsConfig) Request {
	q := url.Values{}
	q.Set("user_id", cfg.UserID)
	q.Set("options.namespace", cfg.Namespace)
	req, _ := newRequest(OpGetSettings, http.MethodGet, settingsPath(cfg.UserID), q, cfg.Token, nil)
	return req
}

func (b Builder) SetSettings(cfg domain.SettingsConfig) (Request, error) {
	body := settingsBody{Enabled: cfg.Enabled, Options: options{Namespace: cfg.Namespace}}
	return newRequest(OpSetSettings, http.MethodPut, settingsPath(cfg.UserID), nil, cfg.Token, body)
}

func (b Builder) UnreadCount(cfg domain.UnreadConfig) Request {
	q := url.Values{}
	q.Set("user_id", cfg.UserID)
	q.Set("options.namespace", cfg.Namespace)
	q.Set("options.bundle", b.bundleOr(cfg.Bundle))
	path := fmt.Sprintf("/users/%s/statuses/notify", url.PathEscape(cfg.UserID))
	req, _ := newRequest(OpUnreadCount, http.MethodGet, path, q, cfg.Token, nil)
	return req
}

func (b Builder) listQuery(cfg domain.ListConfig) url.Values {
	q := url.Values{}
	q.Set("userId", cfg.UserID)
	q.Set("limit", strconv.Itoa(cfg.Limit))
	q.Set("offset", strconv.Itoa(cfg.Offset))
	q.Set("options.namespace", cfg.Namespace)
	q.Set("options.bundle", b.bundleOr(cfg.Bundle))
	return q
}

func (b Builder) bundleOr(bundle string) string {
	if bundle != "" {
		return bundle
	}
	return b.bundle
}

func settingsPath(userID string) string {
	return fmt.Sprintf("/users/%s/settings/notify", url.PathEscape(userID))
}

// nonNil keeps an empty id list encoded as [] rather than null.
func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

// newRequest only fails when body is non-nil and cannot be encoded.
func newRequest(op Operation, method, path string, query url.Values, token string, body any) (Request, error) {
	req := Request{
		Operation: op,
		Method:    method,
		Path:      path,
		Query:     query,
		Header:    http.Header{},
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	if body == nil {
		return req, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return Request{}, fmt.Errorf("%s: %w: %w", op, domain.ErrEncodingFailed, err)
	}
	req.Body = data
	return req, nil
}

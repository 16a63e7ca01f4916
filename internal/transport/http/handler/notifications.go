package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-notify-client/internal/domain"
	"github.com/go-notify-client/internal/pkg/validate"
	"github.com/go-notify-client/internal/transport/http/middleware"
)

const defaultPageSize = 20

type notificationStore interface {
	ListNotifications(ctx context.Context, uid string, limit, offset int) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, uid string, ids []string) ([]domain.Notification, error)
	Delete(ctx context.Context, uid string, ids []string, all bool) (int, error)
	Unread(ctx context.Context, uid string) (int, error)
}

type readInput struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

type deleteInput struct {
	IDs []string `json:"ids"`
	All string   `json:"all"`
}

// NotificationHandler handles delivered-notification endpoints.
type NotificationHandler struct {
	store notificationStore
}

func NewNotificationHandler(store notificationStore) *NotificationHandler {
	return &NotificationHandler{store: store}
}

// List serves GET /users/{userId}/notifies.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(r, "limit", defaultPageSize)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	offset, ok := queryInt(r, "offset", 0)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid offset")
		return
	}
	items, err := h.store.ListNotifications(r.Context(), chi.URLParam(r, "userId"), limit, offset)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NotifiesEnvelope{Notifies: items})
}

// MarkAsRead serves POST /notifies/read.
func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var input readInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	items, err := h.store.MarkAsRead(r.Context(), claims.UserID, input.IDs)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NotifiesEnvelope{Notifies: items})
}

// Delete serves POST /notifies/delete. "all" arrives as the string "true" or "false".
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var input deleteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	all := false
	if input.All != "" {
		v, err := strconv.ParseBool(input.All)
		if err != nil {
			writeError(w, http.StatusBadRequest, "all must be \"true\" or \"false\"")
			return
		}
		all = v
	}
	if !all && len(input.IDs) == 0 {
		writeError(w, http.StatusBadRequest, "ids required unless all is true")
		return
	}
	n, err := h.store.Delete(r.Context(), claims.UserID, input.IDs, all)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: strconv.Itoa(n) + " notifications deleted"})
}

// Unread serves GET /users/{userId}/statuses/notify.
func (h *NotificationHandler) Unread(w http.ResponseWriter, r *http.Request) {
	n, err := h.store.Unread(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, UnreadEnvelope{Unread: n})
}

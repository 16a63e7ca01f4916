package handler

import (
	"context"
	"net/http"

	"github.com/go-notify-client/internal/domain"
	"github.com/go-notify-client/internal/transport/http/middleware"
)

type topicStore interface {
	ListTopics(ctx context.Context, uid string, limit, offset int) ([]domain.Topic, error)
}

// TopicHandler handles topic listing.
type TopicHandler struct {
	store topicStore
}

func NewTopicHandler(store topicStore) *TopicHandler { return &TopicHandler{store: store} }

// List serves GET /notify/topics. The userId query parameter must name the caller.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	uid := r.URL.Query().Get("userId")
	if uid == "" {
		uid = claims.UserID
	}
	if uid != claims.UserID {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}
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
	topics, err := h.store.ListTopics(r.Context(), uid, limit, offset)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TopicsEnvelope{Topics: topics})
}

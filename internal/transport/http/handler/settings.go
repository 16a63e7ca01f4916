package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type settingsStore interface {
	Enabled(ctx context.Context, uid, namespace string) (bool, error)
	SetEnabled(ctx context.Context, uid, namespace string, enabled bool) error
}

type settingsInput struct {
	Enabled *bool        `json:"enabled"`
	Options optionsInput `json:"options"`
}

// SettingsHandler handles the per-user notification switch.
type SettingsHandler struct {
	store settingsStore
}

func NewSettingsHandler(store settingsStore) *SettingsHandler { return &SettingsHandler{store: store} }

// Get serves GET /users/{userId}/settings/notify.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.store.Enabled(r.Context(), chi.URLParam(r, "userId"), r.URL.Query().Get("options.namespace"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SettingsEnvelope{Enabled: enabled})
}

// Put serves PUT /users/{userId}/settings/notify.
func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	var input settingsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.Enabled == nil {
		writeError(w, http.StatusBadRequest, "enabled is required")
		return
	}
	if err := h.store.SetEnabled(r.Context(), chi.URLParam(r, "userId"), input.Options.Namespace, *input.Enabled); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SettingsEnvelope{Enabled: *input.Enabled})
}

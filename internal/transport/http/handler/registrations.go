package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-notify-client/internal/domain"
	"github.com/go-notify-client/internal/infrastructure/memory"
	"github.com/go-notify-client/internal/pkg/validate"
	"github.com/go-notify-client/internal/transport/http/middleware"
)

type registrationStore interface {
	Register(ctx context.Context, r memory.Registration) (*memory.Registration, error)
	Deregister(ctx context.Context, t domain.Transport, address, uid string) error
}

type registerInput struct {
	Address   string       `json:"address" validate:"required"`
	UID       string       `json:"uid" validate:"required"`
	Transport string       `json:"transport" validate:"required"`
	Options   optionsInput `json:"options"`
	OS        string       `json:"os" validate:"required,oneof=IOS ANDROID WEB"`
}

// RegistrationHandler handles device address registration endpoints.
type RegistrationHandler struct {
	store registrationStore
}

func NewRegistrationHandler(store registrationStore) *RegistrationHandler {
	return &RegistrationHandler{store: store}
}

// Register serves POST /notify/{transport}/register.
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decode(w, r)
	if !ok {
		return
	}
	reg, err := h.store.Register(r.Context(), memory.Registration{
		Address:   input.Address,
		UID:       input.UID,
		Transport: domain.Transport(input.Transport),
		Namespace: input.Options.Namespace,
		Bundle:    input.Options.Bundle,
		OS:        domain.OS(input.OS),
	})
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

// Deregister serves POST /notify/{transport}/deregister.
func (h *RegistrationHandler) Deregister(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decode(w, r)
	if !ok {
		return
	}
	if err := h.store.Deregister(r.Context(), domain.Transport(input.Transport), input.Address, input.UID); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "deregistered"})
}

// decode reads and checks the body shared by register and deregister.
func (h *RegistrationHandler) decode(w http.ResponseWriter, r *http.Request) (*registerInput, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}
	transport := chi.URLParam(r, "transport")
	if !slices.Contains(domain.Transports, domain.Transport(transport)) {
		writeError(w, http.StatusNotFound, "unknown transport")
		return nil, false
	}
	var input registerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	if err := validate.Struct(input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	if input.Transport != transport {
		writeError(w, http.StatusBadRequest, "transport does not match path")
		return nil, false
	}
	if input.UID != claims.UserID {
		writeError(w, http.StatusForbidden, "forbidden")
		return nil, false
	}
	return &input, true
}

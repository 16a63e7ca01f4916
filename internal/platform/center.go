// Package platform abstracts the host's notification permission prompt and
// its local notification center.
package platform

import (
	"context"
	"strings"
	"sync"
)

// AuthorizationOptions is the set of capabilities requested from the user.
type AuthorizationOptions uint8

const (
	OptionBadge AuthorizationOptions = 1 << iota
	OptionSound
	OptionAlert
	OptionCarPlay
	OptionCriticalAlert
	OptionProvisional
)

// DefaultOptions is what an app usually asks for.
const DefaultOptions = OptionBadge | OptionSound | OptionAlert

func (o AuthorizationOptions) String() string {
	names := []string{"badge", "sound", "alert", "carPlay", "criticalAlert", "provisional"}
	var parts []string
	for i, name := range names {
		if o&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// ParseOptions maps names as printed by String back to options. Unknown names are ignored.
func ParseOptions(names []string) AuthorizationOptions {
	var o AuthorizationOptions
	for _, n := range names {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "badge":
			o |= OptionBadge
		case "sound":
			o |= OptionSound
		case "alert":
			o |= OptionAlert
		case "carplay":
			o |= OptionCarPlay
		case "criticalalert":
			o |= OptionCriticalAlert
		case "provisional":
			o |= OptionProvisional
		}
	}
	return o
}

// Center is the host's notification permission and delivery surface.
type Center interface {
	// RequestAuthorization prompts for opts and reports whether it was granted.
	RequestAuthorization(ctx context.Context, opts AuthorizationOptions) (bool, error)
	// RemoveAllDelivered clears every locally delivered notification.
	RemoveAllDelivered()
}

// Headless is a Center for hosts without a notification UI. It answers every
// prompt with Granted and counts clear requests.
type Headless struct {
	Granted bool

	mu      sync.Mutex
	cleared int
}

func (h *Headless) RequestAuthorization(ctx context.Context, _ AuthorizationOptions) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return h.Granted, nil
}

func (h *Headless) RemoveAllDelivered() {
	h.mu.Lock()
	h.cleared++
	h.mu.Unlock()
}

// Cleared returns how many times RemoveAllDelivered was called.
func (h *Headless) Cleared() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cleared
}

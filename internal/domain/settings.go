package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// SettingsConfig reads or writes the per-user notification switch.
// Enabled is only sent by the write operation.
type SettingsConfig struct {
	Enabled   bool
	UserID    string `validate:"required"`
	Namespace string
	Token     string `validate:"required"`
}

// SettingsResponse is the notification switch as stored by the server.
type SettingsResponse struct {
	Enabled bool `json:"enabled"`
}

// UnreadConfig requests the unread counter of a user.
type UnreadConfig struct {
	UserID    string `validate:"required"`
	Namespace string
	Bundle    string
	Token     string `validate:"required"`
}

// UnreadResponse carries the unread counter. The server encodes it either as
// a JSON number or as a string of digits.
type UnreadResponse struct {
	Unread int `json:"unread"`
}

func (u *UnreadResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		Unread json.RawMessage `json:"unread"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Unread) == 0 || string(raw.Unread) == "null" {
		return errors.New("unread: field missing")
	}
	var n int
	if err := json.Unmarshal(raw.Unread, &n); err == nil {
		if n < 0 {
			return fmt.Errorf("unread: negative count %d", n)
		}
		u.Unread = n
		return nil
	}
	var s string
	if err := json.Unmarshal(raw.Unread, &s); err != nil {
		return fmt.Errorf("unread: expected integer or numeric string, got %s", raw.Unread)
	}
	if !isDigits(s) {
		return fmt.Errorf("unread: %q is not a string of digits", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("unread: %q is out of range", s)
	}
	u.Unread = n
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

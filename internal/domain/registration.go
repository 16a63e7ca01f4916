package domain

import (
	"github.com/go-notify-client/internal/pkg/validate"
	"github.com/go-playground/validator/v10"
)

// Transport is the delivery channel a device address is registered for.
// Its wire form is the upper-case tag.
type Transport string

const (
	TransportNone     Transport = "NONE"
	TransportSystem   Transport = "SYSTEM"
	TransportFirebase Transport = "FIREBASE"
	TransportSendGrid Transport = "SEND_GRID"
	TransportTelegram Transport = "TELEGRAM"
	TransportDiscord  Transport = "DISCORD"
)

// Transports lists every known transport tag.
var Transports = []Transport{
	TransportNone, TransportSystem, TransportFirebase,
	TransportSendGrid, TransportTelegram, TransportDiscord,
}

// OS identifies the platform of a registered address.
type OS string

const (
	OSIOS     OS = "IOS"
	OSAndroid OS = "ANDROID"
	OSWeb     OS = "WEB"
)

// RegisterConfig is used for both register and deregister.
// An empty Bundle is replaced by the host application identifier when the request is built.
type RegisterConfig struct {
	Address   string    `validate:"required"` // fcm token, email, chat id
	UID       string    `validate:"required"`
	Transport Transport `validate:"required,oneof=NONE SYSTEM FIREBASE SEND_GRID TELEGRAM DISCORD"`
	Namespace string
	Bundle    string
	OS        OS     `validate:"required,oneof=IOS ANDROID WEB"`
	Token     string `validate:"required"`
}

// ListConfig pages through delivered notifications or topics.
type ListConfig struct {
	UserID    string `validate:"required"`
	Limit     int    `validate:"gte=0"`
	Offset    int    `validate:"gte=0"`
	Namespace string
	Bundle    string
	Token     string `validate:"required"`
}

// ReadConfig marks notifications as read.
type ReadConfig struct {
	IDs   []string `validate:"required,min=1,dive,required"`
	Token string   `validate:"required"`
}

// DeleteConfig removes notifications. DeleteAll ignores IDs server-side;
// otherwise at least one id is required.
type DeleteConfig struct {
	IDs       []string `validate:"dive,required"`
	DeleteAll bool
	Token     string `validate:"required"`
}

func init() {
	validate.RegisterStructValidation(func(sl validator.StructLevel) {
		cfg := sl.Current().Interface().(DeleteConfig)
		if !cfg.DeleteAll && len(cfg.IDs) == 0 {
			sl.ReportError(cfg.IDs, "IDs", "IDs", "min", "1")
		}
	}, DeleteConfig{})
}

package domain

import (
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"time"
)

// Category classifies a notification. The wire value is a plain integer.
type Category int

const (
	CategoryNone        Category = 0
	CategoryAdvertising Category = 1
	CategoryPayment     Category = 2
)

func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryAdvertising:
		return "advertising"
	case CategoryPayment:
		return "payment"
	default:
		return "unknown"
	}
}

// Notification is a server-tracked notification record.
type Notification struct {
	ID        string
	RefID     string
	Category  int
	Title     string
	Body      string
	Content   string // space-delimited; a leading URL token is the image reference
	UID       string
	CreatedAt time.Time
	UpdatedAt time.Time
	ReadAt    *time.Time
	DeletedAt *time.Time
}

// notificationJSON is the wire shape of a Notification.
type notificationJSON struct {
	ID        string     `json:"id"`
	RefID     string     `json:"ref_id"`
	Category  int        `json:"category"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	Content   *string    `json:"content,omitempty"`
	UID       string     `json:"uid"`
	CreatedAt *Timestamp `json:"created_at"`
	UpdatedAt *Timestamp `json:"updated_at"`
	ReadAt    *Timestamp `json:"read_at,omitempty"`
	DeletedAt *Timestamp `json:"deleted_at,omitempty"`
}

// CategoryKind returns the Category for the raw category value.
func (n Notification) CategoryKind() Category { return Category(n.Category) }

// IsRead reports whether the notification has a read timestamp.
func (n Notification) IsRead() bool { return n.ReadAt != nil }

// ImageURL returns the first token of Content when it parses as an absolute URL.
func (n Notification) ImageURL() (*url.URL, bool) {
	fields := strings.Fields(n.Content)
	if len(fields) == 0 {
		return nil, false
	}
	u, err := url.Parse(fields[0])
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, false
	}
	return u, true
}

func (n Notification) MarshalJSON() ([]byte, error) {
	content := n.Content
	return json.Marshal(notificationJSON{
		ID:        n.ID,
		RefID:     n.RefID,
		Category:  n.Category,
		Title:     n.Title,
		Body:      n.Body,
		Content:   &content,
		UID:       n.UID,
		CreatedAt: timestampPtr(&n.CreatedAt),
		UpdatedAt: timestampPtr(&n.UpdatedAt),
		ReadAt:    timestampPtr(n.ReadAt),
		DeletedAt: timestampPtr(n.DeletedAt),
	})
}

func (n *Notification) UnmarshalJSON(data []byte) error {
	var raw notificationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.CreatedAt == nil || raw.UpdatedAt == nil {
		return errors.New("notification: created_at and updated_at are required")
	}
	*n = Notification{
		ID:        raw.ID,
		RefID:     raw.RefID,
		Category:  raw.Category,
		Title:     raw.Title,
		Body:      raw.Body,
		UID:       raw.UID,
		CreatedAt: raw.CreatedAt.Time(),
		UpdatedAt: raw.UpdatedAt.Time(),
		ReadAt:    raw.ReadAt.TimePtr(),
		DeletedAt: raw.DeletedAt.TimePtr(),
	}
	if raw.Content != nil {
		n.Content = *raw.Content
	}
	return nil
}

// Topic is a subscription topic a user receives notifications for.
type Topic struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	UID  string `json:"uid"`
}

// NotifiesResponse is the envelope of list and mark-as-read responses.
type NotifiesResponse struct {
	Notifies []Notification `json:"notifies"`
}

// TopicsResponse is the envelope of the list-topics response.
type TopicsResponse struct {
	Topics []Topic `json:"topics"`
}

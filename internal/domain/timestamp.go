package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the extended ISO-8601 form written on the wire. The
// fraction always has nine digits so encoding never drops precision.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Timestamp is a time.Time that (de)serializes as ISO-8601 with fractional seconds.
// Values without a fractional part are rejected.
type Timestamp time.Time

// ParseTimestamp parses s as ISO-8601 with mandatory fractional seconds.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	// Seconds are at s[17:19]; a fraction must follow immediately.
	if len(s) < 21 || s[19] != '.' {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: missing fractional seconds", s)
	}
	return t, nil
}

func (t Timestamp) Time() time.Time { return time.Time(t) }

func (t *Timestamp) TimePtr() *time.Time {
	if t == nil {
		return nil
	}
	v := time.Time(*t)
	return &v
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format(TimestampLayout))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}

func timestampPtr(t *time.Time) *Timestamp {
	if t == nil {
		return nil
	}
	ts := Timestamp(*t)
	return &ts
}

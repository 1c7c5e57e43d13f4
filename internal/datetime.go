package internal

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateTime accepts a date-only value ("2006-01-02", UTC midnight), an RFC3339 timestamp or null.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t.UTC()}
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	var err error
	var s string

	if string(b) == "null" {
		d.Time = time.Time{}

		return nil
	}

	if err = json.Unmarshal(b, &s); err != nil {
		return err
	}

	d.Time, err = ParseDateTime(s)

	return err
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(d.Time.Format(time.RFC3339Nano))
}

// ParseDateTime parses the formats accepted by DateTime. An empty string yields the zero time.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	if len(s) == len(time.DateOnly) {
		if t, err := time.ParseInLocation(time.DateOnly, s, time.UTC); err == nil {
			return t, nil
		}
	}

	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid datetime %q (expected %s or RFC3339)", s, time.DateOnly)
}

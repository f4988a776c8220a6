// Package timestamp decodes the service's record timestamps.
package timestamp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// zoneless layouts are tried after RFC 3339. The service stamps records with
// naive UTC datetimes, so a missing offset means UTC.
var zoneless = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// Time is a time.Time that also decodes timestamps without a zone offset.
// It encodes as RFC 3339.
type Time struct {
	time.Time
}

// New wraps t.
func New(t time.Time) Time { return Time{Time: t} }

// Ptr returns a pointer to a wrapped t.
func Ptr(t time.Time) *Time {
	v := New(t)
	return &v
}

// Parse reads an RFC 3339 timestamp, or a zoneless one as UTC.
func Parse(s string) (Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return New(t), nil
	}
	for _, layout := range zoneless {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return New(t), nil
		}
	}
	return Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// UnmarshalJSON accepts a JSON string or null.
func (t *Time) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	return t.UnmarshalText([]byte(s))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Time) UnmarshalText(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		*t = Time{}
		return nil
	}
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// UnmarshalYAML accepts a scalar timestamp or null.
func (t *Time) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("timestamp must be a scalar, got kind %d", value.Kind)
	}
	if value.ShortTag() == "!!null" {
		*t = Time{}
		return nil
	}
	return t.UnmarshalText([]byte(value.Value))
}

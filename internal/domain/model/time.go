package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for date-only fields (joined_date, start_date...).
const DateLayout = "2006-01-02"

// timestampLayouts are accepted wire formats for datetime fields. The API
// emits ISO 8601 and omits the zone designator on naive values, which the
// stock time.Time decoder rejects.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// Timestamp is a time.Time that tolerates the API's zone-less datetimes.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON decodes a JSON string using the accepted timestamp layouts.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("parse timestamp %q: %w", s, lastErr)
}

// MarshalJSON encodes the timestamp as RFC 3339.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339Nano) + `"`), nil
}

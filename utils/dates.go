package utils

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate accepts the formats browsers and API clients send for a date
// ("2006-01-02", RFC3339, "01/02/2006", ...). Blank input yields nil.
func ParseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

package entitlements

import (
	"strings"
	"time"
)

// expiryLayouts are tried in order; the first successful parse wins.
// Zone-less layouts are interpreted as UTC so comparisons share one
// reference frame with the gate's clock.
var expiryLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseExpiry parses an expiry timestamp in any accepted encoding.
// Returns false when no layout matches.
func ParseExpiry(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range expiryLayouts {
		var (
			ts  time.Time
			err error
		)
		if layout == time.RFC3339 {
			ts, err = time.Parse(layout, raw)
		} else {
			ts, err = time.ParseInLocation(layout, raw, time.UTC)
		}
		if err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

package utils

import (
	"cfs-service/internal/pkg/constvars"
	"time"
)

// FormatExportTimestamp renders t in UTC as YYYY-MM-DD HH:MM:SS.
func FormatExportTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(constvars.ExportTimestampLayout)
}

// ParseLegacyTimestamp accepts the RFC 3339 strings and epoch milliseconds
// written by older clients.
func ParseLegacyTimestamp(value string, millis int64) (time.Time, bool) {
	if value != "" {
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, constvars.ExportTimestampLayout} {
			if t, err := time.Parse(layout, value); err == nil {
				return t.UTC(), true
			}
		}
	}
	if millis > 0 {
		return time.UnixMilli(millis).UTC(), true
	}
	return time.Time{}, false
}

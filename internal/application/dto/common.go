package dto

import "time"

// FormatTime serializa timestamps al formato string del contrato (RFC 3339, UTC).
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

package store

import "github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/domain"

// List limits.
const (
	DefaultListLimit = 25
	MaxListLimit     = 200
)

// ClampLimit maps a requested limit onto [1, MaxListLimit], with
// non-positive values meaning DefaultListLimit.
func ClampLimit(n int) int {
	switch {
	case n <= 0:
		return DefaultListLimit
	case n > MaxListLimit:
		return MaxListLimit
	default:
		return n
	}
}

// Sanitize returns a copy of payload without the reserved keys. Anything
// that isn't a JSON object sanitizes to an empty record.
func Sanitize(payload any) domain.Record {
	var src map[string]any
	switch p := payload.(type) {
	case domain.Record:
		src = p
	case map[string]any:
		src = p
	default:
		return domain.Record{}
	}

	out := make(domain.Record, len(src))
	for k, v := range src {
		if domain.IsReserved(k) {
			continue
		}
		out[k] = v
	}
	return out
}

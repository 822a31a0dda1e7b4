package domain

import "fmt"

// Record is a schema-less document belonging to one collection.
type Record map[string]any

// System-managed keys. Clients never write them.
const (
	KeyID        = "_id"
	KeyVersion   = "__v"
	KeyCreatedAt = "createdAt"
	KeyUpdatedAt = "updatedAt"
)

// ReservedKeys are stripped from every write payload.
var ReservedKeys = []string{KeyID, KeyVersion, KeyCreatedAt, KeyUpdatedAt}

// IsReserved reports whether key is system-managed.
func IsReserved(key string) bool {
	switch key {
	case KeyID, KeyVersion, KeyCreatedAt, KeyUpdatedAt:
		return true
	}
	return false
}

// ID returns the record identifier, accepting both "_id" and "id".
func (r Record) ID() string {
	if v, ok := r[KeyID]; ok && v != nil {
		return fmt.Sprint(v)
	}
	if v, ok := r["id"]; ok && v != nil {
		return fmt.Sprint(v)
	}
	return ""
}

// String returns r[key] as a string, or "" when absent or not a string.
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Clone returns a shallow copy.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// ============================================================================
// backend/internal/localstore/users.go
// Per-student record storage over the key-value store
// ============================================================================

package localstore

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"progresstrack/backend/internal/shared"
	"progresstrack/backend/internal/store"
)

const (
	// UserKeyPrefix namespaces student records inside the key-value store:
	// one "user_<studentId>" entry per student.
	UserKeyPrefix = "user_"

	// DefaultPassword fills in records persisted before the password field
	// existed so they stay usable after load.
	DefaultPassword = "password123"
)

// Users is the student-record layer of the local persistence adapter.
type Users struct {
	kv *KV
}

// NewUsers wraps kv with the student-record layer.
func NewUsers(kv *KV) *Users {
	return &Users{kv: kv}
}

// SaveUser serializes the full student record under its id key.
// Idempotent: overwrites any prior value for the same id.
func (u *Users) SaveUser(doc store.Document) error {
	id, err := shared.GetString(doc["id"])
	if err != nil || id == "" {
		return fmt.Errorf("cannot save user record without id")
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode user record %s: %w", id, err)
	}

	u.kv.Set(UserKeyPrefix+id, string(raw))
	return nil
}

// RemoveUser deletes the keyed entry. No-op if absent.
func (u *Users) RemoveUser(studentID string) {
	u.kv.Delete(UserKeyPrefix + studentID)
}

// ListUsers scans all stored keys and reconstructs the student records.
// A record that fails to parse or lacks id/name/email is skipped and
// logged; partial corruption never prevents loading the remaining valid
// records. Optional fields are defaulted so older records remain usable.
func (u *Users) ListUsers() []store.Document {
	users := make([]store.Document, 0)

	for _, key := range u.kv.Keys() {
		if !strings.HasPrefix(key, UserKeyPrefix) {
			continue
		}

		raw, ok := u.kv.Get(key)
		if !ok {
			continue
		}

		var doc store.Document
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			log.Printf("Warning: error parsing user record for key %s: %v", key, err)
			continue
		}

		if err := shared.ValidateRequiredFields(doc, []string{"id", "name", "email"}); err != nil {
			log.Printf("Warning: skipping user record for key %s: %v", key, err)
			continue
		}

		record := store.Document{
			"id":       doc["id"],
			"name":     doc["name"],
			"email":    doc["email"],
			"password": shared.GetStringOrDefault(doc["password"], DefaultPassword),
			"courses":  normalizeCourses(doc["courses"]),
		}
		// Key absence is meaningful downstream: a record stored without
		// an overall progress value gets it derived from its courses.
		if _, present := doc["overallProgress"]; present {
			record["overallProgress"] = shared.GetIntOrDefault(doc["overallProgress"], 0)
		}
		users = append(users, record)
	}

	return users
}

// normalizeCourses coerces the embedded courses value to a slice of entry
// maps, defaulting to empty when absent or malformed.
func normalizeCourses(value interface{}) []interface{} {
	entries, err := shared.GetDocSlice(value)
	if err != nil {
		return []interface{}{}
	}
	raw := make([]interface{}, 0, len(entries))
	for _, entry := range entries {
		raw = append(raw, entry)
	}
	return raw
}

// ============================================================================
// backend/internal/shared/helpers.go
// Type conversion, validation and id generation helpers for untyped
// document records
// ============================================================================

package shared

import (
	"fmt"
	"time"
)

// ============================================================================
// Type Conversion Helpers
// ============================================================================

// GetString safely extracts a string from a document value
func GetString(value interface{}) (string, error) {
	if str, ok := value.(string); ok {
		return str, nil
	}
	return "", fmt.Errorf("cannot convert %T to string", value)
}

// GetInt safely extracts an int from a document value (handles int, int32,
// int64 and the float64 produced by JSON decoding)
func GetInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("cannot convert %T to int", value)
	}
}

// GetBool safely extracts a bool from a document value
func GetBool(value interface{}) (bool, error) {
	if b, ok := value.(bool); ok {
		return b, nil
	}
	return false, fmt.Errorf("cannot convert %T to bool", value)
}

// GetStringOrDefault extracts a string, falling back to def when the value
// is absent or not a string
func GetStringOrDefault(value interface{}, def string) string {
	if str, err := GetString(value); err == nil {
		return str
	}
	return def
}

// GetIntOrDefault extracts an int, falling back to def when the value is
// absent or not numeric
func GetIntOrDefault(value interface{}, def int) int {
	if n, err := GetInt(value); err == nil {
		return n
	}
	return def
}

// GetDocSlice safely extracts a slice of map documents from a document
// value ([]interface{} of maps, or []map[string]interface{})
func GetDocSlice(value interface{}) ([]map[string]interface{}, error) {
	switch v := value.(type) {
	case []map[string]interface{}:
		return v, nil
	case []interface{}:
		result := make([]map[string]interface{}, 0, len(v))
		for _, item := range v {
			if doc, ok := item.(map[string]interface{}); ok {
				result = append(result, doc)
			}
		}
		return result, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to []map[string]interface{}", value)
	}
}

// ============================================================================
// Validation Helpers
// ============================================================================

// ValidateRequiredFields checks that every required field exists in the
// document and is non-empty when it is a string
func ValidateRequiredFields(doc map[string]interface{}, requiredFields []string) error {
	for _, field := range requiredFields {
		val, exists := doc[field]
		if !exists {
			return fmt.Errorf("missing required field: %s", field)
		}
		if str, ok := val.(string); ok && str == "" {
			return fmt.Errorf("missing required field: %s", field)
		}
	}
	return nil
}

// ValidateRegistration checks the self-registration form inputs before any
// collection call is attempted
func ValidateRegistration(name, email, password, confirmPassword string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if password != confirmPassword {
		return fmt.Errorf("passwords do not match")
	}
	return nil
}

// IsValidRole checks if a user role is valid
func IsValidRole(role string) bool {
	validRoles := map[string]bool{
		"Student": true, "Admin": true,
	}
	return validRoles[role]
}

// ============================================================================
// ID Generation Helpers
// ============================================================================

// GenerateID generates a unique ID with prefix and timestamp
func GenerateID(prefix string) string {
	timestamp := time.Now().UnixNano()
	return fmt.Sprintf("%s-%d", prefix, timestamp)
}

// GenerateStudentID generates a student record ID
func GenerateStudentID() string {
	return GenerateID("student")
}

// GenerateCourseID generates a course record ID
func GenerateCourseID() string {
	return GenerateID("course")
}

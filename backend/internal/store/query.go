// ============================================================================
// backend/internal/store/query.go
// Tagged filter and update variants for collection operations
// ============================================================================

package store

import "progresstrack/backend/internal/shared"

// FilterKind discriminates the supported filter shapes. The contract is
// deliberately narrow: a filter matches on exactly one recognized key.
type FilterKind int

const (
	// FilterNone matches nothing. The zero Filter has this kind, so an
	// uninitialized filter never matches by accident.
	FilterNone FilterKind = iota

	// FilterByID matches a record whose id equals the filter value.
	FilterByID

	// FilterByEmail matches a record whose email equals the filter value.
	FilterByEmail

	// FilterByCourseID matches a record with an embedded course-progress
	// entry for the given course id (the dotted "courses.id" lookup).
	FilterByCourseID
)

// Filter selects at most one recognized key to match on. Compound filters
// are not supported and yield no match.
type Filter struct {
	Kind  FilterKind
	Value string
}

// ByID builds an id-equality filter.
func ByID(id string) Filter {
	return Filter{Kind: FilterByID, Value: id}
}

// ByEmail builds an email-equality filter.
func ByEmail(email string) Filter {
	return Filter{Kind: FilterByEmail, Value: email}
}

// ByCourseID builds an embedded course-membership filter.
func ByCourseID(courseID string) Filter {
	return Filter{Kind: FilterByCourseID, Value: courseID}
}

// Matches reports whether doc satisfies the filter.
func (f Filter) Matches(doc Document) bool {
	switch f.Kind {
	case FilterByID:
		id, err := shared.GetString(doc["id"])
		return err == nil && id == f.Value
	case FilterByEmail:
		email, err := shared.GetString(doc["email"])
		return err == nil && email == f.Value
	case FilterByCourseID:
		entries, err := shared.GetDocSlice(doc["courses"])
		if err != nil {
			return false
		}
		for _, entry := range entries {
			if id, err := shared.GetString(entry["id"]); err == nil && id == f.Value {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// UpdateKind discriminates the supported update operators.
type UpdateKind int

const (
	// UpdateSet shallow-merges the given fields into the matched record.
	UpdateSet UpdateKind = iota

	// UpdatePush appends one entry to the matched record's embedded
	// courses sequence. Only meaningful on students matched by id.
	UpdatePush
)

// Update is a tagged update operation.
type Update struct {
	Kind   UpdateKind
	Fields map[string]interface{} // UpdateSet
	Course shared.CourseProgress  // UpdatePush
}

// SetFields builds a shallow-merge update.
func SetFields(fields map[string]interface{}) Update {
	return Update{Kind: UpdateSet, Fields: fields}
}

// PushCourse builds an append-to-courses update.
func PushCourse(entry shared.CourseProgress) Update {
	return Update{Kind: UpdatePush, Course: entry}
}

// Apply mutates doc in place according to the update and reports whether
// the operation was applicable to the record.
func (u Update) Apply(doc Document) bool {
	switch u.Kind {
	case UpdateSet:
		for k, v := range u.Fields {
			doc[k] = v
		}
		return true
	case UpdatePush:
		entries, err := shared.GetDocSlice(doc["courses"])
		if err != nil {
			entries = nil
		}
		raw := make([]interface{}, 0, len(entries)+1)
		for _, entry := range entries {
			raw = append(raw, entry)
		}
		raw = append(raw, map[string]interface{}(CourseProgressToDocument(u.Course)))
		doc["courses"] = raw
		return true
	default:
		return false
	}
}

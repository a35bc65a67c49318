// Package marketplace defines the FundiConnect domain entities as consumed
// from the platform REST API: jobs, proposals, users, and the service
// taxonomy, together with their lifecycle enumerations.
//
// All types in this package are plain data decoded from API responses. The
// client never owns this state; it reads snapshots and re-fetches after
// mutations.
package marketplace

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidRef is returned when a reference field is neither a bare
// identifier string nor an embedded document.
var ErrInvalidRef = errors.New("reference must be a string id or an embedded document")

// EntityRef is a reference to another entity that the API may populate
// either as a bare identifier string ("64ab...") or as an embedded document
// ({"_id": "64ab...", "name": ...}), depending on which endpoint produced
// the payload.
//
// Comparisons must always go through ID() so the two representations are
// interchangeable. The zero EntityRef means "absent" (e.g., a job with no
// fundi assigned yet).
type EntityRef struct {
	id       string
	embedded map[string]json.RawMessage
}

// Ref creates a bare reference from an identifier.
func Ref(id string) EntityRef {
	return EntityRef{id: id}
}

// ID returns the normalized identifier, or "" for an absent reference.
func (r EntityRef) ID() string {
	return r.id
}

// IsZero reports whether the reference is absent.
func (r EntityRef) IsZero() bool {
	return r.id == "" && r.embedded == nil
}

// Is reports whether the reference resolves to the given identifier.
// An absent reference never matches, including against "".
func (r EntityRef) Is(id string) bool {
	return id != "" && r.id == id
}

// StringField returns a string field from the embedded document, or "" when
// the reference is bare or the field is missing. Used for display
// conveniences such as the customer name on a populated job.
func (r EntityRef) StringField(name string) string {
	raw, ok := r.embedded[name]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// UnmarshalJSON accepts null, a bare identifier string, or an embedded
// document carrying "_id" (or "id"). Any other shape is rejected with
// ErrInvalidRef.
func (r *EntityRef) UnmarshalJSON(data []byte) error {
	switch {
	case len(data) == 0 || string(data) == "null":
		*r = EntityRef{}
		return nil
	case data[0] == '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = EntityRef{id: id}
		return nil
	case data[0] == '{':
		var doc map[string]json.RawMessage
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		id, err := embeddedID(doc)
		if err != nil {
			return err
		}
		*r = EntityRef{id: id, embedded: doc}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidRef, previewJSON(data))
	}
}

// MarshalJSON emits the representation the reference was decoded from:
// the embedded document when present, otherwise the bare identifier.
// Absent references marshal as null.
func (r EntityRef) MarshalJSON() ([]byte, error) {
	if r.embedded != nil {
		return json.Marshal(r.embedded)
	}
	if r.id == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.id)
}

func embeddedID(doc map[string]json.RawMessage) (string, error) {
	for _, key := range []string{"_id", "id"} {
		raw, ok := doc[key]
		if !ok {
			continue
		}
		var id string
		if err := json.Unmarshal(raw, &id); err != nil {
			return "", fmt.Errorf("%w: %s is not a string", ErrInvalidRef, key)
		}
		return id, nil
	}
	// Embedded documents without an identifier are tolerated (the API
	// sometimes inlines denormalized display data); they normalize to "".
	return "", nil
}

func previewJSON(data []byte) string {
	const max = 32
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}

package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Server-managed document keys. Client-supplied values for them are dropped.
const (
	FieldID        = "_id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

// ErrNotAnObject is returned by DecodeFields when the input is valid JSON but
// not an object.
var ErrNotAnObject = errors.New("document must be a JSON object")

// Fields is the client-defined part of an inventory document. Any field
// name is accepted and stored verbatim.
type Fields map[string]Value

// DecodeFields parses a JSON object into Fields.
func DecodeFields(data []byte) (Fields, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrNotAnObject
	}

	f := Fields{}
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return nil, err
	}
	return f, nil
}

// Clone returns a shallow copy; Values are immutable so this is a full copy.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Without returns a copy of f minus the given keys.
func (f Fields) Without(keys ...string) Fields {
	out := f.Clone()
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Merge returns a copy of f with every key of patch overwritten. Keys not in
// patch are left as they are.
func (f Fields) Merge(patch Fields) Fields {
	out := f.Clone()
	for k, v := range patch {
		out[k] = v
	}
	return out
}

// Equal reports whether both documents hold the same keys and values.
func (f Fields) Equal(o Fields) bool {
	if len(f) != len(o) {
		return false
	}
	for k, v := range f {
		ov, ok := o[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Item is a stored inventory document.
type Item struct {
	ID        string
	Fields    Fields
	CreatedAt time.Time
	// UpdatedAt is nil until the first update.
	UpdatedAt *time.Time
}

// MarshalJSON renders the item as one flat object: the client fields plus
// _id, created_at and, once set, updated_at.
func (i Item) MarshalJSON() ([]byte, error) {
	out := make(map[string]Value, len(i.Fields)+3)
	for k, v := range i.Fields {
		out[k] = v
	}
	out[FieldID] = String(i.ID)
	out[FieldCreatedAt] = Time(i.CreatedAt)
	if i.UpdatedAt != nil {
		out[FieldUpdatedAt] = Time(*i.UpdatedAt)
	} else {
		delete(out, FieldUpdatedAt)
	}
	return json.Marshal(out)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (i *Item) UnmarshalJSON(b []byte) error {
	f, err := DecodeFields(b)
	if err != nil {
		return err
	}

	id, ok := f[FieldID].Str()
	if !ok {
		return fmt.Errorf("item: missing %s", FieldID)
	}

	created, err := parseTimeField(f, FieldCreatedAt)
	if err != nil {
		return err
	}
	var updated *time.Time
	if _, ok := f[FieldUpdatedAt]; ok {
		t, err := parseTimeField(f, FieldUpdatedAt)
		if err != nil {
			return err
		}
		updated = &t
	}

	*i = Item{
		ID:        id,
		Fields:    f.Without(FieldID, FieldCreatedAt, FieldUpdatedAt),
		CreatedAt: created,
		UpdatedAt: updated,
	}
	return nil
}

func parseTimeField(f Fields, key string) (time.Time, error) {
	s, ok := f[key].Str()
	if !ok {
		return time.Time{}, fmt.Errorf("item: %s is not a timestamp string", key)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("item: %s: %w", key, err)
	}
	return t, nil
}

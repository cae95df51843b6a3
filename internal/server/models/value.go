// Package models defines server-side data models persisted by the stores.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindTime
	// KindJSON holds a nested array or object kept verbatim (compacted).
	KindJSON
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	case KindJSON:
		return "json"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is one field of an inventory document. The zero Value is null.
//
// Numbers keep their literal text so that client input round-trips
// unchanged. Time values are only produced by the server; a client string
// that looks like a timestamp stays a string.
type Value struct {
	kind Kind
	str  string
	b    bool
	t    time.Time
}

func Null() Value { return Value{} }

func String(s string) Value { return Value{kind: KindString, str: s} }

func Number(n json.Number) Value { return Value{kind: KindNumber, str: n.String()} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func Time(t time.Time) Value { return Value{kind: KindTime, t: t.UTC()} }

// RawJSON wraps a nested JSON array or object.
func RawJSON(raw json.RawMessage) (Value, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return Value{}, err
	}
	return Value{kind: KindJSON, str: buf.String()}, nil
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the string payload if v is a string.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

func (v Value) Num() (json.Number, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return json.Number(v.str), true
}

func (v Value) Boolean() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

func (v Value) TimeValue() (time.Time, bool) {
	if v.kind != KindTime {
		return time.Time{}, false
	}
	return v.t, true
}

func (v Value) Raw() (json.RawMessage, bool) {
	if v.kind != KindJSON {
		return nil, false
	}
	return json.RawMessage(v.str), true
}

// Equal reports whether both values hold the same variant and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindTime:
		return v.t.Equal(o.t)
	default:
		return v.str == o.str
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindString:
		return json.Marshal(v.str)
	case KindNumber, KindJSON:
		return []byte(v.str), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindTime:
		return json.Marshal(v.t.Format(time.RFC3339Nano))
	default:
		return nil, fmt.Errorf("marshal value: unknown %s", v.kind)
	}
}

func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return errors.New("unmarshal value: empty input")
	}

	switch b[0] {
	case 'n':
		if string(b) != "null" {
			return fmt.Errorf("unmarshal value: invalid literal %q", b)
		}
		*v = Null()
	case 't', 'f':
		var x bool
		if err := json.Unmarshal(b, &x); err != nil {
			return err
		}
		*v = Bool(x)
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = String(s)
	case '{', '[':
		raw, err := RawJSON(b)
		if err != nil {
			return err
		}
		*v = raw
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*v = Number(n)
	}
	return nil
}

package datamap

import (
	json "github.com/goccy/go-json"
)

// Value is the closed set of types a record field can hold: String, Number,
// Bool, Null, List, or a nested *Dict. Field values are opaque payload to the
// DataMap; only the name field has interpreted structure.
type Value interface {
	isValue()
}

// String is a string field value.
type String string

// Number is a numeric field value with JSON number semantics.
type Number float64

// Bool is a boolean field value.
type Bool bool

// Null is an explicit null field value.
type Null struct{}

// List is an ordered sequence of field values.
type List []Value

func (String) isValue() {}
func (Number) isValue() {}
func (Bool) isValue()   {}
func (Null) isValue()   {}
func (List) isValue()   {}
func (*Dict) isValue()  {}

// MarshalJSON encodes the string value.
func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// MarshalJSON encodes the numeric value. Integral values are emitted without
// a fractional part.
func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(n))
}

// MarshalJSON encodes the boolean value.
func (b Bool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

// MarshalJSON encodes a JSON null.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalJSON encodes the list elements in order.
func (l List) MarshalJSON() ([]byte, error) {
	return json.Marshal([]Value(l))
}

// cloneValue deep-copies the mutable members of the Value union. Scalars are
// immutable and returned as-is.
func cloneValue(v Value) Value {
	switch t := v.(type) {
	case *Dict:
		return t.clone()
	case List:
		out := make(List, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

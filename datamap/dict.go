package datamap

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Dict is an insertion-ordered mapping from string keys to Values. It is the
// shape of record fields, of nested map values, and of raw construction
// input. A new key is appended at the end of the key order; overwriting an
// existing key keeps its position.
type Dict struct {
	keys   []string
	values map[string]Value
}

// NewDict creates an empty ordered mapping.
func NewDict() *Dict {
	return &Dict{values: make(map[string]Value)}
}

// Set inserts or overwrites a key and returns the Dict for chaining.
func (d *Dict) Set(key string, value Value) *Dict {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
	return d
}

// Get returns the value for a key and whether it is present.
func (d *Dict) Get(key string) (Value, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Delete removes a key, reporting whether it was present.
func (d *Dict) Delete(key string) bool {
	if _, ok := d.values[key]; !ok {
		return false
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of keys.
func (d *Dict) Len() int {
	return len(d.keys)
}

// moveAfter repositions key immediately after anchor, preserving the relative
// order of all other keys. Both keys must be present; key == anchor is a no-op.
func (d *Dict) moveAfter(key, anchor string) {
	if key == anchor {
		return
	}
	reordered := make([]string, 0, len(d.keys))
	for _, k := range d.keys {
		if k == key {
			continue
		}
		reordered = append(reordered, k)
		if k == anchor {
			reordered = append(reordered, key)
		}
	}
	d.keys = reordered
}

// clone deep-copies the mapping and every nested mutable value.
func (d *Dict) clone() *Dict {
	out := &Dict{
		keys:   make([]string, len(d.keys)),
		values: make(map[string]Value, len(d.values)),
	}
	copy(out.keys, d.keys)
	for k, v := range d.values {
		out.values[k] = cloneValue(v)
	}
	return out
}

// MarshalJSON encodes the mapping as a JSON object with keys in insertion
// order.
func (d *Dict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(d.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// Header is the ordered set of fields declared by a document's frontmatter.
//
// Field names are unique. Values are whatever yaml.v2 decodes: scalars,
// []interface{} for lists and yaml.MapSlice for nested mappings.
type Header struct {
	keys   []string
	values map[string]interface{}
}

// NewHeader builds an empty header
func NewHeader() *Header {
	return &Header{values: make(map[string]interface{})}
}

// HeaderFrom builds a header from an ordered yaml mapping. Repeated keys keep
// their first position and their last value.
func HeaderFrom(items yaml.MapSlice) *Header {
	h := NewHeader()
	for _, item := range items {
		h.Set(fmt.Sprint(item.Key), item.Value)
	}
	return h
}

// Get a field value
func (h *Header) Get(key string) (interface{}, bool) {
	if h == nil {
		return nil, false
	}
	v, ok := h.values[key]
	return v, ok
}

// Has tells if a field is declared
func (h *Header) Has(key string) bool {
	_, ok := h.Get(key)
	return ok
}

// String returns a field rendered as a string.
//
// Lists and mappings are not scalars: ok is false for those, as for missing fields.
func (h *Header) String(key string) (string, bool) {
	v, ok := h.Get(key)
	if !ok {
		return "", false
	}
	return Scalar(v)
}

// Set a field. An existing field keeps its position.
func (h *Header) Set(key string, value interface{}) {
	if _, exists := h.values[key]; !exists {
		h.keys = append(h.keys, key)
	}
	h.values[key] = value
}

// Delete a field
func (h *Header) Delete(key string) {
	if _, exists := h.values[key]; !exists {
		return
	}
	delete(h.values, key)
	for i, k := range h.keys {
		if k == key {
			h.keys = append(h.keys[:i:i], h.keys[i+1:]...)
			break
		}
	}
}

// Keys in declaration order
func (h *Header) Keys() []string {
	if h == nil {
		return nil
	}
	return append([]string(nil), h.keys...)
}

// Len is the number of fields
func (h *Header) Len() int {
	if h == nil {
		return 0
	}
	return len(h.keys)
}

// Clone makes a shallow copy of the header: values are shared, fields are not.
func (h *Header) Clone() *Header {
	c := NewHeader()
	if h == nil {
		return c
	}
	for _, k := range h.keys {
		c.Set(k, h.values[k])
	}
	return c
}

// MapSlice returns the header as an ordered yaml mapping
func (h *Header) MapSlice() yaml.MapSlice {
	if h == nil {
		return yaml.MapSlice{}
	}
	res := make(yaml.MapSlice, 0, len(h.keys))
	for _, k := range h.keys {
		res = append(res, yaml.MapItem{Key: k, Value: h.values[k]})
	}
	return res
}

// Scalar renders a scalar value as a string. Nil, lists and mappings are not scalars.
func Scalar(v interface{}) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case []interface{}, yaml.MapSlice, map[interface{}]interface{}, map[string]interface{}:
		return "", false
	default:
		return strings.TrimSpace(fmt.Sprint(val)), true
	}
}

package gn

import (
	"bytes"
	"fmt"
)

// Field is a single "key = value" assignment in a target body.
type Field struct {
	Key   string
	Value Value
}

// Target is one GN target definition. Body fields keep their insertion
// order; the serializer performs no reordering, deduplication or schema
// validation, that contract belongs to the converters.
type Target struct {
	Type   string
	Name   string
	fields []Field
}

// Set appends a field to the target body.
func (t *Target) Set(key string, v Value) {
	t.fields = append(t.fields, Field{Key: key, Value: v})
}

// Fields returns the body fields in insertion order.
func (t *Target) Fields() []Field { return t.fields }

// Format renders the target definition as a GN block:
//
//	type("name") {
//	  key = value
//	}
func (t *Target) Format() (string, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s(%q) {\n", t.Type, t.Name)
	for _, f := range t.fields {
		val, err := f.Value.format()
		if err != nil {
			return "", fmt.Errorf("field %s of target %s: %w", f.Key, t.Name, err)
		}
		fmt.Fprintf(&buf, "  %s = %s\n", f.Key, val)
	}
	buf.WriteString("}")
	return buf.String(), nil
}

package gn

import (
	"bytes"
	"fmt"
)

type valueKind int

const (
	valueInvalid valueKind = iota
	valueString
	valueList
)

// Value is a GN field value: a string scalar or a list of strings. The
// zero Value has no kind and fails to serialize.
type Value struct {
	kind valueKind
	str  string
	list []string
}

// String returns a scalar string Value.
func String(s string) Value { return Value{kind: valueString, str: s} }

// List returns a string-list Value.
func List(elems []string) Value { return Value{kind: valueList, list: elems} }

// Strings returns the elements of a list value, or nil for other kinds.
func (v Value) Strings() []string { return v.list }

// format renders the value in GN-friendly, double-quoted form. Lists are
// serialized in the prettiest manner for their length: empty on one line,
// a single element inline, and longer lists one element per line.
func (v Value) format() (string, error) {
	switch v.kind {
	case valueString:
		return fmt.Sprintf("%q", v.str), nil
	case valueList:
		switch len(v.list) {
		case 0:
			return "[]", nil
		case 1:
			return fmt.Sprintf("[ %q ]", v.list[0]), nil
		default:
			var buf bytes.Buffer
			buf.WriteString("[\n")
			for i, elem := range v.list {
				fmt.Fprintf(&buf, "    %q", elem)
				if i < len(v.list)-1 {
					buf.WriteString(",")
				}
				buf.WriteString("\n")
			}
			buf.WriteString("  ]")
			return buf.String(), nil
		}
	default:
		return "", fmt.Errorf("could not serialize value %#v", v)
	}
}

// Package gn builds and renders GN target definitions for the generated
// BUILD.gn file.
package gn

import (
	"fmt"
	"strings"
)

// TargetName converts an SDK artifact name into a valid GN target name by
// substituting invalid characters (hyphens become underscores). Dotted
// names are not valid here; FIDL libraries use FidlTargetName instead.
func TargetName(name string) (string, error) {
	if strings.Contains(name, ".") {
		return "", fmt.Errorf("invalid target name %q: must not contain '.'", name)
	}
	return strings.ReplaceAll(name, "-", "_"), nil
}

// FidlTargetName converts a FIDL library name consisting of dot-delimited
// namespaces and a package name into a single underscore-delimited GN
// target name. For convenience, the "fuchsia." namespace is treated as
// top-level.
func FidlTargetName(name string) (string, error) {
	if strings.Contains(name, "-") {
		return "", fmt.Errorf("invalid FIDL target name %q: must not contain '-'", name)
	}
	name = strings.TrimPrefix(name, "fuchsia.")
	return strings.ReplaceAll(name, ".", "_"), nil
}

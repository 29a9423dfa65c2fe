// Package convert maps SDK artifact manifests to GN target definitions.
package convert

import (
	"fmt"
	"strings"

	"github.com/fuchsia-tools/gendefs/internal/gn"
	"github.com/fuchsia-tools/gendefs/internal/sdk"
)

type convertFunc func(*sdk.Artifact) (*gn.Target, error)

// converters maps manifest types to conversion functions. A nil function
// marks a type that is known but produces no build target yet.
var converters = map[string]convertFunc{
	"fidl_library":        convertFidlLibrary,
	"cc_source_library":   convertCcSourceLibrary,
	"cc_prebuilt_library": convertCcPrebuiltLibrary,

	// No need to build targets for these types yet.
	"dart_library":    nil,
	"host_tool":       nil,
	"image":           nil,
	"loadable_module": nil,
	"sysroot":         nil,
	"documentation":   nil,
}

// Convert dispatches an artifact manifest to the converter for its declared
// type. A nil target with a nil error means the artifact deliberately
// produces no output. An unrecognized type is an error.
func Convert(typ string, a *sdk.Artifact) (*gn.Target, error) {
	fn, known := converters[typ]
	if !known {
		return nil, fmt.Errorf("unexpected SDK artifact type %q", typ)
	}
	if fn == nil {
		return nil, nil
	}
	return fn(a)
}

// commonFields extracts the fields shared by most target shapes: the
// normalized target name and the ":"-prefixed public deps. FIDL libraries
// do their own name processing.
func commonFields(a *sdk.Artifact) (name string, publicDeps []string, err error) {
	name, err = gn.TargetName(a.Name)
	if err != nil {
		return "", nil, err
	}
	publicDeps = make([]string, 0, len(a.Deps))
	for _, dep := range a.Deps {
		d, err := gn.TargetName(dep)
		if err != nil {
			return "", nil, err
		}
		publicDeps = append(publicDeps, ":"+d)
	}
	return name, publicDeps, nil
}

func convertFidlLibrary(a *sdk.Artifact) (*gn.Target, error) {
	name, err := gn.FidlTargetName(a.Name)
	if err != nil {
		return nil, err
	}
	deps := make([]string, 0, len(a.Deps))
	for _, dep := range a.Deps {
		d, err := gn.FidlTargetName(dep)
		if err != nil {
			return nil, err
		}
		deps = append(deps, ":"+d)
	}

	t := &gn.Target{Type: "fuchsia_sdk_fidl_pkg", Name: name}
	t.Set("public_deps", gn.List(deps))
	t.Set("sources", gn.List(a.Sources))

	// Override the package name and namespace, otherwise the rule would
	// generate a top-level package with the target name as its directory
	// name.
	parts := strings.Split(a.Name, ".")
	t.Set("package_name", gn.String(parts[len(parts)-1]))
	t.Set("namespace", gn.String(strings.Join(parts[:len(parts)-1], ".")))
	return t, nil
}

func convertCcPrebuiltLibrary(a *sdk.Artifact) (*gn.Target, error) {
	name, deps, err := commonFields(a)
	if err != nil {
		return nil, err
	}

	t := &gn.Target{Type: "fuchsia_sdk_pkg", Name: name}
	t.Set("public_deps", gn.List(deps))
	t.Set("sources", gn.List(a.Headers))
	t.Set("include_dirs", gn.List([]string{a.Root + "/include"}))

	// The library name must match what the linker looks for on disk, so
	// keep the original, unnormalized artifact name here.
	if a.Format == "shared" {
		t.Set("shared_libs", gn.List([]string{a.Name}))
	} else {
		t.Set("static_libs", gn.List([]string{a.Name}))
	}
	return t, nil
}

func convertCcSourceLibrary(a *sdk.Artifact) (*gn.Target, error) {
	name, deps, err := commonFields(a)
	if err != nil {
		return nil, err
	}
	for _, dep := range a.FidlDeps {
		d, err := gn.FidlTargetName(dep)
		if err != nil {
			return nil, err
		}
		deps = append(deps, ":"+d)
	}

	// Header and source file paths can be scattered across "sources",
	// "headers" and "files". Merge them into one duplicate-free source
	// list, keeping first-seen order so the output is stable across runs.
	seen := make(map[string]bool)
	var sources []string
	for _, group := range [][]string{a.Sources, a.Headers, a.Files} {
		for _, s := range group {
			if !seen[s] {
				seen[s] = true
				sources = append(sources, s)
			}
		}
	}

	t := &gn.Target{Type: "fuchsia_sdk_pkg", Name: name}
	t.Set("public_deps", gn.List(deps))
	t.Set("sources", gn.List(sources))
	t.Set("include_dirs", gn.List([]string{a.Root + "/include"}))
	return t, nil
}

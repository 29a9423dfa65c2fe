// Package gen drives the conversion of an SDK manifest set into a single
// generated BUILD.gn file.
package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fuchsia-tools/gendefs/internal/convert"
	"github.com/fuchsia-tools/gendefs/internal/gn"
	"github.com/fuchsia-tools/gendefs/internal/sdk"
)

// preamble is inserted at the top of the generated BUILD.gn file.
const preamble = `# DO NOT EDIT! This file was generated by
# //third_party/fuchsia-sdk/gendefs.
# Any changes made to this file will be discarded.

import("//third_party/fuchsia-sdk/fuchsia_sdk_pkg.gni")

`

// Options configures a single generation run.
type Options struct {
	// SDKDir is the SDK base directory containing meta/manifest.json.
	SDKDir string

	// OutPath is the destination of the generated file. Empty means
	// <SDKDir>/BUILD.gn.
	OutPath string

	// DepfilePath, if non-empty, receives a gcc-style depfile listing
	// every manifest file consumed by the run.
	DepfilePath string

	// Converted, if non-nil, is invoked with each converted target before
	// it is serialized.
	Converted func(part sdk.Part, t *gn.Target)
}

// Generate converts every part of the SDK manifest set, in index order, and
// writes the result in a single atomic replace. The first conversion error
// aborts the run before any file is touched; a failed run never leaves a
// half-written BUILD.gn behind.
func Generate(opts Options) error {
	idx, err := sdk.LoadIndex(opts.SDKDir)
	if err != nil {
		return err
	}

	outPath := opts.OutPath
	if outPath == "" {
		outPath = filepath.Join(opts.SDKDir, "BUILD.gn")
	}
	inputs := []string{filepath.Join(opts.SDKDir, sdk.IndexPath)}

	var buf bytes.Buffer
	buf.WriteString(preamble)
	for _, part := range idx.Parts {
		metaPath := filepath.Join(opts.SDKDir, part.Meta)
		a, err := sdk.LoadArtifact(metaPath)
		if err != nil {
			return err
		}
		inputs = append(inputs, metaPath)

		target, err := convert.Convert(part.Type, a)
		if err != nil {
			return fmt.Errorf("%s: %w", part.Meta, err)
		}
		if target == nil {
			continue
		}
		if opts.Converted != nil {
			opts.Converted(part, target)
		}

		block, err := target.Format()
		if err != nil {
			return fmt.Errorf("%s: %w", part.Meta, err)
		}
		buf.WriteString(block)
		buf.WriteString("\n\n")
	}

	if err := writeFileAtomic(outPath, buf.Bytes()); err != nil {
		return err
	}
	if opts.DepfilePath != "" {
		return writeDepfile(opts.DepfilePath, outPath, inputs)
	}
	return nil
}

// writeDepfile records the manifests consumed by the run so that ninja
// reruns the generator whenever one of them changes.
func writeDepfile(path, target string, deps []string) error {
	content := fmt.Sprintf("%s: \\\n %s\n", target, strings.Join(deps, " \\\n "))
	return writeFileAtomic(path, []byte(content))
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Package sdk reads the metadata manifests shipped with a Fuchsia SDK drop.
package sdk

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// IndexPath is the location of the top-level manifest inside an SDK
// directory.
const IndexPath = "meta/manifest.json"

// Part identifies one artifact manifest in the top-level index.
type Part struct {
	Type string `json:"type"`
	Meta string `json:"meta"`
}

// Index is the top-level SDK manifest listing every artifact in the drop.
type Index struct {
	Parts []Part `json:"parts"`
}

// Artifact holds the per-artifact manifest fields consulted by the
// converters. Manifest shapes vary by type; fields absent from a given
// manifest decode to their zero values.
type Artifact struct {
	Name     string   `json:"name"`
	Root     string   `json:"root"`
	Format   string   `json:"format"`
	Deps     []string `json:"deps"`
	FidlDeps []string `json:"fidl_deps"`
	Sources  []string `json:"sources"`
	Headers  []string `json:"headers"`
	Files    []string `json:"files"`
}

// LoadIndex parses the top-level manifest of the SDK rooted at dir.
func LoadIndex(dir string) (*Index, error) {
	path := filepath.Join(dir, IndexPath)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var idx Index
	if err := json.NewDecoder(f).Decode(&idx); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &idx, nil
}

// LoadArtifact parses one artifact manifest file.
func LoadArtifact(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var a Artifact
	if err := json.NewDecoder(f).Decode(&a); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &a, nil
}

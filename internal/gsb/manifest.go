// Package gsb resolves GSB-tracked save repositories.
//
// GSB marks the root of a tracked repo with a .gsb_manifest file (a small
// TOML document). Resolution accepts any directory inside the repo and walks
// up to the nearest manifest, so distinct paths into the same repo collapse
// to one canonical root.
package gsb

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const manifestName = ".gsb_manifest"

// Manifest describes a GSB-tracked save repo.
type Manifest struct {
	// Root is the canonical repo root (the directory holding .gsb_manifest).
	Root     string   `toml:"-"`
	Name     string   `toml:"name"`
	Patterns []string `toml:"patterns"`
}

// Of resolves dir to the nearest enclosing GSB root and parses its manifest.
// The returned error wraps fs.ErrNotExist when no manifest is found on the
// walk up to the filesystem root.
func Of(dir string) (*Manifest, error) {
	root, err := findRoot(dir)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(root, manifestName))
	if err != nil {
		return nil, fmt.Errorf("reading manifest in %s: %w", root, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest in %s: %w", root, err)
	}
	m.Root = root
	return &m, nil
}

func findRoot(dir string) (string, error) {
	current := filepath.Clean(dir)
	for {
		if _, err := os.Stat(filepath.Join(current, manifestName)); err == nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("no %s found in %s or any parent: %w", manifestName, dir, fs.ErrNotExist)
		}
		current = parent
	}
}

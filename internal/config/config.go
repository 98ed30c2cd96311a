// Package config is the application settings store: the set of EnderChest
// installations and GSB save repos managed by chestman, with TOML
// persistence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog/log"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/bagend/chestman/internal/chest"
	"github.com/bagend/chestman/internal/gsb"
)

// chestLoader validates a chest root by loading the descriptor at the given
// config-file path. Implemented by chest.FromCfg outside of tests.
type chestLoader func(cfgPath string) (*chest.Chest, error)

// saveResolver resolves a directory to its GSB repo manifest. Implemented by
// gsb.Of outside of tests.
type saveResolver func(dir string) (*gsb.Manifest, error)

// Store holds the registered EnderChest installations and GSB save repos.
//
// Both registries preserve insertion order, and re-registering a path keeps
// its original position. The store never holds two entries for the same key.
type Store struct {
	chests *orderedmap.OrderedMap[string, *chest.Chest]
	saves  *orderedmap.OrderedMap[string, *gsb.Manifest]

	loadChest   chestLoader
	resolveSave saveResolver
}

// New constructs a Store. When $MINECRAFT_ROOT is set, its value is
// registered as an initial chest root; a failure there is logged and never
// fatal.
func New() *Store {
	return newWith(chest.FromCfg, gsb.Of)
}

func newWith(load chestLoader, resolve saveResolver) *Store {
	s := &Store{
		chests:      orderedmap.New[string, *chest.Chest](),
		saves:       orderedmap.New[string, *gsb.Manifest](),
		loadChest:   load,
		resolveSave: resolve,
	}
	if root := os.Getenv("MINECRAFT_ROOT"); root != "" {
		if err := s.RegisterChest(root); err != nil {
			log.Error().Err(err).Str("path", root).
				Msg("failed to load chest from $MINECRAFT_ROOT")
		}
	}
	return s
}

// RegisterChest registers (or re-registers) the EnderChest at the given
// minecraft root. The root is validated by loading its descriptor; invalid
// roots are rejected and never stored. The entry is keyed by the path as
// given, before homedir expansion.
func (s *Store) RegisterChest(minecraftRoot string) error {
	expanded, err := homedir.Expand(minecraftRoot)
	if err != nil {
		return fmt.Errorf("expanding %s: %w", minecraftRoot, err)
	}

	c, err := s.loadChest(chest.ConfigPath(expanded))
	if err != nil {
		return err
	}

	s.chests.Set(minecraftRoot, c)
	return nil
}

// RegisterSave registers (or re-registers) the GSB save repo for the given
// manifest path. The path may point at the .gsb_manifest file itself or at
// any directory inside the repo; either way the entry is keyed by the repo's
// canonical root, so different inputs into one repo collapse to a single
// entry.
func (s *Store) RegisterSave(manifestPath string) error {
	expanded, err := homedir.Expand(manifestPath)
	if err != nil {
		return fmt.Errorf("expanding %s: %w", manifestPath, err)
	}

	dir := expanded
	if fi, statErr := os.Stat(expanded); statErr != nil || !fi.IsDir() {
		dir = filepath.Dir(expanded)
	}

	m, err := s.resolveSave(dir)
	if err != nil {
		return err
	}

	s.saves.Set(m.Root, m)
	return nil
}

// Chests returns the registered chest descriptors in registration order.
func (s *Store) Chests() []*chest.Chest {
	out := make([]*chest.Chest, 0, s.chests.Len())
	for pair := s.chests.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Saves returns the registered save manifests in registration order.
func (s *Store) Saves() []*gsb.Manifest {
	out := make([]*gsb.Manifest, 0, s.saves.Len())
	for pair := s.saves.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// ChestRoots returns the registered chest root paths in registration order.
func (s *Store) ChestRoots() []string {
	return registryKeys(s.chests)
}

// SaveRoots returns the registered save repo roots in registration order.
func (s *Store) SaveRoots() []string {
	return registryKeys(s.saves)
}

func registryKeys[V any](m *orderedmap.OrderedMap[string, V]) []string {
	out := make([]string, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

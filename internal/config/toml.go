package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"

	"github.com/bagend/chestman/internal/chest"
	"github.com/bagend/chestman/internal/gsb"
	"github.com/bagend/chestman/internal/version"
)

// The on-disk rendering is written by hand rather than through a TOML
// encoder: key order, the trailing comma per array element, and the closing
// bracket on its own line are part of the format, and no generic encoder
// reproduces them byte-for-byte. Reading back goes through a real TOML
// parser, so everything the writer emits must stay within TOML's basic-string
// grammar.

// document is the parsed shape of a persisted config file.
type document struct {
	GeneratedBy  string   `toml:"generated_by_enderchest_gui"`
	LastModified string   `toml:"last_modified"`
	EnderChests  []string `toml:"ender_chests"`
	Saves        []string `toml:"saves"`
}

// Write renders the store as TOML and, when path is non-empty, also writes
// the rendering to that file. The rendering is always returned.
func (s *Store) Write(path string) (string, error) {
	rendered := s.render(time.Now())
	if path != "" {
		if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
			return "", fmt.Errorf("writing config to %s: %w", path, err)
		}
	}
	return rendered, nil
}

func (s *Store) render(now time.Time) string {
	var b strings.Builder
	writeString(&b, "generated_by_enderchest_gui", version.Version)
	writeString(&b, "last_modified", now.Format("2006-01-02 15:04:05.000000"))
	writeList(&b, "ender_chests", registryKeys(s.chests))
	writeList(&b, "saves", registryKeys(s.saves))
	return b.String()
}

func writeString(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, "%s = %s\n", key, jsonString(value))
}

func writeList(b *strings.Builder, key string, values []string) {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	fmt.Fprintf(b, "%s = [", key)
	for _, v := range sorted {
		fmt.Fprintf(b, "\n    %s,", jsonString(v))
	}
	b.WriteString("\n]\n")
}

// jsonString quotes and escapes s as a JSON string literal, which is also a
// valid TOML basic string. HTML escaping is off so that the output matches
// what a plain JSON unescaper expects.
func jsonString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		// Encoding a plain string cannot fail.
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// Load reads a previously written config file and rebuilds a Store by
// replaying each registration. Per-entry failures are logged and skipped;
// one corrupt registration never sacrifices the rest.
func Load(path string) (*Store, error) {
	return loadWith(path, chest.FromCfg, gsb.Of)
}

func loadWith(path string, load chestLoader, resolve saveResolver) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	s := newWith(load, resolve)
	for _, root := range doc.EnderChests {
		if err := s.RegisterChest(root); err != nil {
			log.Error().Err(err).Str("path", root).Msg("failed to load chest")
		}
	}
	for _, manifestPath := range doc.Saves {
		if err := s.RegisterSave(manifestPath); err != nil {
			log.Error().Err(err).Str("path", manifestPath).
				Msg("failed to load GSB manifest")
		}
	}
	return s, nil
}

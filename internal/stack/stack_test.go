package stack

import (
	"runtime/debug"
	"strings"
	"testing"
)

func stubBuildInfo(t *testing.T, deps map[string]string) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		info := &debug.BuildInfo{}
		for path, v := range deps {
			info.Deps = append(info.Deps, &debug.Module{Path: path, Version: v})
		}
		return info, true
	}
	t.Cleanup(func() { readBuildInfo = orig })
}

func TestGetDependencyVersions(t *testing.T) {
	stubBuildInfo(t, map[string]string{
		"github.com/BurntSushi/toml": "v1.4.0",
	})

	report := GetDependencyVersions()
	if got := report["github.com/BurntSushi/toml"]; got != "v1.4.0" {
		t.Errorf(`report["github.com/BurntSushi/toml"] = %q, want "v1.4.0"`, got)
	}
	// Components absent from build info report as empty strings, not errors.
	if got, ok := report["fyne.io/fyne/v2"]; !ok || got != "" {
		t.Errorf(`report["fyne.io/fyne/v2"] = %q (present: %v), want ""`, got, ok)
	}
}

func TestGetDependencyVersionsNoBuildInfo(t *testing.T) {
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }
	t.Cleanup(func() { readBuildInfo = orig })

	report := GetDependencyVersions()
	for component, v := range report {
		if v != "" {
			t.Errorf("report[%q] = %q, want empty string", component, v)
		}
	}
}

func TestGetStackShape(t *testing.T) {
	st := GetStack()

	if len(st) != len(StackKeys) {
		t.Errorf("GetStack has %d keys, want %d", len(st), len(StackKeys))
	}
	for _, k := range StackKeys {
		if _, ok := st[k]; !ok {
			t.Errorf("GetStack missing key %q", k)
		}
	}
	// These are always known on a supported platform.
	for _, k := range []string{"os", "architecture", "Go"} {
		if st[k] == "" {
			t.Errorf("GetStack[%q] is empty", k)
		}
	}
}

func TestFprintOrder(t *testing.T) {
	var b strings.Builder
	Fprint(&b)

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	wantLines := len(StackKeys) + len(RequiredModules) + len(OptionalModules)
	if len(lines) != wantLines {
		t.Fatalf("Fprint wrote %d lines, want %d", len(lines), wantLines)
	}
	for i, k := range StackKeys {
		if !strings.HasPrefix(lines[i], k+": ") {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], k+": ")
		}
	}
}

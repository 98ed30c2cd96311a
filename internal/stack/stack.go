// Package stack reports on the runtime environment: built-in dependency
// versions, OS and architecture, and the presence of a usable rsync. All of
// it is diagnostic data for display and support, so nothing here returns an
// error; absent components report as the empty string.
package stack

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
)

// RequiredModules are the dependencies chestman cannot run without.
var RequiredModules = []string{
	"fyne.io/fyne/v2",
	"github.com/BurntSushi/toml",
	"gopkg.in/ini.v1",
}

// OptionalModules are dependencies worth reporting but not essential to the
// core registration flow.
var OptionalModules = []string{
	"github.com/rs/zerolog",
	"github.com/spf13/cobra",
	"github.com/wk8/go-ordered-map/v2",
}

// StackKeys is the display order for the GetStack report.
var StackKeys = []string{"os", "architecture", "Go", "Rsync"}

// readBuildInfo is a seam for tests.
var readBuildInfo = debug.ReadBuildInfo

// GetDependencyVersions maps each known module to the version baked into the
// binary's build info. Modules missing from build info map to "".
func GetDependencyVersions() map[string]string {
	versions := make(map[string]string)
	if info, ok := readBuildInfo(); ok {
		for _, dep := range info.Deps {
			versions[dep.Path] = dep.Version
		}
	}

	report := make(map[string]string, len(RequiredModules)+len(OptionalModules))
	for _, modules := range [][]string{RequiredModules, OptionalModules} {
		for _, m := range modules {
			report[m] = versions[m]
		}
	}
	return report
}

// GetStack reports the OS and release, machine architecture, Go runtime
// version, and the installed rsync version.
func GetStack() map[string]string {
	sysname, release, machine := unameInfo()
	osDesc := sysname
	if release != "" {
		osDesc = sysname + " " + release
	}
	if machine == "" {
		machine = runtime.GOARCH
	}

	return map[string]string{
		"os":           osDesc,
		"architecture": machine,
		"Go":           runtime.Version(),
		"Rsync":        rsyncVersion(runCommand),
	}
}

// Fprint writes the full environment report as "key: value" lines in a fixed
// order. The CLI and the GUI both render this.
func Fprint(w io.Writer) {
	st := GetStack()
	for _, k := range StackKeys {
		fmt.Fprintf(w, "%s: %s\n", k, st[k])
	}

	deps := GetDependencyVersions()
	for _, modules := range [][]string{RequiredModules, OptionalModules} {
		for _, m := range modules {
			fmt.Fprintf(w, "%s: %s\n", m, deps[m])
		}
	}
}

func fallbackUname() (sysname, release, machine string) {
	return runtime.GOOS, "", runtime.GOARCH
}

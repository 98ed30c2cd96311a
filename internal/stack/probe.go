package stack

import (
	"bytes"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Chest syncing relies on rsync features introduced in 3.2.
const (
	minRsyncMajor = 3
	minRsyncMinor = 2
)

var rsyncBanner = regexp.MustCompile(`^rsync\s+version\s+(([0-9]+)\.([0-9]+)\.[0-9]+.*)$`)

// runner executes a command, returning stdout and stderr separately.
type runner func(name string, args ...string) (stdout, stderr []byte, err error)

func runCommand(name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.Command(name, args...)
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	err := cmd.Run()
	return out.Bytes(), errOut.Bytes(), err
}

// rsyncVersion probes `rsync --version` and returns the version portion of
// its banner line, or "" when rsync is missing, the banner cannot be parsed,
// or the version is older than 3.2. Stderr output is logged but is not by
// itself a failure.
func rsyncVersion(run runner) string {
	stdout, stderr, err := run("rsync", "--version")
	if err != nil {
		log.Debug().Err(err).Msg("rsync probe")
	}
	if len(stderr) > 0 {
		log.Error().Msg(strings.TrimSpace(string(stderr)))
	}
	// A missing binary or an empty banner both degrade to "not installed".
	if len(bytes.TrimSpace(stdout)) == 0 {
		return ""
	}

	head := strings.TrimRight(strings.SplitN(string(stdout), "\n", 2)[0], "\r")
	m := rsyncBanner.FindStringSubmatch(head)
	if m == nil {
		log.Error().Str("line", head).Msg("could not parse rsync version output")
		return ""
	}

	major, _ := strconv.Atoi(m[2])
	minor, _ := strconv.Atoi(m[3])
	if major < minRsyncMajor || (major == minRsyncMajor && minor < minRsyncMinor) {
		log.Error().Str("line", head).Msg("installed rsync is too old")
		return ""
	}

	return strings.TrimSpace(m[1])
}

// SPDX-License-Identifier: MPL-2.0

// Package sidecar loads the launcher's optional configuration file: a
// line-oriented key=value file colocated with the launcher executable,
// sharing its base name with a .cfg extension. A missing sidecar is not an
// error; it simply means the launcher runs in traditional mode.
package sidecar

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Extension is the sidecar file extension, replacing the launcher's own.
const Extension = ".cfg"

// Recognized keys. Matching is case-insensitive; unknown keys are ignored
// so older launchers tolerate newer sidecar files.
const (
	KeyVMArgs       = "vm.args"
	KeyRuntimeArgs  = "runtime.args"
	KeyAppArgs      = "app.args"
	KeyLogFile      = "log.file"
	KeyLogLevel     = "log.level"
	KeyLogOverwrite = "log.overwrite"
	KeyAOTCache     = "aot.cache"
)

const (
	// TriUnset means the sidecar did not express a preference (or the
	// value was unparseable); the next precedence layer decides.
	TriUnset TriState = iota
	// TriEnabled is an explicit true/1.
	TriEnabled
	// TriDisabled is an explicit false/0.
	TriDisabled
)

type (
	// TriState is an explicit three-valued preference. Precedence
	// resolution over TriState values is a total match, never a
	// magic-number comparison.
	TriState int

	// LaunchConfig is the parsed sidecar file with defaults filled in for
	// every absent key. Immutable after Load.
	LaunchConfig struct {
		// VMArgs are JVM options placed before the cache flag.
		VMArgs string
		// RuntimeArgs are the primary arguments (e.g. "-jar app.jar").
		// Non-empty RuntimeArgs selects configuration-mode composition.
		RuntimeArgs string
		// AppArgs are application arguments appended after RuntimeArgs.
		AppArgs string
		// LogFile enables session logging when non-empty.
		LogFile string
		// LogLevel is the minimum session log level (default "info").
		LogLevel string
		// LogOverwrite truncates the log file instead of appending.
		LogOverwrite bool
		// AOTCache is the sidecar's cache preference; CLI flags override
		// it and it overrides the built-in default.
		AOTCache TriState
	}
)

// String returns the tri-state name for diagnostics.
func (t TriState) String() string {
	switch t {
	case TriEnabled:
		return "enabled"
	case TriDisabled:
		return "disabled"
	default:
		return "unset"
	}
}

// ParseTriState maps a raw sidecar value onto a TriState. Only explicit
// boolean spellings flip the state; anything else stays Unset.
func ParseTriState(raw string) TriState {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1":
		return TriEnabled
	case "false", "0":
		return TriDisabled
	default:
		return TriUnset
	}
}

// PathForLauncher derives the sidecar path from the launcher executable
// path: same directory, same base name, Extension instead of the
// executable's own extension.
func PathForLauncher(exePath string) string {
	ext := filepath.Ext(exePath)
	return strings.TrimSuffix(exePath, ext) + Extension
}

// Load reads the sidecar file at path. A missing file returns (nil, nil):
// the caller falls back to traditional mode. A file that exists but cannot
// be read or parsed is a real error.
func Load(path string) (*LaunchConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read sidecar file %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigType("properties")
	v.SetDefault(KeyLogLevel, "info")

	if err := v.ReadConfig(bytes.NewReader(disableEscapes(raw))); err != nil {
		return nil, fmt.Errorf("failed to parse sidecar file %s: %w", path, err)
	}

	cfg := &LaunchConfig{
		VMArgs:       strings.TrimSpace(v.GetString(KeyVMArgs)),
		RuntimeArgs:  strings.TrimSpace(v.GetString(KeyRuntimeArgs)),
		AppArgs:      strings.TrimSpace(v.GetString(KeyAppArgs)),
		LogFile:      strings.TrimSpace(v.GetString(KeyLogFile)),
		LogLevel:     strings.TrimSpace(v.GetString(KeyLogLevel)),
		LogOverwrite: ParseTriState(v.GetString(KeyLogOverwrite)) == TriEnabled,
		AOTCache:     ParseTriState(v.GetString(KeyAOTCache)),
	}
	return cfg, nil
}

// disableEscapes doubles every backslash before the contents reach the
// properties parser. The sidecar contract is literal: a value is the text
// after "=", trimmed, and nothing else. The properties format would
// otherwise apply Java-style escape processing, turning Windows paths like
// C:\native\libs into garbage (\n becomes a newline, \l drops the
// backslash). Doubling makes every backslash survive as itself; it also
// neutralizes trailing-backslash line continuations, keeping the format
// strictly line-oriented.
func disableEscapes(raw []byte) []byte {
	return bytes.ReplaceAll(raw, []byte(`\`), []byte(`\\`))
}

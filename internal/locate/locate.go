// SPDX-License-Identifier: MPL-2.0

// Package locate resolves the absolute path of the runtime executable the
// launcher will spawn. Resolution is performed fresh on every invocation:
// PATH and installed runtimes can change between runs, so nothing is cached.
package locate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jarrun/internal/console"
)

// ErrRuntimeNotFound is the sentinel error wrapped by RuntimeNotFoundError.
var ErrRuntimeNotFound = errors.New("runtime not found")

type (
	// RuntimeNotFoundError is returned when no usable runtime executable
	// could be resolved, either because an explicit override pointed at a
	// missing file or because the search path was exhausted.
	RuntimeNotFoundError struct {
		// Executable is the runtime executable name that was looked for.
		Executable string
		// Override is the explicit runtime home directory, if one was
		// supplied. Empty means the search path was scanned instead.
		Override string
		// Searched is the number of search path entries probed.
		Searched int
	}

	// Locator resolves runtime executables against the filesystem.
	// The zero value uses the process PATH; tests can pin SearchPath.
	Locator struct {
		// SearchPath overrides the PATH environment variable when non-nil.
		SearchPath []string
	}
)

// Error implements the error interface.
func (e *RuntimeNotFoundError) Error() string {
	if e.Override != "" {
		return fmt.Sprintf("runtime not found: %s does not exist under %s", e.Executable, e.Override)
	}
	return fmt.Sprintf("runtime not found: %s not present in any of %d search path entries", e.Executable, e.Searched)
}

// Unwrap returns ErrRuntimeNotFound so callers can use errors.Is.
func (e *RuntimeNotFoundError) Unwrap() error { return ErrRuntimeNotFound }

// Resolve returns the absolute path of the runtime executable for the given
// variant. When overrideDir is non-empty the executable must exist at
// overrideDir/bin/<name>; there is no fallback to the search path, so a bad
// override fails loudly instead of silently launching a different runtime.
func (l *Locator) Resolve(variant console.Variant, overrideDir string) (string, error) {
	name := variant.ExecutableName()

	if overrideDir != "" {
		candidate := filepath.Join(overrideDir, "bin", name)
		if isExecutableFile(candidate) {
			return candidate, nil
		}
		return "", &RuntimeNotFoundError{Executable: name, Override: overrideDir}
	}

	entries := l.searchPath()
	for _, dir := range entries {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if isExecutableFile(candidate) {
			return candidate, nil
		}
	}
	return "", &RuntimeNotFoundError{Executable: name, Searched: len(entries)}
}

func (l *Locator) searchPath() []string {
	if l.SearchPath != nil {
		return l.SearchPath
	}
	raw := os.Getenv("PATH")
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return filepath.SplitList(raw)
}

// isExecutableFile reports whether path names an existing regular file.
// Directories named like the executable are rejected.
func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// SPDX-License-Identifier: MPL-2.0

// Package aotcache manages ahead-of-time compilation cache artifacts for a
// launched target. Each target file gets a deterministic cache identity
// derived from its current size and modification time; the identity is
// recomputed on every invocation and never persisted, so a modified target
// can never be paired with a stale cache.
package aotcache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jarrun/internal/diag"
	"jarrun/internal/sidecar"
)

// Extension is the cache artifact extension.
const Extension = ".aot"

type (
	// Entry is the cache identity of one target artifact, derived fresh
	// from the filesystem. Two invocations against an unmodified target
	// always produce the same EncodedKey; any change to size or
	// modification time changes it.
	Entry struct {
		// TargetPath is the artifact the cache belongs to.
		TargetPath string
		// SizeBytes and ModTimeNanos are the raw identity inputs.
		SizeBytes    uint64
		ModTimeNanos uint64
		// EncodedKey is "<encodedSize>.<encodedModTime>".
		EncodedKey string
		// CacheFilePath is the cache artifact location, colocated with
		// the target.
		CacheFilePath string
		// Exists reports whether a cache artifact with the current key
		// is already on disk (reusable).
		Exists bool
	}

	// Manager plans cache usage for targets and keeps their directories
	// free of stale entries. All filesystem trouble is recoverable: the
	// caller is expected to continue with caching disabled.
	Manager struct {
		Log *diag.Session
	}
)

// Decide resolves whether caching is active for this run. The explicit CLI
// preference wins over the sidecar preference, which wins over the built-in
// default of enabled.
func Decide(cli, cfg sidecar.TriState) bool {
	switch cli {
	case sidecar.TriEnabled:
		return true
	case sidecar.TriDisabled:
		return false
	case sidecar.TriUnset:
	}
	switch cfg {
	case sidecar.TriEnabled:
		return true
	case sidecar.TriDisabled:
		return false
	case sidecar.TriUnset:
	}
	return true
}

// Plan computes the cache entry for target from its current size and
// modification time and probes whether the matching artifact exists.
func (m *Manager) Plan(target string) (Entry, error) {
	info, err := os.Stat(target)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to stat cache target %s: %w", target, err)
	}

	size := uint64(info.Size())
	mtime := uint64(info.ModTime().UnixNano())
	key := encodeKey(size) + "." + encodeKey(mtime)

	dir := filepath.Dir(target)
	stem := targetStem(target)
	cachePath := filepath.Join(dir, stem+"."+key+Extension)

	entry := Entry{
		TargetPath:    target,
		SizeBytes:     size,
		ModTimeNanos:  mtime,
		EncodedKey:    key,
		CacheFilePath: cachePath,
	}
	if _, err := os.Stat(cachePath); err == nil {
		entry.Exists = true
	}
	return entry, nil
}

// CleanStale deletes every sibling cache artifact of the entry's target
// whose name does not match the current key. This bounds storage to one
// artifact per target and guarantees a cache built from an old (size,
// mtime) pair is never silently reused.
//
// Two concurrent invocations against the same target can race here: one may
// delete an artifact the other is mid-way through producing. That race is
// an accepted limitation; invocations are not coordinated.
func (m *Manager) CleanStale(entry Entry) error {
	dir := filepath.Dir(entry.TargetPath)
	stem := targetStem(entry.TargetPath)
	current := filepath.Base(entry.CacheFilePath)

	listing, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to scan cache directory %s: %w", dir, err)
	}

	prefix := stem + "."
	for _, de := range listing {
		name := de.Name()
		if de.IsDir() || name == current {
			continue
		}
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, Extension) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("failed to delete stale cache entry %s: %w", name, err)
		}
		if m.Log != nil {
			m.Log.Info("deleted stale cache entry", "file", name)
		}
	}
	return nil
}

// Flag returns the JVM option for the entry: consume the existing artifact,
// or produce a fresh one at the computed path.
func (e Entry) Flag() string {
	if e.Exists {
		return "-XX:AOTCache=" + e.CacheFilePath
	}
	return "-XX:AOTCacheOutput=" + e.CacheFilePath
}

// targetStem is the target's base name without its extension; cache
// artifacts are named "<stem>.<encodedKey>.aot".
func targetStem(target string) string {
	base := filepath.Base(target)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

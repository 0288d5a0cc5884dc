// SPDX-License-Identifier: MPL-2.0

package aotcache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"jarrun/internal/sidecar"
)

func writeTarget(t *testing.T, dir, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPlanDeterministic(t *testing.T) {
	t.Parallel()

	mgr := &Manager{}
	target := writeTarget(t, t.TempDir(), "app.jar", "payload")

	first, err := mgr.Plan(target)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	second, err := mgr.Plan(target)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}

	if first.EncodedKey != second.EncodedKey {
		t.Errorf("keys differ for unmodified target: %q vs %q", first.EncodedKey, second.EncodedKey)
	}
	if first.CacheFilePath != second.CacheFilePath {
		t.Errorf("cache paths differ for unmodified target: %q vs %q", first.CacheFilePath, second.CacheFilePath)
	}
}

func TestPlanKeyChangesWithSize(t *testing.T) {
	t.Parallel()

	mgr := &Manager{}
	dir := t.TempDir()
	target := writeTarget(t, dir, "app.jar", "payload")

	before, err := mgr.Plan(target)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}

	if err := os.WriteFile(target, []byte("payload-grown"), 0o644); err != nil {
		t.Fatal(err)
	}
	after, err := mgr.Plan(target)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}

	if before.EncodedKey == after.EncodedKey {
		t.Errorf("key unchanged after size change: %q", before.EncodedKey)
	}
}

func TestPlanKeyChangesWithModTime(t *testing.T) {
	t.Parallel()

	mgr := &Manager{}
	target := writeTarget(t, t.TempDir(), "app.jar", "payload")

	before, err := mgr.Plan(target)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}

	bumped := time.Now().Add(90 * time.Second)
	if err := os.Chtimes(target, bumped, bumped); err != nil {
		t.Fatal(err)
	}
	after, err := mgr.Plan(target)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}

	if before.EncodedKey == after.EncodedKey {
		t.Errorf("key unchanged after modification time change: %q", before.EncodedKey)
	}
	if before.SizeBytes != after.SizeBytes {
		t.Fatalf("test wrote different sizes: %d vs %d", before.SizeBytes, after.SizeBytes)
	}
}

func TestPlanCacheFileNaming(t *testing.T) {
	t.Parallel()

	mgr := &Manager{}
	dir := t.TempDir()
	target := writeTarget(t, dir, "myapp.jar", "payload")

	entry, err := mgr.Plan(target)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}

	base := filepath.Base(entry.CacheFilePath)
	if !strings.HasPrefix(base, "myapp.") {
		t.Errorf("cache file %q does not start with target stem", base)
	}
	if !strings.HasSuffix(base, Extension) {
		t.Errorf("cache file %q does not end with %s", base, Extension)
	}
	if filepath.Dir(entry.CacheFilePath) != dir {
		t.Errorf("cache file placed in %q, want target directory %q", filepath.Dir(entry.CacheFilePath), dir)
	}
	if entry.Exists {
		t.Error("entry reported as existing before any cache was produced")
	}
}

func TestPlanDetectsReusableEntry(t *testing.T) {
	t.Parallel()

	mgr := &Manager{}
	target := writeTarget(t, t.TempDir(), "app.jar", "payload")

	entry, err := mgr.Plan(target)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	if err := os.WriteFile(entry.CacheFilePath, []byte("aot"), 0o644); err != nil {
		t.Fatal(err)
	}

	again, err := mgr.Plan(target)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	if !again.Exists {
		t.Error("entry with matching artifact on disk not reported as reusable")
	}
}

func TestCleanStaleRemovesOnlyMismatchedEntries(t *testing.T) {
	t.Parallel()

	mgr := &Manager{}
	dir := t.TempDir()
	target := writeTarget(t, dir, "app.jar", "payload")

	entry, err := mgr.Plan(target)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}

	current := entry.CacheFilePath
	stale1 := filepath.Join(dir, "app.aaaa.bbbb"+Extension)
	stale2 := filepath.Join(dir, "app.cccc.dddd"+Extension)
	other := filepath.Join(dir, "other.aaaa.bbbb"+Extension)
	for _, p := range []string{current, stale1, stale2, other} {
		if err := os.WriteFile(p, []byte("aot"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := mgr.CleanStale(entry); err != nil {
		t.Fatalf("CleanStale() error: %v", err)
	}

	for _, p := range []string{stale1, stale2} {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("stale entry %s not deleted", filepath.Base(p))
		}
	}
	// The current entry, the target, and other targets' entries survive.
	for _, p := range []string{current, target, other} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("%s should have survived cleanup: %v", filepath.Base(p), err)
		}
	}
}

func TestEntryFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		entry  Entry
		prefix string
	}{
		{
			name:   "existing entry is consumed",
			entry:  Entry{CacheFilePath: "/tmp/app.k.m.aot", Exists: true},
			prefix: "-XX:AOTCache=",
		},
		{
			name:   "missing entry is produced",
			entry:  Entry{CacheFilePath: "/tmp/app.k.m.aot", Exists: false},
			prefix: "-XX:AOTCacheOutput=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.entry.Flag()
			if got != tt.prefix+tt.entry.CacheFilePath {
				t.Errorf("Flag() = %q, want prefix %q + path", got, tt.prefix)
			}
		})
	}
}

func TestDecidePrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cli  sidecar.TriState
		cfg  sidecar.TriState
		want bool
	}{
		{name: "default is enabled", cli: sidecar.TriUnset, cfg: sidecar.TriUnset, want: true},
		{name: "sidecar disables", cli: sidecar.TriUnset, cfg: sidecar.TriDisabled, want: false},
		{name: "sidecar enables", cli: sidecar.TriUnset, cfg: sidecar.TriEnabled, want: true},
		{name: "cli overrides sidecar disable", cli: sidecar.TriEnabled, cfg: sidecar.TriDisabled, want: true},
		{name: "cli overrides sidecar enable", cli: sidecar.TriDisabled, cfg: sidecar.TriEnabled, want: false},
		{name: "cli disables default", cli: sidecar.TriDisabled, cfg: sidecar.TriUnset, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Decide(tt.cli, tt.cfg); got != tt.want {
				t.Errorf("Decide(%v, %v) = %v, want %v", tt.cli, tt.cfg, got, tt.want)
			}
		})
	}
}

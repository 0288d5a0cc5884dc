// SPDX-License-Identifier: MPL-2.0

package sidecar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSidecar(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jarrun.cfg")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.cfg"))
	if err != nil {
		t.Fatalf("Load() error for missing file: %v", err)
	}
	if cfg != nil {
		t.Errorf("Load() = %+v for missing file, want nil", cfg)
	}
}

func TestLoadFullSidecar(t *testing.T) {
	t.Parallel()

	path := writeSidecar(t, `
# launcher configuration
vm.args = -Xmx512m -Dapp.env=prod
runtime.args = -jar app.jar
app.args = --port 8080
log.file = jarrun.log
log.level = debug
log.overwrite = true
aot.cache = false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.VMArgs != "-Xmx512m -Dapp.env=prod" {
		t.Errorf("VMArgs = %q", cfg.VMArgs)
	}
	if cfg.RuntimeArgs != "-jar app.jar" {
		t.Errorf("RuntimeArgs = %q", cfg.RuntimeArgs)
	}
	if cfg.AppArgs != "--port 8080" {
		t.Errorf("AppArgs = %q", cfg.AppArgs)
	}
	if cfg.LogFile != "jarrun.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if !cfg.LogOverwrite {
		t.Error("LogOverwrite = false, want true")
	}
	if cfg.AOTCache != TriDisabled {
		t.Errorf("AOTCache = %v, want TriDisabled", cfg.AOTCache)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeSidecar(t, "# nothing configured\n"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.VMArgs != "" || cfg.RuntimeArgs != "" || cfg.AppArgs != "" || cfg.LogFile != "" {
		t.Errorf("expected empty argument fields, got %+v", cfg)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel default = %q, want info", cfg.LogLevel)
	}
	if cfg.LogOverwrite {
		t.Error("LogOverwrite default = true, want false")
	}
	if cfg.AOTCache != TriUnset {
		t.Errorf("AOTCache default = %v, want TriUnset", cfg.AOTCache)
	}
}

func TestLoadKeysCaseInsensitive(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeSidecar(t, "RunTime.Args = -jar app.jar\nAOT.CACHE = 1\n"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.RuntimeArgs != "-jar app.jar" {
		t.Errorf("RuntimeArgs = %q, case-insensitive keys not honored", cfg.RuntimeArgs)
	}
	if cfg.AOTCache != TriEnabled {
		t.Errorf("AOTCache = %v, want TriEnabled", cfg.AOTCache)
	}
}

func TestLoadIgnoresUnknownKeysAndComments(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeSidecar(t, `
# comment line
! another comment style
future.key = something new
vm.args = -Xms64m
`))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.VMArgs != "-Xms64m" {
		t.Errorf("VMArgs = %q", cfg.VMArgs)
	}
}

func TestLoadPreservesBackslashValues(t *testing.T) {
	t.Parallel()

	// Windows paths are the common case for sidecar values. The value is
	// the literal text after "=", trimmed: no escape processing, no
	// injected whitespace for compose to re-split on.
	cfg, err := Load(writeSidecar(t, `
vm.args = -Djava.library.path=C:\native\libs
runtime.args = -jar C:\apps\tool.jar
`))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.VMArgs != `-Djava.library.path=C:\native\libs` {
		t.Errorf("VMArgs = %q, want backslashes preserved literally", cfg.VMArgs)
	}
	if cfg.RuntimeArgs != `-jar C:\apps\tool.jar` {
		t.Errorf("RuntimeArgs = %q, want backslashes preserved literally", cfg.RuntimeArgs)
	}
	for _, ch := range "\n\t\r\f" {
		if strings.ContainsRune(cfg.VMArgs+cfg.RuntimeArgs, ch) {
			t.Errorf("loaded values contain injected control character %q", ch)
		}
	}
}

func TestLoadTrailingBackslashStaysLineOriented(t *testing.T) {
	t.Parallel()

	// A trailing backslash is a literal character, not a line
	// continuation: the next line must still parse as its own key.
	cfg, err := Load(writeSidecar(t, "vm.args = -Dapp.dir=C:\\apps\\\nruntime.args = -jar tool.jar\n"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.VMArgs != `-Dapp.dir=C:\apps\` {
		t.Errorf("VMArgs = %q, want trailing backslash kept literally", cfg.VMArgs)
	}
	if cfg.RuntimeArgs != "-jar tool.jar" {
		t.Errorf("RuntimeArgs = %q, line after trailing backslash was swallowed", cfg.RuntimeArgs)
	}
}

func TestParseTriState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want TriState
	}{
		{"true", TriEnabled},
		{"1", TriEnabled},
		{"TRUE", TriEnabled},
		{" true ", TriEnabled},
		{"false", TriDisabled},
		{"0", TriDisabled},
		{"False", TriDisabled},
		{"", TriUnset},
		{"yes", TriUnset},
		{"2", TriUnset},
		{"maybe", TriUnset},
	}

	for _, tt := range tests {
		if got := ParseTriState(tt.raw); got != tt.want {
			t.Errorf("ParseTriState(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestPathForLauncher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		exe  string
		want string
	}{
		{`C:\tools\jarrun.exe`, `C:\tools\jarrun` + Extension},
		{"/usr/local/bin/jarrun", "/usr/local/bin/jarrun" + Extension},
	}

	for _, tt := range tests {
		if got := PathForLauncher(tt.exe); got != tt.want {
			t.Errorf("PathForLauncher(%q) = %q, want %q", tt.exe, got, tt.want)
		}
	}
}

func TestWriteTemplate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "jarrun.cfg")
	if err := WriteTemplate(path); err != nil {
		t.Fatalf("WriteTemplate() error: %v", err)
	}

	// The template must itself be a loadable sidecar, with every key
	// commented out so it behaves like an absent configuration.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() on generated template: %v", err)
	}
	if cfg.RuntimeArgs != "" || cfg.VMArgs != "" {
		t.Errorf("generated template sets live values: %+v", cfg)
	}

	if err := WriteTemplate(path); err == nil {
		t.Error("WriteTemplate() over an existing file should fail")
	}
}

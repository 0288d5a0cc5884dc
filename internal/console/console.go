// SPDX-License-Identifier: MPL-2.0

// Package console determines the execution context of the launcher process:
// whether it was started from an interactive terminal (and should therefore
// attach to the parent's console and propagate the child's exit code) or
// without a controlling terminal (double-click, file association), in which
// case the child runs detached with no visible console.
//
// On Windows, detection is an order-dependent side-effecting sequence over
// the Win32 console API (hide, detach, re-attach to parent). Detect performs
// that transition exactly once per process; later calls return the memoized
// result.
package console

import "sync"

const (
	// VariantInteractive selects the console-attached runtime executable
	// (java.exe on Windows). Standard streams are inherited and the
	// launcher blocks on the child.
	VariantInteractive Variant = iota
	// VariantHeadless selects the windowless runtime executable
	// (javaw.exe on Windows). The launcher detaches right after spawning.
	VariantHeadless
)

type (
	// Variant identifies which runtime executable flavor to launch.
	Variant int

	// Context is the launcher's execution context, derived once per run
	// and immutable thereafter.
	Context struct {
		// HasConsole reports whether the process shares a console with
		// the parent that launched it.
		HasConsole bool
		// Variant is the runtime executable flavor matching HasConsole.
		Variant Variant
	}
)

var (
	detectOnce sync.Once
	detected   Context
)

// String returns the variant name for diagnostics.
func (v Variant) String() string {
	if v == VariantHeadless {
		return "headless"
	}
	return "interactive"
}

// Detect returns the execution context for this process.
//
// The first call performs the platform detection sequence; it must happen
// early, before anything is written to the standard streams, because on
// Windows it detaches from the bootstrap console and re-attaches to the
// parent's. Subsequent calls are cheap and return the same Context.
func Detect() Context {
	detectOnce.Do(func() {
		detected = detect()
	})
	return detected
}

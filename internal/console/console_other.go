// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package console

import (
	"os"

	"github.com/mattn/go-isatty"
)

// detect has no console window to juggle outside Windows; a controlling
// terminal on stdin or stdout is what distinguishes a shell invocation from
// a desktop launch.
func detect() Context {
	if isTerminal(os.Stdin) || isTerminal(os.Stdout) {
		return Context{HasConsole: true, Variant: VariantInteractive}
	}
	return Context{HasConsole: false, Variant: VariantHeadless}
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ExecutableName returns the runtime executable for the variant. There is
// no separate windowless binary outside Windows.
func (v Variant) ExecutableName() string {
	return "java"
}

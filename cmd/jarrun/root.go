// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"jarrun/internal/compose"
	"jarrun/internal/console"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// rootCmd is the whole CLI surface: jarrun takes a target artifact and
	// forwards everything else to the runtime, so flag parsing is disabled
	// and the composer's extraction pass decides what is internal.
	rootCmd = &cobra.Command{
		Use:   "jarrun [--java-home=PATH] [--enable-aot|--disable-aot] <jar-file> [args...]",
		Short: "A context-aware launcher for JVM applications",
		Long: `jarrun launches JVM applications with the right console behavior:
started from a terminal it attaches to it, runs java, and propagates the
exit code; double-clicked it stays invisible, runs the windowless runtime,
and detaches immediately.

A sidecar configuration file (same name as the launcher, .cfg extension)
can supply VM options, primary arguments, application arguments, session
logging, and the AOT cache preference. Generate a template with
--generate-config.`,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if wantsHelp(args) {
				return cmd.Help()
			}
			code := launch(cmd.Context(), args)
			if code != 0 {
				return &ExitError{Code: code}
			}
			return nil
		},
	}
)

type (
	// ExitError carries a non-zero launcher exit code through the Cobra
	// error path without printing anything extra; all rendering already
	// happened through the Messenger.
	ExitError struct {
		Code int
	}
)

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. Context detection happens before anything
// touches the standard streams: on Windows the detection sequence swaps the
// process console, and output written before it would be lost.
func Execute() {
	console.Detect()

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// wantsHelp scans the raw tokens for a help request; with flag parsing
// disabled Cobra never sees -h itself. Only tokens before the target can
// address the launcher: once the first non-flag token appears, everything
// after it belongs to the application and is forwarded verbatim, --help
// included.
func wantsHelp(args []string) bool {
	for i := 0; i < len(args); i++ {
		tok := args[i]
		switch {
		case tok == "-h" || tok == "--help":
			return true
		case tok == compose.FlagJavaHome:
			// Space form: the next token is the override value, not
			// the target.
			i++
		case strings.HasPrefix(tok, "-"):
			// Some other flag ahead of the target; keep scanning.
		default:
			return false
		}
	}
	return false
}

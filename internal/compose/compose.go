// SPDX-License-Identifier: MPL-2.0

// Package compose assembles the final runtime invocation from its layered
// sources: sidecar configuration, cache flags, internal timing metadata,
// and the raw arguments typed at invocation time. Arguments are handled as
// token lists throughout; the composer never does string surgery on a raw
// command line.
package compose

import (
	"errors"
	"fmt"
	"strings"

	"jarrun/internal/sidecar"
)

// ErrMissingTarget is returned when no primary target argument survives
// flag extraction in traditional mode. Nothing is spawned; the caller
// renders the diagnostic/usage block instead.
var ErrMissingTarget = errors.New("no target artifact argument")

// startProperty carries the launcher's start timestamp into the child as a
// system property, letting the application measure launch latency.
const startProperty = "-Djarrun.launch.start"

type (
	// Invocation is the composed command: the resolved runtime path and
	// its ordered argument list. Write-once; the supervisor consumes it
	// immediately.
	Invocation struct {
		RuntimePath string
		Args        []string
	}
)

// String renders the invocation the way it would appear in a shell, for
// diagnostics and logs.
func (inv Invocation) String() string {
	return inv.RuntimePath + " " + strings.Join(inv.Args, " ")
}

// ConfigurationMode reports whether the sidecar selects configuration-mode
// composition: a loaded config whose primary-arguments field is non-empty.
func ConfigurationMode(cfg *sidecar.LaunchConfig) bool {
	return cfg != nil && cfg.RuntimeArgs != ""
}

// Target identifies the artifact that drives cache-key computation. In
// traditional mode it is the first forwarded token; in configuration mode
// it is the token following "-jar" in the sidecar's primary arguments.
// ok is false when no artifact can be identified (caching is then skipped).
func Target(cfg *sidecar.LaunchConfig, forwarded []string) (target string, ok bool) {
	if ConfigurationMode(cfg) {
		toks := strings.Fields(cfg.RuntimeArgs)
		for i, t := range toks {
			if t == "-jar" && i+1 < len(toks) {
				return toks[i+1], true
			}
		}
		return "", false
	}
	if len(forwarded) > 0 {
		return forwarded[0], true
	}
	return "", false
}

// Compose builds the final invocation.
//
// Configuration mode: runtime, timing property, sidecar VM args, cache flag,
// sidecar primary args, sidecar app args, then the forwarded invocation
// arguments.
//
// Traditional mode: runtime, timing property, cache flag, a forced "-jar"
// directive, then all forwarded arguments verbatim. An empty forwarded list
// fails with ErrMissingTarget.
//
// cacheFlag is empty when caching is inactive for this run.
func Compose(runtimePath string, cfg *sidecar.LaunchConfig, cacheFlag string, forwarded []string, startMillis int64) (Invocation, error) {
	args := []string{fmt.Sprintf("%s=%d", startProperty, startMillis)}

	if ConfigurationMode(cfg) {
		args = append(args, strings.Fields(cfg.VMArgs)...)
		if cacheFlag != "" {
			args = append(args, cacheFlag)
		}
		args = append(args, strings.Fields(cfg.RuntimeArgs)...)
		args = append(args, strings.Fields(cfg.AppArgs)...)
		args = append(args, forwarded...)
		return Invocation{RuntimePath: runtimePath, Args: args}, nil
	}

	if len(forwarded) == 0 {
		return Invocation{}, ErrMissingTarget
	}
	if cacheFlag != "" {
		args = append(args, cacheFlag)
	}
	args = append(args, "-jar")
	args = append(args, forwarded...)
	return Invocation{RuntimePath: runtimePath, Args: args}, nil
}

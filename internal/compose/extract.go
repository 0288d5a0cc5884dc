// SPDX-License-Identifier: MPL-2.0

package compose

import (
	"strings"

	"jarrun/internal/sidecar"
)

// Internal-only flags. These are consumed by the launcher and must never
// reach the spawned runtime.
const (
	FlagJavaHome       = "--java-home"
	FlagEnableAOT      = "--enable-aot"
	FlagDisableAOT     = "--disable-aot"
	FlagGenerateConfig = "--generate-config"
)

type (
	// Extracted is the result of pulling internal-only flags out of the
	// raw invocation tokens. Forwarded preserves the relative order of
	// everything that was not consumed.
	Extracted struct {
		// JavaHome is the runtime home override, empty when absent.
		// Surrounding quotes on the value are stripped.
		JavaHome string
		// AOT is the per-invocation cache preference; the last of
		// --enable-aot / --disable-aot wins.
		AOT sidecar.TriState
		// GenerateConfig is set by --generate-config.
		GenerateConfig bool
		// Forwarded are the surviving tokens, in original order.
		Forwarded []string
	}
)

// Extract partitions the raw invocation tokens into internal flags and
// forwarded arguments. Both the equals form (--java-home=PATH) and the
// space form (--java-home PATH) are recognized, with or without quotes
// around the value. A trailing --java-home with no value is dropped.
func Extract(args []string) Extracted {
	ex := Extracted{Forwarded: make([]string, 0, len(args))}

	for i := 0; i < len(args); i++ {
		tok := args[i]
		switch {
		case tok == FlagEnableAOT:
			ex.AOT = sidecar.TriEnabled
		case tok == FlagDisableAOT:
			ex.AOT = sidecar.TriDisabled
		case tok == FlagGenerateConfig:
			ex.GenerateConfig = true
		case strings.HasPrefix(tok, FlagJavaHome+"="):
			ex.JavaHome = unquote(tok[len(FlagJavaHome)+1:])
		case tok == FlagJavaHome:
			if i+1 < len(args) {
				i++
				ex.JavaHome = unquote(args[i])
			}
		default:
			ex.Forwarded = append(ex.Forwarded, tok)
		}
	}
	return ex
}

// unquote strips one pair of surrounding double quotes. Values arriving
// through the Windows raw command line can carry them even after the shell
// is done.
func unquote(v string) string {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}

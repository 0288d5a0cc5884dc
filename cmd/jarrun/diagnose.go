// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"

	"jarrun/internal/console"
	"jarrun/internal/diag"
	"jarrun/internal/locate"
)

// showDiagnostic renders the no-target diagnostic block: the runtime was
// found, so show the user what would run and how to invoke the launcher.
func showDiagnostic(msg *diag.Messenger, cc console.Context, runtimePath string) {
	contextDesc := "Headless (double-clicked)"
	if cc.HasConsole {
		contextDesc = "Console (terminal/cmd)"
	}

	msg.Infof("jarrun - Diagnostic Info",
		"Execution Context: %s\n"+
			"Runtime Executable: %s\n"+
			"Runtime Location: %s\n"+
			"Status: runtime detected successfully\n\n"+
			"Usage: jarrun [--java-home=PATH] <jar-file> [args...]\n\n"+
			"Examples:\n"+
			"  jarrun myapp.jar\n"+
			"  jarrun --java-home=/opt/jdk myapp.jar --arg1 value1\n"+
			"  jarrun --disable-aot myapp.jar",
		contextDesc,
		cc.Variant.ExecutableName(),
		runtimePath)
}

// reportRuntimeNotFound renders a RuntimeNotFound failure with guidance
// matching how resolution was attempted.
func reportRuntimeNotFound(msg *diag.Messenger, cc console.Context, override string, err error) {
	if !errors.Is(err, locate.ErrRuntimeNotFound) {
		msg.Errorf("Runtime Not Found", "%v", err)
		return
	}

	if override != "" {
		msg.Errorf("Runtime Not Found",
			"The runtime was not found at the specified location:\n%s\n\nPlease check your %s path.",
			override, "--java-home")
		return
	}
	msg.Errorf("Runtime Not Found",
		"The runtime was not found in PATH.\n\n"+
			"Please ensure a JDK is installed and added to PATH,\n"+
			"or use --java-home=/path/to/jdk to specify its location.\n\n"+
			"Looking for: %s",
		cc.Variant.ExecutableName())
}

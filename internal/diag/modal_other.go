// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package diag

import (
	"fmt"
	"os"
)

const (
	modalError = iota
	modalInfo
)

// showModal falls back to stderr: there is no portable modal facility
// outside Windows, and a headless desktop launch still leaves stderr
// capturable by session logs.
func showModal(title, body string, kind int) {
	tag := "INFO"
	if kind == modalError {
		tag = "ERROR"
	}
	fmt.Fprintf(os.Stderr, "[%s] %s\n%s\n", tag, title, body)
}

// SPDX-License-Identifier: MPL-2.0

// Package diag provides the launcher's diagnostic channels.
//
// Session is an optional, file-backed structured log scoped to one launcher
// run: opened once at startup (overwrite or append per configuration),
// written through leveled calls, and closed with a trailing session marker
// on every exit path. A discarded session turns every call into a no-op so
// components never branch on whether logging is configured.
//
// Messenger renders fatal, user-facing conditions through the channel that
// matches the execution context: styled console text when a terminal is
// attached, a modal message box (Windows) or stderr otherwise.
package diag

// SPDX-License-Identifier: MPL-2.0

// jarrun is a context-aware launcher for JVM applications. It detects
// whether it was started from a terminal or a desktop double-click, picks
// the matching runtime executable, layers in sidecar configuration and
// ahead-of-time cache flags, and hands off to the runtime with the right
// I/O inheritance.
package main

func main() {
	Execute()
}

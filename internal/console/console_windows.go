// SPDX-License-Identifier: MPL-2.0

//go:build windows

package console

import (
	"golang.org/x/sys/windows"
)

const (
	attachParentProcess = ^uint32(0) // ATTACH_PARENT_PROCESS (-1)

	swHide = 0 // SW_HIDE
	swShow = 5 // SW_SHOW
)

var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")
	user32   = windows.NewLazySystemDLL("user32.dll")

	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
	procFreeConsole      = kernel32.NewProc("FreeConsole")
	procAttachConsole    = kernel32.NewProc("AttachConsole")
	procShowWindow       = user32.NewProc("ShowWindow")
)

// detect runs the console re-attachment sequence. The order is load-bearing:
//
//  1. Hide the bootstrap console before anything else so a double-clicked
//     launch never flashes a window.
//  2. Detach from the bootstrap console entirely.
//  3. Try to attach to the parent process's console.
//
// If the attach succeeds the launcher was started from a shell: the console
// we now share is the parent's, so make it visible again and run
// interactively. If it fails there was no controlling terminal: stay hidden
// and run headless.
func detect() Context {
	hideConsoleWindow()
	procFreeConsole.Call() //nolint:errcheck // failure leaves us console-less, same as success

	ret, _, _ := procAttachConsole.Call(uintptr(attachParentProcess))
	if ret == 0 {
		return Context{HasConsole: false, Variant: VariantHeadless}
	}

	if hwnd, _, _ := procGetConsoleWindow.Call(); hwnd != 0 {
		procShowWindow.Call(hwnd, swShow) //nolint:errcheck // cosmetic only
	}
	return Context{HasConsole: true, Variant: VariantInteractive}
}

func hideConsoleWindow() {
	if hwnd, _, _ := procGetConsoleWindow.Call(); hwnd != 0 {
		procShowWindow.Call(hwnd, swHide) //nolint:errcheck // cosmetic only
	}
}

// ExecutableName returns the runtime executable for the variant.
// The interactive flavor keeps the console attached; the headless flavor
// is the windowless binary.
func (v Variant) ExecutableName() string {
	if v == VariantHeadless {
		return "javaw.exe"
	}
	return "java.exe"
}

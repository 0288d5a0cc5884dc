// SPDX-License-Identifier: MPL-2.0

//go:build windows

package diag

import "golang.org/x/sys/windows"

const (
	modalError = 0x10 // MB_ICONERROR
	modalInfo  = 0x40 // MB_ICONINFORMATION
)

// showModal pops a message box. Headless launches have no console to print
// to, so this is the only way the user ever sees a fatal condition.
func showModal(title, body string, kind uint32) {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return
	}
	bodyPtr, err := windows.UTF16PtrFromString(body)
	if err != nil {
		return
	}
	windows.MessageBox(0, bodyPtr, titlePtr, kind) //nolint:errcheck // nothing to do on failure
}

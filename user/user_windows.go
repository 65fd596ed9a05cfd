// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package user

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/itsManjeet/comsafe/com"
)

var (
	moduser32 = windows.NewLazySystemDLL("user32.dll")

	procCreateAcceleratorTableW = moduser32.NewProc("CreateAcceleratorTableW")
	procDestroyAcceleratorTable = moduser32.NewProc("DestroyAcceleratorTable")
	procGetDC                   = moduser32.NewProc("GetDC")
	procReleaseDC               = moduser32.NewProc("ReleaseDC")
	procGetWindowTextLengthW    = moduser32.NewProc("GetWindowTextLengthW")
)

// CreateAcceleratorTable creates an accelerator table from accel. Destroy
// the table when done with it.
func CreateAcceleratorTable(accel []ACCEL) (HACCEL, error) {
	if len(accel) == 0 {
		return 0, windows.ERROR_INVALID_PARAMETER
	}
	r, _, e := procCreateAcceleratorTableW.Call(uintptr(unsafe.Pointer(&accel[0])), uintptr(len(accel)))
	if r == 0 {
		return 0, lastError(e)
	}
	return HACCEL(r), nil
}

// Destroy destroys an accelerator table made by CreateAcceleratorTable.
func (h HACCEL) Destroy() error {
	if h == 0 {
		return ErrNullHandle
	}
	if r, _, e := procDestroyAcceleratorTable.Call(uintptr(h)); r == 0 {
		return lastError(e)
	}
	return nil
}

// GetDC returns the device context of the client area of h, or of the
// whole screen when h is 0. Pass it to ReleaseDC when done.
func (h HWND) GetDC() (HDC, error) {
	r, _, _ := procGetDC.Call(uintptr(h))
	return FromRaw[HDC](r)
}

// ReleaseDC releases a device context obtained from h.GetDC.
func (h HWND) ReleaseDC(dc HDC) error {
	if r, _, _ := procReleaseDC.Call(uintptr(h), uintptr(dc)); r == 0 {
		return windows.ERROR_INVALID_HANDLE
	}
	return nil
}

// IsWindow reports whether h identifies an existing window.
func (h HWND) IsWindow() bool {
	return windows.IsWindow(windows.HWND(h))
}

// Text returns the window's title or control text.
func (h HWND) Text() (string, error) {
	return com.FetchString(func(buf []uint16) (int, error) {
		if buf == nil {
			return h.textLength()
		}
		n, err := windows.GetWindowText(windows.HWND(h), &buf[0], int32(len(buf)))
		if n == 0 && err != nil {
			// Zero characters is either an empty title or a window that
			// went away since the probe.
			if !h.IsWindow() {
				return 0, windows.ERROR_INVALID_WINDOW_HANDLE
			}
			return 1, nil
		}
		if int(n)+1 < len(buf) {
			return int(n) + 1, nil
		}
		// The buffer filled up: the text may have grown since the probe.
		return h.textLength()
	})
}

// textLength returns the buffer length the window text needs, counting the
// terminator, or 0 for no text.
func (h HWND) textLength() (int, error) {
	r, _, _ := procGetWindowTextLengthW.Call(uintptr(h))
	if r == 0 {
		if !h.IsWindow() {
			return 0, windows.ERROR_INVALID_WINDOW_HANDLE
		}
		return 0, nil
	}
	return int(r) + 1, nil
}

func lastError(e error) error {
	if e == nil || e == windows.ERROR_SUCCESS {
		return windows.ERROR_INVALID_PARAMETER
	}
	return e
}

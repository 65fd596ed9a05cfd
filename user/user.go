// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package user provides typed handles to window manager resources.
//
// A handle is an opaque token: it owns nothing and is never released
// automatically. Resources come from paired calls, such as
// CreateAcceleratorTable and HACCEL.Destroy, and the caller must make the
// second call of each pair.
package user

import (
	"errors"
	"fmt"
)

// Handle is implemented by every handle kind.
type Handle interface {
	Raw() uintptr
	IsNull() bool
}

// ErrNullHandle is returned when a handle was required but none was given.
var ErrNullHandle = errors.New("user: null handle")

// HWND is a window.
type HWND uintptr

// HACCEL is an accelerator table.
type HACCEL uintptr

// HDC is a device context.
type HDC uintptr

// HMENU is a menu.
type HMENU uintptr

var (
	_ Handle = HWND(0)
	_ Handle = HACCEL(0)
	_ Handle = HDC(0)
	_ Handle = HMENU(0)
)

func (h HWND) Raw() uintptr   { return uintptr(h) }
func (h HACCEL) Raw() uintptr { return uintptr(h) }
func (h HDC) Raw() uintptr    { return uintptr(h) }
func (h HMENU) Raw() uintptr  { return uintptr(h) }

func (h HWND) IsNull() bool   { return h == 0 }
func (h HACCEL) IsNull() bool { return h == 0 }
func (h HDC) IsNull() bool    { return h == 0 }
func (h HMENU) IsNull() bool  { return h == 0 }

func (h HWND) String() string   { return format("HWND", h) }
func (h HACCEL) String() string { return format("HACCEL", h) }
func (h HDC) String() string    { return format("HDC", h) }
func (h HMENU) String() string  { return format("HMENU", h) }

func format(kind string, h Handle) string {
	return fmt.Sprintf("%s(%#x)", kind, h.Raw())
}

// FromRaw converts raw, as returned by foreign code, to a handle of kind
// H. A zero raw value yields ErrNullHandle.
func FromRaw[H ~uintptr](raw uintptr) (H, error) {
	if raw == 0 {
		return 0, ErrNullHandle
	}
	return H(raw), nil
}

// FVIRT flags qualify the key of an accelerator.
type FVIRT uint8

const (
	FVIRTKEY  FVIRT = 0x01
	FNOINVERT FVIRT = 0x02
	FSHIFT    FVIRT = 0x04
	FCONTROL  FVIRT = 0x08
	FALT      FVIRT = 0x10
)

// ACCEL is one entry of an accelerator table. Key is a virtual-key code
// when Flags has FVIRTKEY, a character otherwise.
type ACCEL struct {
	Flags FVIRT
	Key   uint16
	Cmd   uint16
}

// String renders a in the conventional "Ctrl+Shift+X" form.
func (a ACCEL) String() string {
	var s string
	if a.Flags&FCONTROL != 0 {
		s += "Ctrl+"
	}
	if a.Flags&FALT != 0 {
		s += "Alt+"
	}
	if a.Flags&FSHIFT != 0 {
		s += "Shift+"
	}
	if a.Flags&FVIRTKEY != 0 {
		return fmt.Sprintf("%sVK(%#02x)->%d", s, a.Key, a.Cmd)
	}
	return fmt.Sprintf("%s%c->%d", s, rune(a.Key), a.Cmd)
}

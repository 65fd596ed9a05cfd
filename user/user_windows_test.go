// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package user

import "testing"

func TestAcceleratorTable(t *testing.T) {
	h, err := CreateAcceleratorTable([]ACCEL{
		{Flags: FCONTROL | FVIRTKEY, Key: 0x53, Cmd: 100},
		{Flags: FCONTROL | FVIRTKEY, Key: 0x4F, Cmd: 101},
	})
	if err != nil {
		t.Fatal(err)
	}
	if h.IsNull() {
		t.Fatal("CreateAcceleratorTable returned a null handle")
	}
	if err := h.Destroy(); err != nil {
		t.Errorf("Destroy() = %v", err)
	}
	if _, err := CreateAcceleratorTable(nil); err == nil {
		t.Error("CreateAcceleratorTable(nil) succeeded")
	}
}

func TestScreenDC(t *testing.T) {
	dc, err := HWND(0).GetDC()
	if err != nil {
		t.Skipf("no screen device context: %v", err)
	}
	if err := HWND(0).ReleaseDC(dc); err != nil {
		t.Errorf("ReleaseDC() = %v", err)
	}
}

func TestTextOfMissingWindow(t *testing.T) {
	h := HWND(0xdead0)
	if h.IsWindow() {
		t.Skip("handle value in use")
	}
	if _, err := h.Text(); err == nil {
		t.Error("Text() of a missing window succeeded")
	}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package abi

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

const goos = "windows"

func callNative(fn uintptr, args ...uintptr) uintptr {
	r, _, _ := syscall.SyscallN(fn, args...)
	return r
}

var (
	modole32    = windows.NewLazySystemDLL("ole32.dll")
	modoleaut32 = windows.NewLazySystemDLL("oleaut32.dll")

	procCoCreateInstance  = modole32.NewProc("CoCreateInstance")
	procCoInitializeEx    = modole32.NewProc("CoInitializeEx")
	procCoUninitialize    = modole32.NewProc("CoUninitialize")
	procSysAllocStringLen = modoleaut32.NewProc("SysAllocStringLen")
	procSysFreeString     = modoleaut32.NewProc("SysFreeString")
	procSysStringLen      = modoleaut32.NewProc("SysStringLen")
)

// CoInitializeEx initializes COM on the calling thread and returns the raw
// HRESULT.
func CoInitializeEx(flags uint32) uintptr {
	r, _, _ := procCoInitializeEx.Call(0, uintptr(flags))
	return r
}

// CoUninitialize closes COM on the calling thread.
func CoUninitialize() {
	procCoUninitialize.Call()
}

// CoCreateInstance creates an instance of clsid and asks it for iid, storing
// the interface pointer in *out. It returns the raw HRESULT.
func CoCreateInstance(clsid unsafe.Pointer, clsctx uint32, iid unsafe.Pointer, out *unsafe.Pointer) uintptr {
	r, _, _ := procCoCreateInstance.Call(
		uintptr(clsid),
		0,
		uintptr(clsctx),
		uintptr(iid),
		uintptr(unsafe.Pointer(out)))
	return r
}

// SysAllocString copies s into a new system string and returns its address,
// or 0 if the allocation failed.
func SysAllocString(s []uint16) uintptr {
	var p *uint16
	if len(s) > 0 {
		p = &s[0]
	}
	r, _, _ := procSysAllocStringLen.Call(uintptr(unsafe.Pointer(p)), uintptr(len(s)))
	return r
}

// SysStringLen returns the length in UTF-16 units of the system string at p.
func SysStringLen(p uintptr) int {
	if p == 0 {
		return 0
	}
	r, _, _ := procSysStringLen.Call(p)
	return int(uint32(r))
}

// SysFreeString frees a system string. Freeing 0 is a no-op.
func SysFreeString(p uintptr) {
	if p == 0 {
		return
	}
	procSysFreeString.Call(p)
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package abi

import (
	"runtime"
	"sync"
	"unsafe"
)

const goos = runtime.GOOS

func callNative(fn uintptr, args ...uintptr) uintptr {
	panic(unsupported("calling a foreign function pointer"))
}

const (
	hrOK            = 0x00000000
	hrClassNotFound = 0x80040154
)

// CoInitializeEx succeeds: without a native runtime only host objects exist,
// and they need no apartment.
func CoInitializeEx(flags uint32) uintptr {
	return hrOK
}

// CoUninitialize is a no-op.
func CoUninitialize() {}

// CoCreateInstance reports that no classes are registered.
func CoCreateInstance(clsid unsafe.Pointer, clsctx uint32, iid unsafe.Pointer, out *unsafe.Pointer) uintptr {
	*out = nil
	return hrClassNotFound
}

// System strings keep the native layout: a 32-bit byte count immediately
// before the first character, and a terminating zero after the last. The
// backing words are held here until SysFreeString.
var sysStrings struct {
	mu sync.Mutex
	m  map[uintptr][]uint32
}

// SysAllocString copies s into a new system string and returns its address.
func SysAllocString(s []uint16) uintptr {
	// One word of length prefix, then the characters and terminator
	// rounded up to whole words.
	words := make([]uint32, 1+(len(s)+2)/2)
	words[0] = uint32(2 * len(s))
	chars := unsafe.Slice((*uint16)(unsafe.Pointer(&words[1])), len(s)+1)
	copy(chars, s)
	chars[len(s)] = 0
	p := uintptr(unsafe.Pointer(&words[1]))

	sysStrings.mu.Lock()
	defer sysStrings.mu.Unlock()
	if sysStrings.m == nil {
		sysStrings.m = make(map[uintptr][]uint32)
	}
	sysStrings.m[p] = words
	return p
}

// SysStringLen returns the length in UTF-16 units of the system string at p.
func SysStringLen(p uintptr) int {
	if p == 0 {
		return 0
	}
	sysStrings.mu.Lock()
	words, ok := sysStrings.m[p]
	sysStrings.mu.Unlock()
	if !ok {
		panic("abi: SysStringLen of unknown string")
	}
	return int(words[0] / 2)
}

// SysFreeString frees a system string. Freeing 0 is a no-op; freeing an
// address twice panics.
func SysFreeString(p uintptr) {
	if p == 0 {
		return
	}
	sysStrings.mu.Lock()
	defer sysStrings.mu.Unlock()
	if _, ok := sysStrings.m[p]; !ok {
		panic("abi: SysFreeString of unknown string")
	}
	delete(sysStrings.m, p)
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abi is the raw boundary with foreign code: it calls function
// pointers with the platform calling convention, lets Go functions stand in
// for foreign slots, and allocates the strings foreign code expects.
//
// Nothing here knows about interfaces or reference counts; package com
// builds those on top.
package abi

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

// hostFunc is a Go function published at a slot address. The address of the
// hostFunc value itself is the published address, so it can never collide
// with foreign code.
type hostFunc struct {
	fn func(args ...uintptr) uintptr
}

var hosts struct {
	mu sync.RWMutex
	m  map[uintptr]*hostFunc
	n  atomic.Int32
}

// NewHostFunc publishes fn at a new slot address. Calling the address through
// Call runs fn with the call's arguments, the first of which is the object
// pointer for vtable slots. The address stays valid until FreeHostFunc.
func NewHostFunc(fn func(args ...uintptr) uintptr) uintptr {
	if fn == nil {
		panic("abi: nil host function")
	}
	h := &hostFunc{fn: fn}
	addr := uintptr(unsafe.Pointer(h))

	hosts.mu.Lock()
	defer hosts.mu.Unlock()
	if hosts.m == nil {
		hosts.m = make(map[uintptr]*hostFunc)
	}
	hosts.m[addr] = h
	hosts.n.Add(1)
	return addr
}

// FreeHostFunc withdraws an address returned by NewHostFunc.
// Freeing an unknown address is a no-op.
func FreeHostFunc(addr uintptr) {
	hosts.mu.Lock()
	defer hosts.mu.Unlock()
	if _, ok := hosts.m[addr]; ok {
		delete(hosts.m, addr)
		hosts.n.Add(-1)
	}
}

// HostFuncs reports how many host functions are published.
func HostFuncs() int {
	return int(hosts.n.Load())
}

func lookupHost(fn uintptr) *hostFunc {
	if hosts.n.Load() == 0 {
		return nil
	}
	hosts.mu.RLock()
	h := hosts.m[fn]
	hosts.mu.RUnlock()
	return h
}

// Call invokes the function at fn with args and returns its integer result.
//
// Pointers passed in args must be converted to uintptr in the argument list
// itself; they are then kept alive, and on the heap, until Call returns.
//
//go:uintptrescapes
func Call(fn uintptr, args ...uintptr) uintptr {
	if fn == 0 {
		panic("abi: call through null function pointer")
	}
	if h := lookupHost(fn); h != nil {
		return h.fn(args...)
	}
	return callNative(fn, args...)
}

func unsupported(what string) string {
	return fmt.Sprintf("abi: %s requires native calls, unavailable on %s", what, goos)
}

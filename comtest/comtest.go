// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package comtest provides mock foreign objects for testing code built on
// package com.
//
// A mock has the real memory layout of a foreign object: a pointer to a
// dispatch table of function pointers. Its slots are Go functions published
// through the host function table, so calls reach them on every platform.
// The mock keeps its own reference count and reports misuse, such as a
// release with no reference left, through the test.
package comtest

import (
	"fmt"
	"slices"
	"sync"
	"testing"
	"unsafe"

	"github.com/itsManjeet/comsafe/com"
	"github.com/itsManjeet/comsafe/internal/abi"
	"github.com/itsManjeet/comsafe/internal/iidset"
)

// A Method implements one slot of a mock. args holds the arguments that
// follow the object pointer.
type Method func(args []uintptr) com.HRESULT

// Object is a mock foreign object exposing one or more interfaces.
type Object struct {
	tb    testing.TB
	name  string
	faces []*face
	hosts map[string]uintptr

	mu           sync.Mutex
	supported    iidset.Set // IIDs QueryInterface answers for
	refs         int
	overReleases int
	methods      map[string]Method
	calls        map[string]int
}

// face is the part of an Object seen through one interface pointer.
type face struct {
	vtbl  unsafe.Pointer // must stay first: the object pointer points here
	info  *com.InterfaceInfo
	slots []uintptr
}

// New returns a mock implementing primary and the interfaces in more, each
// with all its ancestors. It starts with no references; see Acquire.
// Slots without a method return E_NOTIMPL.
func New(tb testing.TB, primary *com.InterfaceInfo, more ...*com.InterfaceInfo) *Object {
	tb.Helper()
	o := &Object{
		tb:        tb,
		name:      primary.Name,
		supported: iidset.New(),
		hosts:     make(map[string]uintptr),
		methods:   make(map[string]Method),
		calls:     make(map[string]int),
	}
	for _, info := range append([]*com.InterfaceInfo{primary}, more...) {
		o.supported.AddInterface(info)
		f := &face{info: info, slots: make([]uintptr, info.NumSlots())}
		for i, name := range info.Slots() {
			f.slots[i] = o.publish(name)
		}
		f.vtbl = unsafe.Pointer(&f.slots[0])
		o.faces = append(o.faces, f)
	}
	tb.Cleanup(o.close)
	return o
}

func (o *Object) publish(slot string) uintptr {
	if addr, ok := o.hosts[slot]; ok {
		return addr
	}
	var fn func(args ...uintptr) uintptr
	switch slot {
	case "QueryInterface":
		fn = o.queryInterface
	case "AddRef":
		fn = o.addRef
	case "Release":
		fn = o.release
	default:
		fn = func(args ...uintptr) uintptr {
			o.mu.Lock()
			o.calls[slot]++
			m := o.methods[slot]
			o.mu.Unlock()
			if m == nil {
				return uintptr(com.E_NOTIMPL)
			}
			return uintptr(m(args[1:]))
		}
	}
	addr := abi.NewHostFunc(fn)
	o.hosts[slot] = addr
	return addr
}

// close withdraws the slots unless references are still outstanding, in
// which case a wrapper may yet call them and the leak is reported instead.
func (o *Object) close() {
	o.mu.Lock()
	refs := o.refs
	o.mu.Unlock()
	if refs != 0 {
		o.tb.Errorf("comtest: %s still holds %d reference(s) at end of test", o.name, refs)
		return
	}
	for _, addr := range o.hosts {
		abi.FreeHostFunc(addr)
	}
}

// faceFor returns the face answering for iid. IUnknown always resolves to
// the first face, so identity comparisons agree.
func (o *Object) faceFor(iid com.IID) *face {
	for _, f := range o.faces {
		for i := f.info; i != nil; i = i.Base {
			if i.IID == iid {
				return f
			}
		}
	}
	return nil
}

func (o *Object) queryInterface(args ...uintptr) uintptr {
	iid := *(*com.IID)(unsafe.Pointer(args[1]))
	out := (*unsafe.Pointer)(unsafe.Pointer(args[2]))

	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls["QueryInterface"]++
	f := o.faceFor(iid)
	if f == nil || !o.supported.Contains(iid) {
		*out = nil
		return uintptr(com.E_NOINTERFACE)
	}
	if o.refs == 0 {
		o.tb.Errorf("comtest: QueryInterface on %s with no references", o.name)
	}
	o.refs++
	*out = unsafe.Pointer(f)
	return uintptr(com.S_OK)
}

func (o *Object) addRef(args ...uintptr) uintptr {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls["AddRef"]++
	if o.refs == 0 {
		o.tb.Errorf("comtest: AddRef on %s with no references", o.name)
	}
	o.refs++
	return uintptr(o.refs)
}

func (o *Object) release(args ...uintptr) uintptr {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls["Release"]++
	if o.refs == 0 {
		o.overReleases++
		o.tb.Errorf("comtest: Release on %s with no references", o.name)
		return 0
	}
	o.refs--
	return uintptr(o.refs)
}

// Implement sets the method behind the named slot, for every interface of
// o that has it. It panics if no interface of o has the slot.
func (o *Object) Implement(slot string, m Method) *Object {
	found := false
	for _, f := range o.faces {
		if _, ok := f.info.Slot(slot); ok {
			found = true
		}
	}
	if !found {
		panic(fmt.Sprintf("comtest: %s has no slot %s", o.name, slot))
	}
	o.mu.Lock()
	o.methods[slot] = m
	o.mu.Unlock()
	return o
}

// Acquire adds a reference and returns the object pointer for the primary
// interface, as a foreign factory would. Adopt the result.
func (o *Object) Acquire() unsafe.Pointer {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.refs++
	return unsafe.Pointer(o.faces[0])
}

// Face returns the object pointer for info without adding a reference, or
// nil if o does not implement info.
func (o *Object) Face(info *com.InterfaceInfo) unsafe.Pointer {
	if f := o.faceFor(info.IID); f != nil {
		return unsafe.Pointer(f)
	}
	return nil
}

// Is reports whether p, as passed in a slot argument, points at o.
func (o *Object) Is(p uintptr) bool {
	return slices.ContainsFunc(o.faces, func(f *face) bool {
		return uintptr(unsafe.Pointer(f)) == p
	})
}

// Withhold makes o refuse queries for iid from now on, as objects that
// expose an interface only in some states do. Object pointers already
// handed out stay valid.
func (o *Object) Withhold(iid com.IID) *Object {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.supported.Delete(iid)
	return o
}

// Supports reports whether o answers queries for iid.
func (o *Object) Supports(iid com.IID) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.supported.Contains(iid)
}

// Supported returns the IIDs o answers queries for, in string order.
func (o *Object) Supported() []com.IID {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.supported.ToSlice()
}

// Refs returns the current reference count.
func (o *Object) Refs() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.refs
}

// OverReleases returns how many releases arrived with no reference left.
func (o *Object) OverReleases() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.overReleases
}

// Calls returns how many times the named slot was called.
func (o *Object) Calls(slot string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calls[slot]
}

// Out returns the out-parameter passed in arg as a *T.
func Out[T any](arg uintptr) *T {
	return (*T)(unsafe.Pointer(arg))
}

// String decodes the NUL-terminated UTF-16 text passed in arg.
func String(arg uintptr) string {
	return com.UTF16PtrToString((*uint16)(unsafe.Pointer(arg)))
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package com

import (
	"errors"
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/itsManjeet/comsafe/internal/abi"
)

// IUnknownVtbl is the dispatch table every interface begins with.
type IUnknownVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

// IUnknownInfo describes IUnknown.
var IUnknownInfo = Declare[IUnknownVtbl]("IUnknown", "00000000-0000-0000-C000-000000000046", nil)

// ErrNullPointer is returned when a null interface pointer would be adopted,
// or when a method is called on a wrapper that owns no object. No foreign
// call is made in either case.
var ErrNullPointer = errors.New("com: null interface pointer")

// Object is implemented by every interface wrapper. It is satisfied by
// embedding IUnknown, directly or through the wrapper of a base interface.
type Object interface {
	// Info describes the wrapper's interface. It is called on zero
	// values, so it must not depend on the receiver.
	Info() *InterfaceInfo

	unknown() *IUnknown
}

// Unknown is the capability shared by every wrapper: identity, capability
// queries and release. Code written against Unknown accepts any wrapper.
type Unknown interface {
	Object
	Ptr() unsafe.Pointer
	IsNull() bool
	QueryInterface(iid IID) (*IUnknown, error)
	Release() uint32
}

var _ Unknown = (*IUnknown)(nil)

// IUnknown owns one reference to a foreign object.
//
// Copying an IUnknown value copies an alias of the same reference: releasing
// either copy releases the reference once. Use Clone for a second reference.
type IUnknown struct {
	ref *reference
}

// reference holds the object pointer until it is released. The pointer is
// swapped out atomically, so the foreign Release runs at most once.
type reference struct {
	ppv unsafe.Pointer
}

func newReference(ppv unsafe.Pointer) *reference {
	r := &reference{ppv: ppv}
	runtime.SetFinalizer(r, (*reference).release)
	return r
}

func (r *reference) load() unsafe.Pointer {
	return atomic.LoadPointer(&r.ppv)
}

func (r *reference) release() uint32 {
	p := atomic.SwapPointer(&r.ppv, nil)
	if p == nil {
		return 0
	}
	runtime.SetFinalizer(r, nil)
	vt := *(**IUnknownVtbl)(p)
	return uint32(abi.Call(vt.Release, uintptr(p)))
}

// Info returns IUnknownInfo.
func (*IUnknown) Info() *InterfaceInfo { return IUnknownInfo }

func (u *IUnknown) unknown() *IUnknown { return u }

func (u *IUnknown) attach(ppv unsafe.Pointer) {
	if u.ref != nil && u.ref.load() != nil {
		panic("com: attaching to a wrapper that still owns a reference")
	}
	u.ref = newReference(ppv)
}

// Ptr returns the object pointer, or nil once the wrapper is released.
// The pointer is borrowed: it is only valid while the wrapper owns its
// reference.
func (u *IUnknown) Ptr() unsafe.Pointer {
	if u == nil || u.ref == nil {
		return nil
	}
	return u.ref.load()
}

// IsNull reports whether the wrapper owns no object.
func (u *IUnknown) IsNull() bool { return u.Ptr() == nil }

// Release gives up the wrapper's reference and returns the count the object
// reports afterwards. Only the first call has an effect; releasing a null or
// already released wrapper returns 0 and calls nothing.
func (u *IUnknown) Release() uint32 {
	if u == nil || u.ref == nil {
		return 0
	}
	return u.ref.release()
}

func addRef(p unsafe.Pointer) uint32 {
	vt := *(**IUnknownVtbl)(p)
	return uint32(abi.Call(vt.AddRef, uintptr(p)))
}

func (u *IUnknown) queryInterface(iid IID) (unsafe.Pointer, error) {
	p := u.Ptr()
	if p == nil {
		return nil, ErrNullPointer
	}
	var out unsafe.Pointer
	vt := *(**IUnknownVtbl)(p)
	hr := HRESULT(abi.Call(vt.QueryInterface,
		uintptr(p),
		uintptr(unsafe.Pointer(&iid)),
		uintptr(unsafe.Pointer(&out))))
	runtime.KeepAlive(u)
	if hr.Failed() {
		return nil, hr
	}
	if out == nil {
		return nil, E_POINTER
	}
	return out, nil
}

// QueryInterface asks the object for the interface iid and returns a new
// wrapper owning the reference the object added. The receiver is unaffected
// either way. A refusal is reported as a *QueryError matching E_NOINTERFACE.
func (u *IUnknown) QueryInterface(iid IID) (*IUnknown, error) {
	ppv, err := u.queryInterface(iid)
	if err != nil {
		return nil, queryError(iid, err)
	}
	w := new(IUnknown)
	w.attach(ppv)
	return w, nil
}

// Adopt wraps ppv, a pointer handed back by foreign code together with one
// reference that now belongs to the returned wrapper. A nil ppv yields
// ErrNullPointer.
func Adopt[T any, P interface {
	*T
	Object
}](ppv unsafe.Pointer) (*T, error) {
	if ppv == nil {
		return nil, ErrNullPointer
	}
	w := new(T)
	P(w).unknown().attach(ppv)
	return w, nil
}

// Query asks src for the interface of T. On success the result owns a new
// reference of its own; on failure src is unaffected and the error is a
// *QueryError.
func Query[T any, P interface {
	*T
	Object
}](src Object) (*T, error) {
	info := P(new(T)).Info()
	ppv, err := src.unknown().queryInterface(info.IID)
	if err != nil {
		return nil, queryError(info.IID, err)
	}
	return Adopt[T, P](ppv)
}

// Clone adds a reference to the object behind src and returns a second,
// independently released wrapper of the same type.
func Clone[T any, P interface {
	*T
	Object
}](src P) (*T, error) {
	p := src.unknown().Ptr()
	if p == nil {
		return nil, ErrNullPointer
	}
	addRef(p)
	runtime.KeepAlive(src)
	return Adopt[T, P](p)
}

// Same reports whether a and b are the same object, by comparing their
// IUnknown identity pointers.
func Same(a, b Object) (bool, error) {
	pa, err := a.unknown().QueryInterface(IUnknownInfo.IID)
	if err != nil {
		return false, err
	}
	defer pa.Release()
	pb, err := b.unknown().QueryInterface(IUnknownInfo.IID)
	if err != nil {
		return false, err
	}
	defer pb.Release()
	return pa.Ptr() == pb.Ptr(), nil
}

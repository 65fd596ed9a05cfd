// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oleaut

import (
	"unsafe"

	"github.com/itsManjeet/comsafe/com"
)

// IDispatchVtbl is the dispatch table of IDispatch.
type IDispatchVtbl struct {
	com.IUnknownVtbl
	GetTypeInfoCount uintptr
	GetTypeInfo      uintptr
	GetIDsOfNames    uintptr
	Invoke           uintptr
}

// IDispatchInfo describes IDispatch.
var IDispatchInfo = com.Declare[IDispatchVtbl]("IDispatch", "00020400-0000-0000-C000-000000000046", com.IUnknownInfo)

// IDispatch wraps an automation object.
type IDispatch struct{ com.IUnknown }

// Info returns IDispatchInfo.
func (*IDispatch) Info() *com.InterfaceInfo { return IDispatchInfo }

// Dispatch is the capability of IDispatch and of every interface that
// extends it.
type Dispatch interface {
	com.Unknown
	GetTypeInfoCount() (uint32, error)
	GetIDsOfNames(lcid uint32, names ...string) ([]int32, error)
}

var _ Dispatch = (*IDispatch)(nil)

// LOCALE_USER_DEFAULT selects the user's default locale in GetIDsOfNames.
const LOCALE_USER_DEFAULT = 0x400

// GetTypeInfoCount reports how many type information interfaces the object
// provides: 0 or 1.
func (d *IDispatch) GetTypeInfoCount() (uint32, error) {
	vt, err := com.VTable[IDispatchVtbl](d)
	if err != nil {
		return 0, err
	}
	var n uint32
	if err := com.Check(com.Call(d, vt.GetTypeInfoCount, uintptr(unsafe.Pointer(&n)))); err != nil {
		return 0, err
	}
	return n, nil
}

// GetIDsOfNames maps a member name, followed by the names of its arguments,
// to dispatch identifiers.
func (d *IDispatch) GetIDsOfNames(lcid uint32, names ...string) ([]int32, error) {
	vt, err := com.VTable[IDispatchVtbl](d)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, com.E_INVALIDARG
	}
	ptrs := make([]*uint16, len(names))
	for i, name := range names {
		if ptrs[i], err = com.UTF16PtrFromString(name); err != nil {
			return nil, err
		}
	}
	ids := make([]int32, len(names))
	var iidNull com.IID
	hr := com.Call(d, vt.GetIDsOfNames,
		uintptr(unsafe.Pointer(&iidNull)),
		uintptr(unsafe.Pointer(&ptrs[0])),
		uintptr(len(names)),
		uintptr(lcid),
		uintptr(unsafe.Pointer(&ids[0])))
	if err := com.Check(hr); err != nil {
		return nil, err
	}
	return ids, nil
}

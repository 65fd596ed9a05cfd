// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package com

import (
	"runtime"

	"github.com/itsManjeet/comsafe/internal/abi"
)

// VTable resolves obj's dispatch table as V. V must be the table of obj's
// interface or of one of its ancestors. A wrapper that owns no object
// yields ErrNullPointer.
func VTable[V any](obj Object) (*V, error) {
	this := obj.unknown().Ptr()
	if this == nil {
		return nil, ErrNullPointer
	}
	return *(**V)(this), nil
}

// Call invokes the slot fn on obj with args and returns the slot's result
// as an HRESULT. The object pointer is passed as the implicit first
// argument, and obj is kept reachable until the slot returns, so its
// finalizer cannot release the object mid-call. A wrapper released in the
// meantime yields E_POINTER. Nothing is retried.
//
// As with abi.Call, pointer arguments must be converted to uintptr in the
// argument list itself.
//
//go:uintptrescapes
func Call(obj Object, fn uintptr, args ...uintptr) HRESULT {
	this := obj.unknown().Ptr()
	if this == nil {
		return E_POINTER
	}
	full := make([]uintptr, 0, 1+len(args))
	full = append(full, uintptr(this))
	full = append(full, args...)
	hr := HRESULT(abi.Call(fn, full...))
	runtime.KeepAlive(obj)
	return hr
}

// Check maps a successful hr to nil and a failed one to itself.
func Check(hr HRESULT) error {
	if hr.Succeeded() {
		return nil
	}
	return hr
}

// CheckBool maps hr for methods that answer a question with their status:
// S_FALSE is false, any other success is true, and a failure is an error.
func CheckBool(hr HRESULT) (bool, error) {
	switch {
	case hr == S_FALSE:
		return false, nil
	case hr.Succeeded():
		return true, nil
	default:
		return false, hr
	}
}

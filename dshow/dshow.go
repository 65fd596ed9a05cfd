// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dshow wraps the DirectShow filter graph interfaces.
package dshow

import (
	"unsafe"

	"github.com/itsManjeet/comsafe/com"
)

// FILTER_STATE is the streaming state of a filter or graph.
type FILTER_STATE uint32

const (
	State_Stopped FILTER_STATE = 0
	State_Paused  FILTER_STATE = 1
	State_Running FILTER_STATE = 2
)

func (s FILTER_STATE) String() string {
	switch s {
	case State_Stopped:
		return "stopped"
	case State_Paused:
		return "paused"
	case State_Running:
		return "running"
	}
	return "state?"
}

const (
	// VFW_S_STATE_INTERMEDIATE reports that a state change has not
	// finished within the timeout.
	VFW_S_STATE_INTERMEDIATE com.HRESULT = 0x00040237
	// VFW_S_CANT_CUE reports a paused filter that cannot deliver data.
	VFW_S_CANT_CUE com.HRESULT = 0x00040268

	VFW_E_NOT_FOUND com.HRESULT = 0x80040216
)

// REFERENCE_TIME counts 100-nanosecond units.
type REFERENCE_TIME int64

// timeArgs splits t into call arguments: one on 64-bit platforms, two
// (low, high) on 32-bit ones.
func timeArgs(t REFERENCE_TIME) []uintptr {
	if unsafe.Sizeof(uintptr(0)) == 8 {
		return []uintptr{uintptr(t)}
	}
	return []uintptr{uintptr(uint32(t)), uintptr(uint32(uint64(t) >> 32))}
}

// ptrOf returns the object pointer of obj, or 0 for a nil wrapper.
func ptrOf[T any, P interface {
	*T
	com.Unknown
}](obj P) uintptr {
	if obj == nil {
		return 0
	}
	return uintptr(obj.Ptr())
}

// optionalString converts s, mapping "" to a null pointer.
func optionalString(s string) (*uint16, error) {
	if s == "" {
		return nil, nil
	}
	return com.UTF16PtrFromString(s)
}

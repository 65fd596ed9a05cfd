// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package com

import (
	"unsafe"

	"github.com/itsManjeet/comsafe/internal/abi"
)

// CLSCTX selects where a class may be instantiated.
type CLSCTX uint32

const (
	CLSCTX_INPROC_SERVER  CLSCTX = 0x1
	CLSCTX_INPROC_HANDLER CLSCTX = 0x2
	CLSCTX_LOCAL_SERVER   CLSCTX = 0x4
	CLSCTX_REMOTE_SERVER  CLSCTX = 0x10
	CLSCTX_ALL                   = CLSCTX_INPROC_SERVER | CLSCTX_INPROC_HANDLER | CLSCTX_LOCAL_SERVER | CLSCTX_REMOTE_SERVER
)

// CreateInstance creates an object of class clsid and returns it wrapped as
// T. It must be called inside an Apartment.
func CreateInstance[T any, P interface {
	*T
	Object
}](clsid CLSID, ctx CLSCTX) (*T, error) {
	iid := P(new(T)).Info().IID
	var out unsafe.Pointer
	hr := HRESULT(abi.CoCreateInstance(unsafe.Pointer(&clsid), uint32(ctx), unsafe.Pointer(&iid), &out))
	if hr.Failed() {
		return nil, hr
	}
	return Adopt[T, P](out)
}

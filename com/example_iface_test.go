// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package com_test

import (
	"unsafe"

	"github.com/itsManjeet/comsafe/com"
)

// Interfaces used by the tests: IWidget extends IUnknown, IGadget extends
// IWidget, and IOther is unrelated.

type IWidgetVtbl struct {
	com.IUnknownVtbl
	Ping    uintptr
	IsReady uintptr
	GetName uintptr
}

type IGadgetVtbl struct {
	IWidgetVtbl
	Spin uintptr
}

type IOtherVtbl struct {
	com.IUnknownVtbl
	Other uintptr
}

var (
	IWidgetInfo = com.Declare[IWidgetVtbl]("IWidget", "6f2c3a10-9d4e-4c1b-a0f2-3e5d7c9b1a01", com.IUnknownInfo)
	IGadgetInfo = com.Declare[IGadgetVtbl]("IGadget", "6f2c3a10-9d4e-4c1b-a0f2-3e5d7c9b1a02", IWidgetInfo)
	IOtherInfo  = com.Declare[IOtherVtbl]("IOther", "6f2c3a10-9d4e-4c1b-a0f2-3e5d7c9b1a03", com.IUnknownInfo)
)

type IWidget struct{ com.IUnknown }

func (*IWidget) Info() *com.InterfaceInfo { return IWidgetInfo }

func (w *IWidget) Ping(n int32) error {
	vt, err := com.VTable[IWidgetVtbl](w)
	if err != nil {
		return err
	}
	return com.Check(com.Call(w, vt.Ping, uintptr(n)))
}

func (w *IWidget) IsReady() (bool, error) {
	vt, err := com.VTable[IWidgetVtbl](w)
	if err != nil {
		return false, err
	}
	return com.CheckBool(com.Call(w, vt.IsReady))
}

func (w *IWidget) Name() (string, error) {
	vt, err := com.VTable[IWidgetVtbl](w)
	if err != nil {
		return "", err
	}
	return com.FetchString(func(buf []uint16) (int, error) {
		var p *uint16
		if len(buf) > 0 {
			p = &buf[0]
		}
		var need uint32
		hr := com.Call(w, vt.GetName,
			uintptr(unsafe.Pointer(p)),
			uintptr(len(buf)),
			uintptr(unsafe.Pointer(&need)))
		return int(need), com.Check(hr)
	})
}

type IGadget struct{ IWidget }

func (*IGadget) Info() *com.InterfaceInfo { return IGadgetInfo }

func (g *IGadget) Spin() error {
	vt, err := com.VTable[IGadgetVtbl](g)
	if err != nil {
		return err
	}
	return com.Check(com.Call(g, vt.Spin))
}

type IOther struct{ com.IUnknown }

func (*IOther) Info() *com.InterfaceInfo { return IOtherInfo }

// Widget is the capability of IWidget, offered by IGadget as well.
type Widget interface {
	com.Unknown
	Ping(n int32) error
	IsReady() (bool, error)
}

var (
	_ Widget      = (*IWidget)(nil)
	_ Widget      = (*IGadget)(nil)
	_ com.Unknown = (*IOther)(nil)
)

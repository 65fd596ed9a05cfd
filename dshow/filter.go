// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dshow

import (
	"unsafe"

	"github.com/itsManjeet/comsafe/com"
	"github.com/itsManjeet/comsafe/ole"
)

type IMediaFilterVtbl struct {
	ole.IPersistVtbl
	Stop          uintptr
	Pause         uintptr
	Run           uintptr
	GetState      uintptr
	SetSyncSource uintptr
	GetSyncSource uintptr
}

type IBaseFilterVtbl struct {
	IMediaFilterVtbl
	EnumPins        uintptr
	FindPin         uintptr
	QueryFilterInfo uintptr
	JoinFilterGraph uintptr
	QueryVendorInfo uintptr
}

var (
	IMediaFilterInfo = com.Declare[IMediaFilterVtbl]("IMediaFilter", "56A86899-0AD4-11CE-B03A-0020AF0BA770", ole.IPersistInfo)
	IBaseFilterInfo  = com.Declare[IBaseFilterVtbl]("IBaseFilter", "56A86895-0AD4-11CE-B03A-0020AF0BA770", IMediaFilterInfo)
)

// MediaFilter is the capability of anything that streams: filters and
// the graph's own media control.
type MediaFilter interface {
	ole.Persist
	Stop() error
	Pause() error
	Run(start REFERENCE_TIME) error
	GetState(timeoutMillis uint32) (FILTER_STATE, error)
}

var (
	_ MediaFilter = (*IMediaFilter)(nil)
	_ MediaFilter = (*IBaseFilter)(nil)
)

// IMediaFilter wraps a filter's streaming control.
type IMediaFilter struct{ ole.IPersist }

func (*IMediaFilter) Info() *com.InterfaceInfo { return IMediaFilterInfo }

func (f *IMediaFilter) call(slot func(*IMediaFilterVtbl) uintptr, args ...uintptr) error {
	vt, err := com.VTable[IMediaFilterVtbl](f)
	if err != nil {
		return err
	}
	return com.Check(com.Call(f, slot(vt), args...))
}

func (f *IMediaFilter) Stop() error {
	return f.call(func(vt *IMediaFilterVtbl) uintptr { return vt.Stop })
}

func (f *IMediaFilter) Pause() error {
	return f.call(func(vt *IMediaFilterVtbl) uintptr { return vt.Pause })
}

// Run starts streaming. start is the stream time offset at which the
// first sample plays.
func (f *IMediaFilter) Run(start REFERENCE_TIME) error {
	return f.call(func(vt *IMediaFilterVtbl) uintptr { return vt.Run }, timeArgs(start)...)
}

// GetState returns the filter's state, waiting up to timeoutMillis for a
// pending transition. A transition still in progress, or a paused filter
// that cannot cue data, is not an error: the state reached so far is
// returned.
func (f *IMediaFilter) GetState(timeoutMillis uint32) (FILTER_STATE, error) {
	vt, err := com.VTable[IMediaFilterVtbl](f)
	if err != nil {
		return 0, err
	}
	var state FILTER_STATE
	hr := com.Call(f, vt.GetState, uintptr(timeoutMillis), uintptr(unsafe.Pointer(&state)))
	if err := com.Check(hr); err != nil {
		return 0, err
	}
	return state, nil
}

// FilterInfo describes a filter. Graph, when not nil, holds a reference
// the caller must release.
type FilterInfo struct {
	Name  string
	Graph *IFilterGraph
}

// IBaseFilter wraps a filter in a filter graph.
type IBaseFilter struct{ IMediaFilter }

func (*IBaseFilter) Info() *com.InterfaceInfo { return IBaseFilterInfo }

// filterInfo has the native layout of FILTER_INFO.
type filterInfo struct {
	name  [128]uint16
	graph unsafe.Pointer
}

// QueryFilterInfo returns the filter's name and the graph it belongs to.
func (f *IBaseFilter) QueryFilterInfo() (FilterInfo, error) {
	vt, err := com.VTable[IBaseFilterVtbl](f)
	if err != nil {
		return FilterInfo{}, err
	}
	var fi filterInfo
	if err := com.Check(com.Call(f, vt.QueryFilterInfo, uintptr(unsafe.Pointer(&fi)))); err != nil {
		return FilterInfo{}, err
	}
	info := FilterInfo{Name: com.UTF16ToString(fi.name[:])}
	if fi.graph != nil {
		// The filter added a reference to its graph for us.
		if info.Graph, err = com.Adopt[IFilterGraph](fi.graph); err != nil {
			return FilterInfo{}, err
		}
	}
	return info, nil
}

// JoinFilterGraph tells the filter it joined graph under name, or left
// its graph when graph is nil. The filter must not keep a reference to
// graph.
func (f *IBaseFilter) JoinFilterGraph(graph *IFilterGraph, name string) error {
	vt, err := com.VTable[IBaseFilterVtbl](f)
	if err != nil {
		return err
	}
	s, err := optionalString(name)
	if err != nil {
		return err
	}
	return com.Check(com.Call(f, vt.JoinFilterGraph, ptrOf(graph), uintptr(unsafe.Pointer(s))))
}

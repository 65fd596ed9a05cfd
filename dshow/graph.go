// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dshow

import (
	"unsafe"

	"github.com/itsManjeet/comsafe/com"
)

type IFilterGraphVtbl struct {
	com.IUnknownVtbl
	AddFilter            uintptr
	RemoveFilter         uintptr
	EnumFilters          uintptr
	FindFilterByName     uintptr
	ConnectDirect        uintptr
	Reconnect            uintptr
	Disconnect           uintptr
	SetDefaultSyncSource uintptr
}

type IEnumFiltersVtbl struct {
	com.IUnknownVtbl
	Next  uintptr
	Skip  uintptr
	Reset uintptr
	Clone uintptr
}

var (
	IFilterGraphInfo = com.Declare[IFilterGraphVtbl]("IFilterGraph", "56A8689F-0AD4-11CE-B03A-0020AF0BA770", com.IUnknownInfo)
	IEnumFiltersInfo = com.Declare[IEnumFiltersVtbl]("IEnumFilters", "56A86893-0AD4-11CE-B03A-0020AF0BA770", com.IUnknownInfo)
)

// CLSID_FilterGraph is the class of the standard filter graph manager.
var CLSID_FilterGraph = com.MustParseGUID("E436EBB3-524F-11CE-9F53-0020AF0BA770")

// IFilterGraph wraps a filter graph.
type IFilterGraph struct{ com.IUnknown }

func (*IFilterGraph) Info() *com.InterfaceInfo { return IFilterGraphInfo }

// AddFilter adds filter to the graph under name. An empty name lets the
// graph pick one. The graph keeps its own reference to filter.
func (g *IFilterGraph) AddFilter(filter *IBaseFilter, name string) error {
	vt, err := com.VTable[IFilterGraphVtbl](g)
	if err != nil {
		return err
	}
	p, err := filterArg(filter)
	if err != nil {
		return err
	}
	s, err := optionalString(name)
	if err != nil {
		return err
	}
	return com.Check(com.Call(g, vt.AddFilter, p, uintptr(unsafe.Pointer(s))))
}

// RemoveFilter removes filter from the graph.
func (g *IFilterGraph) RemoveFilter(filter *IBaseFilter) error {
	vt, err := com.VTable[IFilterGraphVtbl](g)
	if err != nil {
		return err
	}
	p, err := filterArg(filter)
	if err != nil {
		return err
	}
	return com.Check(com.Call(g, vt.RemoveFilter, p))
}

// filterArg returns the object pointer of filter, which must be live.
func filterArg(filter *IBaseFilter) (uintptr, error) {
	p := ptrOf(filter)
	if p == 0 {
		return 0, com.ErrNullPointer
	}
	return p, nil
}

// EnumFilters returns an enumerator over the filters in the graph.
func (g *IFilterGraph) EnumFilters() (*IEnumFilters, error) {
	vt, err := com.VTable[IFilterGraphVtbl](g)
	if err != nil {
		return nil, err
	}
	var out unsafe.Pointer
	if err := com.Check(com.Call(g, vt.EnumFilters, uintptr(unsafe.Pointer(&out)))); err != nil {
		return nil, err
	}
	return com.Adopt[IEnumFilters](out)
}

// FindFilterByName returns the filter added under name. A missing filter
// is reported as VFW_E_NOT_FOUND.
func (g *IFilterGraph) FindFilterByName(name string) (*IBaseFilter, error) {
	vt, err := com.VTable[IFilterGraphVtbl](g)
	if err != nil {
		return nil, err
	}
	s, err := com.UTF16PtrFromString(name)
	if err != nil {
		return nil, err
	}
	var out unsafe.Pointer
	if err := com.Check(com.Call(g, vt.FindFilterByName, uintptr(unsafe.Pointer(s)), uintptr(unsafe.Pointer(&out)))); err != nil {
		return nil, err
	}
	return com.Adopt[IBaseFilter](out)
}

// SetDefaultSyncSource makes the graph choose its reference clock.
func (g *IFilterGraph) SetDefaultSyncSource() error {
	vt, err := com.VTable[IFilterGraphVtbl](g)
	if err != nil {
		return err
	}
	return com.Check(com.Call(g, vt.SetDefaultSyncSource))
}

// Filters returns every filter in the graph. The caller releases each.
func (g *IFilterGraph) Filters() ([]*IBaseFilter, error) {
	e, err := g.EnumFilters()
	if err != nil {
		return nil, err
	}
	defer e.Release()
	return e.All()
}

// IEnumFilters wraps an enumerator over the filters in a graph.
type IEnumFilters struct{ com.IUnknown }

func (*IEnumFilters) Info() *com.InterfaceInfo { return IEnumFiltersInfo }

// Next fetches up to n filters. done reports that the enumeration ended
// before n filters were found; the filters fetched so far are returned
// either way and the caller releases each.
func (e *IEnumFilters) Next(n int) (filters []*IBaseFilter, done bool, err error) {
	vt, err := com.VTable[IEnumFiltersVtbl](e)
	if err != nil {
		return nil, false, err
	}
	if n <= 0 {
		return nil, false, com.E_INVALIDARG
	}
	out := make([]unsafe.Pointer, n)
	var fetched uint32
	hr := com.Call(e, vt.Next, uintptr(n), uintptr(unsafe.Pointer(&out[0])), uintptr(unsafe.Pointer(&fetched)))
	more, err := com.CheckBool(hr)
	if err != nil {
		return nil, false, err
	}
	if int(fetched) > n {
		fetched = uint32(n)
	}
	for _, p := range out[:fetched] {
		f, err := com.Adopt[IBaseFilter](p)
		if err != nil {
			releaseAll(filters)
			return nil, false, err
		}
		filters = append(filters, f)
	}
	return filters, !more, nil
}

// All fetches every remaining filter.
func (e *IEnumFilters) All() ([]*IBaseFilter, error) {
	var all []*IBaseFilter
	for {
		batch, done, err := e.Next(16)
		all = append(all, batch...)
		if err != nil {
			releaseAll(all)
			return nil, err
		}
		if done {
			return all, nil
		}
	}
}

func releaseAll(filters []*IBaseFilter) {
	for _, f := range filters {
		f.Release()
	}
}

// Skip skips n filters. It reports false if fewer than n remained.
func (e *IEnumFilters) Skip(n uint32) (bool, error) {
	vt, err := com.VTable[IEnumFiltersVtbl](e)
	if err != nil {
		return false, err
	}
	return com.CheckBool(com.Call(e, vt.Skip, uintptr(n)))
}

// Reset rewinds the enumerator.
func (e *IEnumFilters) Reset() error {
	vt, err := com.VTable[IEnumFiltersVtbl](e)
	if err != nil {
		return err
	}
	return com.Check(com.Call(e, vt.Reset))
}

// Clone returns an enumerator with the same position.
func (e *IEnumFilters) Clone() (*IEnumFilters, error) {
	vt, err := com.VTable[IEnumFiltersVtbl](e)
	if err != nil {
		return nil, err
	}
	var out unsafe.Pointer
	if err := com.Check(com.Call(e, vt.Clone, uintptr(unsafe.Pointer(&out)))); err != nil {
		return nil, err
	}
	return com.Adopt[IEnumFilters](out)
}

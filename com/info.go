// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package com

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
	"sync"
	"unsafe"
)

// An InterfaceInfo describes one interface: its name, its identity, its base
// and the layout of its dispatch table.
type InterfaceInfo struct {
	Name string
	IID  IID
	Base *InterfaceInfo

	slots []string
}

// Declare describes the interface whose dispatch table has the layout of V
// and registers it under its IID.
//
// V must be a struct whose fields are uintptr slots, optionally preceded by
// an embedded struct holding the base interface's table. The flattened slot
// list of base must be an exact prefix of V's. Declare panics if V is
// malformed, if the prefix does not match, or if iid is already declared
// under another name.
func Declare[V any](name, iid string, base *InterfaceInfo) *InterfaceInfo {
	t := reflect.TypeOf((*V)(nil)).Elem()
	slots := vtableSlots(t)
	if want := uintptr(len(slots)) * unsafe.Sizeof(uintptr(0)); t.Size() != want {
		panic(fmt.Sprintf("com: %s: vtable %s has size %d, want %d", name, t, t.Size(), want))
	}
	if base != nil {
		if len(slots) < len(base.slots) || !slices.Equal(slots[:len(base.slots)], base.slots) {
			panic(fmt.Sprintf("com: %s: vtable %s does not begin with the slots of %s", name, t, base.Name))
		}
	}
	info := &InterfaceInfo{
		Name:  name,
		IID:   MustParseGUID(iid),
		Base:  base,
		slots: slots,
	}
	return register(info)
}

func vtableSlots(t reflect.Type) []string {
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("com: vtable %s is not a struct", t))
	}
	var slots []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		switch {
		case f.Anonymous && f.Type.Kind() == reflect.Struct:
			if i != 0 {
				panic(fmt.Sprintf("com: vtable %s embeds %s after its own slots", t, f.Type))
			}
			slots = append(slots, vtableSlots(f.Type)...)
		case f.Type.Kind() == reflect.Uintptr:
			slots = append(slots, f.Name)
		default:
			panic(fmt.Sprintf("com: vtable %s: field %s is %s, not a slot", t, f.Name, f.Type))
		}
	}
	return slots
}

// String returns the interface name.
func (i *InterfaceInfo) String() string { return i.Name }

// NumSlots returns the number of slots in the dispatch table, including
// those inherited from the base.
func (i *InterfaceInfo) NumSlots() int { return len(i.slots) }

// Slots returns the slot names in table order.
func (i *InterfaceInfo) Slots() []string { return slices.Clone(i.slots) }

// OwnSlots returns the slots the interface adds to its base.
func (i *InterfaceInfo) OwnSlots() []string {
	if i.Base == nil {
		return i.Slots()
	}
	return slices.Clone(i.slots[len(i.Base.slots):])
}

// Slot returns the table index of the named slot.
func (i *InterfaceInfo) Slot(name string) (int, bool) {
	n := slices.Index(i.slots, name)
	return n, n >= 0
}

// Ancestors returns the base chain, nearest first.
func (i *InterfaceInfo) Ancestors() []*InterfaceInfo {
	var a []*InterfaceInfo
	for b := i.Base; b != nil; b = b.Base {
		a = append(a, b)
	}
	return a
}

// Extends reports whether i is other or derives from it.
func (i *InterfaceInfo) Extends(other *InterfaceInfo) bool {
	for b := i; b != nil; b = b.Base {
		if b == other {
			return true
		}
	}
	return false
}

var registry struct {
	mu     sync.RWMutex
	byIID  map[IID]*InterfaceInfo
	byName map[string]*InterfaceInfo
}

func register(info *InterfaceInfo) *InterfaceInfo {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if registry.byIID == nil {
		registry.byIID = make(map[IID]*InterfaceInfo)
		registry.byName = make(map[string]*InterfaceInfo)
	}
	if old, ok := registry.byIID[info.IID]; ok {
		panic(fmt.Sprintf("com: %s declared again as %s, already %s", info.IID, info.Name, old.Name))
	}
	if old, ok := registry.byName[info.Name]; ok {
		panic(fmt.Sprintf("com: interface %s declared twice (%s and %s)", info.Name, old.IID, info.IID))
	}
	registry.byIID[info.IID] = info
	registry.byName[info.Name] = info
	return info
}

// Lookup returns the declared interface with the given IID.
func Lookup(iid IID) (*InterfaceInfo, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	info, ok := registry.byIID[iid]
	return info, ok
}

// LookupName returns the declared interface with the given name.
func LookupName(name string) (*InterfaceInfo, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	info, ok := registry.byName[name]
	return info, ok
}

// Interfaces returns every declared interface, sorted by name.
func Interfaces() []*InterfaceInfo {
	registry.mu.RLock()
	all := make([]*InterfaceInfo, 0, len(registry.byName))
	for _, info := range registry.byName {
		all = append(all, info)
	}
	registry.mu.RUnlock()
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// describe names iid for messages.
func describe(iid IID) string {
	if info, ok := Lookup(iid); ok {
		return info.Name + " " + iid.String()
	}
	return iid.String()
}

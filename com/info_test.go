// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package com_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/itsManjeet/comsafe/com"
)

func TestDeclare(t *testing.T) {
	want := []string{"QueryInterface", "AddRef", "Release", "Ping", "IsReady", "GetName", "Spin"}
	if diff := cmp.Diff(want, IGadgetInfo.Slots()); diff != "" {
		t.Errorf("Slots mismatch (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Spin"}, IGadgetInfo.OwnSlots()); diff != "" {
		t.Errorf("OwnSlots mismatch (-want, +got):\n%s", diff)
	}
	if n := IGadgetInfo.NumSlots(); n != 7 {
		t.Errorf("NumSlots = %d, want 7", n)
	}
	if i, ok := IGadgetInfo.Slot("IsReady"); !ok || i != 4 {
		t.Errorf("Slot(IsReady) = %d, %v, want 4, true", i, ok)
	}
	if _, ok := IGadgetInfo.Slot("Nope"); ok {
		t.Error("Slot(Nope) found")
	}

	var names []string
	for _, a := range IGadgetInfo.Ancestors() {
		names = append(names, a.Name)
	}
	if diff := cmp.Diff([]string{"IWidget", "IUnknown"}, names); diff != "" {
		t.Errorf("Ancestors mismatch (-want, +got):\n%s", diff)
	}
	if !IGadgetInfo.Extends(IWidgetInfo) || !IGadgetInfo.Extends(com.IUnknownInfo) || !IGadgetInfo.Extends(IGadgetInfo) {
		t.Error("IGadget does not extend its ancestors")
	}
	if IWidgetInfo.Extends(IGadgetInfo) || IOtherInfo.Extends(IWidgetInfo) {
		t.Error("Extends reported an unrelated interface")
	}
}

func TestLookup(t *testing.T) {
	if info, ok := com.Lookup(IWidgetInfo.IID); !ok || info != IWidgetInfo {
		t.Errorf("Lookup(IWidget) = %v, %v", info, ok)
	}
	if info, ok := com.LookupName("IGadget"); !ok || info != IGadgetInfo {
		t.Errorf("LookupName(IGadget) = %v, %v", info, ok)
	}
	if _, ok := com.Lookup(com.MustParseGUID("6f2c3a10-9d4e-4c1b-a0f2-3e5d7c9b1aff")); ok {
		t.Error("Lookup of undeclared IID succeeded")
	}
	found := false
	for _, info := range com.Interfaces() {
		if info == IOtherInfo {
			found = true
		}
	}
	if !found {
		t.Error("Interfaces() is missing IOther")
	}
}

type badFieldVtbl struct {
	com.IUnknownVtbl
	Count int32
}

type lateBaseVtbl struct {
	Extra uintptr
	com.IUnknownVtbl
}

type wrongBaseVtbl struct {
	IOtherVtbl
	Mine uintptr
}

func TestDeclarePanics(t *testing.T) {
	for _, test := range []struct {
		name    string
		declare func()
	}{
		{"non-slot field", func() {
			com.Declare[badFieldVtbl]("IBadField", "6f2c3a10-9d4e-4c1b-a0f2-3e5d7c9b1b01", com.IUnknownInfo)
		}},
		{"base after own slots", func() {
			com.Declare[lateBaseVtbl]("ILateBase", "6f2c3a10-9d4e-4c1b-a0f2-3e5d7c9b1b02", com.IUnknownInfo)
		}},
		{"base prefix mismatch", func() {
			com.Declare[wrongBaseVtbl]("IWrongBase", "6f2c3a10-9d4e-4c1b-a0f2-3e5d7c9b1b03", IWidgetInfo)
		}},
		{"duplicate IID", func() {
			com.Declare[IOtherVtbl]("IOtherAgain", IOtherInfo.IID.String(), com.IUnknownInfo)
		}},
		{"bad IID", func() {
			com.Declare[IOtherVtbl]("IBadIID", "not-a-guid", com.IUnknownInfo)
		}},
	} {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Declare did not panic")
				}
			}()
			test.declare()
		})
	}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package com_test

import (
	"errors"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/itsManjeet/comsafe/com"
	"github.com/itsManjeet/comsafe/comtest"
)

func adoptWidget(t *testing.T, m *comtest.Object) *IWidget {
	t.Helper()
	w, err := com.Adopt[IWidget](m.Acquire())
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func wantRefs(t *testing.T, m *comtest.Object, want int) {
	t.Helper()
	if got := m.Refs(); got != want {
		t.Errorf("refs = %d, want %d", got, want)
	}
}

// waitRefs collects garbage until m's count reaches want, so finalizers of
// dropped wrappers get to run.
func waitRefs(t *testing.T, m *comtest.Object, want int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for m.Refs() != want {
		if time.Now().After(deadline) {
			t.Fatalf("refs = %d after collection, want %d", m.Refs(), want)
		}
		runtime.GC()
		time.Sleep(time.Millisecond)
	}
}

func TestAdoptNull(t *testing.T) {
	w, err := com.Adopt[IWidget](nil)
	if err != com.ErrNullPointer {
		t.Errorf("Adopt(nil) error = %v, want ErrNullPointer", err)
	}
	if w != nil {
		t.Error("Adopt(nil) returned a wrapper")
	}
	var hr com.HRESULT
	if errors.As(err, &hr) {
		t.Error("null adoption is reported as a foreign failure")
	}
}

func TestReleaseOnce(t *testing.T) {
	m := comtest.New(t, IWidgetInfo)
	w := adoptWidget(t, m)
	wantRefs(t, m, 1)

	if n := w.Release(); n != 0 {
		t.Errorf("Release() = %d, want 0", n)
	}
	if n := w.Release(); n != 0 {
		t.Errorf("second Release() = %d, want 0", n)
	}
	if !w.IsNull() {
		t.Error("released wrapper is not null")
	}
	if got := m.Calls("Release"); got != 1 {
		t.Errorf("Release calls = %d, want 1", got)
	}
	if got := m.OverReleases(); got != 0 {
		t.Errorf("over-releases = %d", got)
	}

	var zero IWidget
	if n := zero.Release(); n != 0 {
		t.Errorf("zero Release() = %d", n)
	}
	var nilw *com.IUnknown
	if n := nilw.Release(); n != 0 || !nilw.IsNull() {
		t.Error("nil wrapper is not null")
	}
}

func TestAliasReleasesOnce(t *testing.T) {
	m := comtest.New(t, IWidgetInfo)
	w := adoptWidget(t, m)
	alias := *w
	w.Release()
	alias.Release()
	wantRefs(t, m, 0)
	if got := m.Calls("Release"); got != 1 {
		t.Errorf("Release calls = %d, want 1", got)
	}
}

func TestClone(t *testing.T) {
	m := comtest.New(t, IWidgetInfo).Implement("Ping", func([]uintptr) com.HRESULT { return com.S_OK })
	w := adoptWidget(t, m)
	defer w.Release()

	c, err := com.Clone(w)
	if err != nil {
		t.Fatal(err)
	}
	wantRefs(t, m, 2)
	if c.Ptr() != w.Ptr() {
		t.Error("clone points at a different object")
	}

	if n := c.Release(); n != 1 {
		t.Errorf("clone Release() = %d, want 1", n)
	}
	wantRefs(t, m, 1)
	if w.IsNull() {
		t.Error("releasing the clone released the original")
	}
	if err := w.Ping(1); err != nil {
		t.Errorf("original after clone release: %v", err)
	}
}

func TestCloneReleased(t *testing.T) {
	m := comtest.New(t, IWidgetInfo)
	w := adoptWidget(t, m)
	w.Release()
	if _, err := com.Clone(w); err != com.ErrNullPointer {
		t.Errorf("Clone(released) = %v, want ErrNullPointer", err)
	}
	if got := m.Calls("AddRef"); got != 0 {
		t.Errorf("AddRef calls = %d, want 0", got)
	}
}

func TestQuerySupported(t *testing.T) {
	m := comtest.New(t, IGadgetInfo)
	w := adoptWidget(t, m)
	defer w.Release()

	g, err := com.Query[IGadget](w)
	if err != nil {
		t.Fatal(err)
	}
	wantRefs(t, m, 2)
	if err := g.Spin(); err != com.E_NOTIMPL {
		t.Errorf("Spin() = %v, want E_NOTIMPL from the unimplemented slot", err)
	}
	// IGadget offers the IWidget methods through embedding.
	if err := g.Ping(3); err != com.E_NOTIMPL {
		t.Errorf("Ping() = %v, want E_NOTIMPL", err)
	}
	g.Release()
	wantRefs(t, m, 1)
}

func TestQueryUnsupported(t *testing.T) {
	m := comtest.New(t, IWidgetInfo)
	w := adoptWidget(t, m)
	defer w.Release()

	o, err := com.Query[IOther](w)
	if o != nil {
		t.Error("unsupported query returned a wrapper")
	}
	if !com.IsNotSupported(err) {
		t.Fatalf("Query error = %v, want not supported", err)
	}
	if !errors.Is(err, com.E_NOINTERFACE) {
		t.Error("error does not match E_NOINTERFACE")
	}
	var qe *com.QueryError
	if !errors.As(err, &qe) || qe.IID != IOtherInfo.IID {
		t.Errorf("error = %#v, want *QueryError for IOther", err)
	}
	if msg := err.Error(); !strings.Contains(msg, "IOther") || !strings.Contains(msg, "0x80004002") {
		t.Errorf("Error() = %q", msg)
	}
	wantRefs(t, m, 1)
	if w.IsNull() {
		t.Error("failed query affected the source")
	}
}

func TestQueryWithheld(t *testing.T) {
	m := comtest.New(t, IGadgetInfo, IOtherInfo).Withhold(IOtherInfo.IID)
	w := adoptWidget(t, m)
	defer w.Release()

	byString := cmpopts.SortSlices(func(a, b com.IID) bool { return a.String() < b.String() })
	want := []com.IID{com.IUnknownInfo.IID, IWidgetInfo.IID, IGadgetInfo.IID}
	if diff := cmp.Diff(want, m.Supported(), byString); diff != "" {
		t.Errorf("supported mismatch (-want +got):\n%s", diff)
	}

	for _, test := range []struct {
		info *com.InterfaceInfo
		want bool
	}{
		{com.IUnknownInfo, true},
		{IWidgetInfo, true},
		{IGadgetInfo, true},
		{IOtherInfo, false},
	} {
		if got := m.Supports(test.info.IID); got != test.want {
			t.Errorf("Supports(%s) = %v, want %v", test.info.Name, got, test.want)
		}
		u, err := w.QueryInterface(test.info.IID)
		if got := err == nil; got != test.want {
			t.Errorf("QueryInterface(%s) error = %v, want success %v", test.info.Name, err, test.want)
		}
		if err == nil {
			u.Release()
		} else if !com.IsNotSupported(err) {
			t.Errorf("QueryInterface(%s) error = %v, want not supported", test.info.Name, err)
		}
	}
	wantRefs(t, m, 1)
}

func TestQueryInterfaceUntyped(t *testing.T) {
	m := comtest.New(t, IWidgetInfo, IOtherInfo)
	w := adoptWidget(t, m)
	defer w.Release()

	u, err := w.QueryInterface(IOtherInfo.IID)
	if err != nil {
		t.Fatal(err)
	}
	if u.Ptr() != m.Face(IOtherInfo) {
		t.Error("QueryInterface returned the wrong face")
	}
	u.Release()

	if _, err := w.QueryInterface(IGadgetInfo.IID); !com.IsNotSupported(err) {
		t.Errorf("QueryInterface(IGadget) = %v, want not supported", err)
	}
	wantRefs(t, m, 1)
}

func TestQueryReleased(t *testing.T) {
	m := comtest.New(t, IWidgetInfo)
	w := adoptWidget(t, m)
	w.Release()
	if _, err := com.Query[IWidget](w); err != com.ErrNullPointer {
		t.Errorf("Query on released wrapper = %v, want ErrNullPointer", err)
	}
	if got := m.Calls("QueryInterface"); got != 0 {
		t.Errorf("QueryInterface calls = %d, want 0", got)
	}
}

func TestLifecycleScenario(t *testing.T) {
	m := comtest.New(t, IWidgetInfo)

	w := adoptWidget(t, m)
	wantRefs(t, m, 1)

	c, err := com.Clone(w)
	if err != nil {
		t.Fatal(err)
	}
	wantRefs(t, m, 2)

	c.Release()
	wantRefs(t, m, 1)

	if _, err := com.Query[IOther](w); !com.IsNotSupported(err) {
		t.Fatalf("Query(IOther) = %v, want not supported", err)
	}
	wantRefs(t, m, 1)

	w.Release()
	wantRefs(t, m, 0)

	c.Release()
	w.Release()
	if got := m.OverReleases(); got != 0 {
		t.Errorf("over-releases = %d", got)
	}
	if got := m.Calls("Release"); got != 2 {
		t.Errorf("Release calls = %d, want 2", got)
	}
}

func TestSame(t *testing.T) {
	m := comtest.New(t, IWidgetInfo, IOtherInfo)
	w := adoptWidget(t, m)
	defer w.Release()
	o, err := com.Query[IOther](w)
	if err != nil {
		t.Fatal(err)
	}
	defer o.Release()
	if w.Ptr() == o.Ptr() {
		t.Fatal("mock reused the interface pointer")
	}

	same, err := com.Same(w, o)
	if err != nil || !same {
		t.Errorf("Same(widget, other) = %v, %v, want true", same, err)
	}

	m2 := comtest.New(t, IWidgetInfo)
	w2 := adoptWidget(t, m2)
	defer w2.Release()
	same, err = com.Same(w, w2)
	if err != nil || same {
		t.Errorf("Same(different objects) = %v, %v, want false", same, err)
	}
}

func describe(u com.Unknown) string {
	return u.Info().Name
}

func TestCapabilityAcrossTypes(t *testing.T) {
	m := comtest.New(t, IGadgetInfo, IOtherInfo)
	g, err := com.Adopt[IGadget](m.Acquire())
	if err != nil {
		t.Fatal(err)
	}
	defer g.Release()
	o, err := com.Query[IOther](g)
	if err != nil {
		t.Fatal(err)
	}
	defer o.Release()

	for _, test := range []struct {
		u    com.Unknown
		want string
	}{
		{g, "IGadget"},
		{&g.IWidget, "IWidget"},
		{o, "IOther"},
	} {
		if got := describe(test.u); got != test.want {
			t.Errorf("describe = %q, want %q", got, test.want)
		}
	}
}

func TestFinalizerReleasesDroppedWrapper(t *testing.T) {
	m := comtest.New(t, IWidgetInfo)
	func() {
		adoptWidget(t, m)
	}()
	waitRefs(t, m, 0)
	if got := m.Calls("Release"); got != 1 {
		t.Errorf("Release calls = %d, want 1", got)
	}
}

func TestReleaseDisarmsFinalizer(t *testing.T) {
	m := comtest.New(t, IWidgetInfo)
	func() {
		adoptWidget(t, m).Release()
	}()
	for i := 0; i < 5; i++ {
		runtime.GC()
		time.Sleep(time.Millisecond)
	}
	if got := m.Calls("Release"); got != 1 {
		t.Errorf("Release calls = %d, want 1", got)
	}
	if got := m.OverReleases(); got != 0 {
		t.Errorf("over-releases = %d, want 0", got)
	}
}

func TestWrapperAliveDuringCall(t *testing.T) {
	refsInCall := -1
	m := comtest.New(t, IWidgetInfo)
	m.Implement("Ping", func(args []uintptr) com.HRESULT {
		for i := 0; i < 5; i++ {
			runtime.GC()
			time.Sleep(time.Millisecond)
		}
		refsInCall = m.Refs()
		return com.S_OK
	})
	// The wrapper is unreachable from here on except through the call.
	if err := adoptWidget(t, m).Ping(1); err != nil {
		t.Fatal(err)
	}
	if refsInCall != 1 {
		t.Errorf("refs during call = %d, want 1", refsInCall)
	}
	waitRefs(t, m, 0)
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package taskschd_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/itsManjeet/comsafe/com"
	"github.com/itsManjeet/comsafe/comtest"
	"github.com/itsManjeet/comsafe/oleaut"
	"github.com/itsManjeet/comsafe/taskschd"
)

// propertyObject is a mock whose Get<Name>/Put<Name> string slots read and
// write a shared property map.
type propertyObject struct {
	*comtest.Object
	props map[string]string
}

func newPropertyObject(t *testing.T, info *com.InterfaceInfo) *propertyObject {
	p := &propertyObject{Object: comtest.New(t, info), props: make(map[string]string)}
	for _, slot := range info.OwnSlots() {
		name, ok := strings.CutPrefix(slot, "Get")
		if !ok {
			continue
		}
		if _, ok := info.Slot("Put" + name); !ok {
			continue
		}
		p.Implement("Get"+name, func(args []uintptr) com.HRESULT {
			b, err := oleaut.NewBSTR(p.props[name])
			if err != nil {
				return com.E_OUTOFMEMORY
			}
			*comtest.Out[oleaut.BSTR](args[0]) = b
			return com.S_OK
		})
		p.Implement("Put"+name, func(args []uintptr) com.HRESULT {
			p.props[name] = oleaut.BSTR(args[0]).String()
			return com.S_OK
		})
	}
	return p
}

func TestTrigger(t *testing.T) {
	m := newPropertyObject(t, taskschd.ITriggerInfo)
	enabled := oleaut.VARIANT_FALSE
	m.Implement("GetType", func(args []uintptr) com.HRESULT {
		*comtest.Out[int32](args[0]) = int32(taskschd.TASK_TRIGGER_DAILY)
		return com.S_OK
	})
	m.Implement("GetEnabled", func(args []uintptr) com.HRESULT {
		*comtest.Out[oleaut.VARIANT_BOOL](args[0]) = enabled
		return com.S_OK
	})
	m.Implement("PutEnabled", func(args []uintptr) com.HRESULT {
		enabled = oleaut.VARIANT_BOOL(int16(args[0]))
		return com.S_OK
	})

	tr, err := com.Adopt[taskschd.ITrigger](m.Acquire())
	if err != nil {
		t.Fatal(err)
	}
	defer tr.Release()

	if typ, err := tr.Type(); err != nil || typ != taskschd.TASK_TRIGGER_DAILY {
		t.Errorf("Type() = %v, %v, want daily", typ, err)
	}
	for _, set := range []error{
		tr.SetID("nightly"),
		tr.SetStartBoundary("2026-10-16T02:00:00"),
		tr.SetEndBoundary("2027-10-16T02:00:00"),
		tr.SetExecutionTimeLimit("PT1H30M"),
		tr.SetEnabled(true),
	} {
		if set != nil {
			t.Fatal(set)
		}
	}
	want := map[string]string{
		"ID":                 "nightly",
		"StartBoundary":      "2026-10-16T02:00:00",
		"EndBoundary":        "2027-10-16T02:00:00",
		"ExecutionTimeLimit": "PT1H30M",
	}
	if diff := cmp.Diff(want, m.props); diff != "" {
		t.Errorf("stored properties mismatch (-want +got):\n%s", diff)
	}
	if enabled != oleaut.VARIANT_TRUE {
		t.Errorf("stored enabled = %d, want VARIANT_TRUE", enabled)
	}

	for _, test := range []struct {
		get  func() (string, error)
		want string
	}{
		{tr.ID, "nightly"},
		{tr.StartBoundary, "2026-10-16T02:00:00"},
		{tr.EndBoundary, "2027-10-16T02:00:00"},
		{tr.ExecutionTimeLimit, "PT1H30M"},
	} {
		if got, err := test.get(); err != nil || got != test.want {
			t.Errorf("got %q, %v, want %q", got, err, test.want)
		}
	}
	if on, err := tr.Enabled(); err != nil || !on {
		t.Errorf("Enabled() = %v, %v, want true", on, err)
	}
}

func TestTriggerGetterFailure(t *testing.T) {
	m := comtest.New(t, taskschd.ITriggerInfo).Implement("GetID", func([]uintptr) com.HRESULT {
		return com.E_ACCESSDENIED
	})
	tr, err := com.Adopt[taskschd.ITrigger](m.Acquire())
	if err != nil {
		t.Fatal(err)
	}
	defer tr.Release()
	if id, err := tr.ID(); err != com.E_ACCESSDENIED || id != "" {
		t.Errorf("ID() = %q, %v, want E_ACCESSDENIED", id, err)
	}
	// Unimplemented slots report E_NOTIMPL rather than panicking.
	if _, err := tr.StartBoundary(); err != com.E_NOTIMPL {
		t.Errorf("StartBoundary() error = %v, want E_NOTIMPL", err)
	}
}

func TestEmailAction(t *testing.T) {
	m := newPropertyObject(t, taskschd.IEmailActionInfo)
	m.Implement("GetType", func(args []uintptr) com.HRESULT {
		*comtest.Out[int32](args[0]) = int32(taskschd.TASK_ACTION_SEND_EMAIL)
		return com.S_OK
	})
	// IAction's own ID slots are inherited, so register them as well.
	m.Implement("GetID", func(args []uintptr) com.HRESULT {
		b, _ := oleaut.NewBSTR(m.props["ID"])
		*comtest.Out[oleaut.BSTR](args[0]) = b
		return com.S_OK
	})
	m.Implement("PutID", func(args []uintptr) com.HRESULT {
		m.props["ID"] = oleaut.BSTR(args[0]).String()
		return com.S_OK
	})

	a, err := com.Adopt[taskschd.IEmailAction](m.Acquire())
	if err != nil {
		t.Fatal(err)
	}
	defer a.Release()

	setters := []struct {
		set  func(string) error
		get  func() (string, error)
		prop string
		val  string
	}{
		{a.SetID, a.ID, "ID", "notify"},
		{a.SetServer, a.Server, "Server", "smtp.example.com"},
		{a.SetSubject, a.Subject, "Subject", "Backup finished"},
		{a.SetTo, a.To, "To", "ops@example.com"},
		{a.SetCc, a.Cc, "Cc", "lead@example.com"},
		{a.SetBcc, a.Bcc, "Bcc", "audit@example.com"},
		{a.SetReplyTo, a.ReplyTo, "ReplyTo", "noreply@example.com"},
		{a.SetFrom, a.From, "From", "scheduler@example.com"},
		{a.SetBody, a.Body, "Body", "Nightly backup completed."},
	}
	for _, s := range setters {
		if err := s.set(s.val); err != nil {
			t.Fatalf("set %s: %v", s.prop, err)
		}
		if got := m.props[s.prop]; got != s.val {
			t.Errorf("stored %s = %q, want %q", s.prop, got, s.val)
		}
		if got, err := s.get(); err != nil || got != s.val {
			t.Errorf("%s = %q, %v, want %q", s.prop, got, err, s.val)
		}
	}
	if typ, err := a.Type(); err != nil || typ != taskschd.TASK_ACTION_SEND_EMAIL {
		t.Errorf("Type() = %v, %v, want send-email", typ, err)
	}

	// The email action is usable through the generic action capability.
	var action taskschd.Action = a
	if id, err := action.ID(); err != nil || id != "notify" {
		t.Errorf("Action.ID() = %q, %v", id, err)
	}
}

func TestActionFromEmailQuery(t *testing.T) {
	m := comtest.New(t, taskschd.IEmailActionInfo)
	a, err := com.Adopt[taskschd.IEmailAction](m.Acquire())
	if err != nil {
		t.Fatal(err)
	}
	defer a.Release()
	base, err := com.Query[taskschd.IAction](a)
	if err != nil {
		t.Fatal(err)
	}
	base.Release()
	if _, err := com.Query[taskschd.ITrigger](a); !com.IsNotSupported(err) {
		t.Errorf("Query[ITrigger] on an action = %v, want not supported", err)
	}
}

func TestTypeStrings(t *testing.T) {
	if got := taskschd.TASK_TRIGGER_LOGON.String(); got != "logon" {
		t.Errorf("TASK_TRIGGER_LOGON = %q", got)
	}
	if got := taskschd.TASK_TRIGGER_TYPE2(10).String(); got != "trigger(10)" {
		t.Errorf("unknown trigger = %q", got)
	}
	if got := taskschd.TASK_ACTION_TYPE(3).String(); got != "action(3)" {
		t.Errorf("unknown action = %q", got)
	}
}

func TestLayout(t *testing.T) {
	if got, want := taskschd.ITriggerInfo.NumSlots(), 7+13; got != want {
		t.Errorf("ITrigger slots = %d, want %d", got, want)
	}
	if got, want := taskschd.IEmailActionInfo.NumSlots(), 7+3+20; got != want {
		t.Errorf("IEmailAction slots = %d, want %d", got, want)
	}
	idx, ok := taskschd.IEmailActionInfo.Slot("PutBody")
	if !ok || idx != 7+3+17 {
		t.Errorf("PutBody slot = %d, %v", idx, ok)
	}
	if !taskschd.IEmailActionInfo.Extends(oleaut.IDispatchInfo) {
		t.Error("IEmailAction does not extend IDispatch")
	}
}

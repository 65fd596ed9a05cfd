// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package taskschd

import (
	"github.com/itsManjeet/comsafe/com"
	"github.com/itsManjeet/comsafe/oleaut"
)

type IActionVtbl struct {
	oleaut.IDispatchVtbl
	GetID   uintptr
	PutID   uintptr
	GetType uintptr
}

type IEmailActionVtbl struct {
	IActionVtbl
	GetServer       uintptr
	PutServer       uintptr
	GetSubject      uintptr
	PutSubject      uintptr
	GetTo           uintptr
	PutTo           uintptr
	GetCc           uintptr
	PutCc           uintptr
	GetBcc          uintptr
	PutBcc          uintptr
	GetReplyTo      uintptr
	PutReplyTo      uintptr
	GetFrom         uintptr
	PutFrom         uintptr
	GetHeaderFields uintptr
	PutHeaderFields uintptr
	GetBody         uintptr
	PutBody         uintptr
	GetAttachments  uintptr
	PutAttachments  uintptr
}

var (
	IActionInfo      = com.Declare[IActionVtbl]("IAction", "BAE54997-48B1-4CBE-9965-D6BE263EBEA4", oleaut.IDispatchInfo)
	IEmailActionInfo = com.Declare[IEmailActionVtbl]("IEmailAction", "10F62C64-7E16-4314-A0C2-0C3683F99D40", IActionInfo)
)

// Action is the capability shared by every kind of action.
type Action interface {
	oleaut.Dispatch
	ID() (string, error)
	SetID(id string) error
	Type() (TASK_ACTION_TYPE, error)
}

var (
	_ Action = (*IAction)(nil)
	_ Action = (*IEmailAction)(nil)
)

// IAction wraps a task action.
type IAction struct{ oleaut.IDispatch }

func (*IAction) Info() *com.InterfaceInfo { return IActionInfo }

func (a *IAction) ID() (string, error) {
	return getString(a, func(vt *IActionVtbl) uintptr { return vt.GetID })
}

func (a *IAction) SetID(id string) error {
	return putString(a, func(vt *IActionVtbl) uintptr { return vt.PutID }, id)
}

func (a *IAction) Type() (TASK_ACTION_TYPE, error) {
	n, err := getInt32(a, func(vt *IActionVtbl) uintptr { return vt.GetType })
	return TASK_ACTION_TYPE(n), err
}

// IEmailAction wraps an action that sends mail.
type IEmailAction struct{ IAction }

func (*IEmailAction) Info() *com.InterfaceInfo { return IEmailActionInfo }

func (a *IEmailAction) get(slot func(*IEmailActionVtbl) uintptr) (string, error) {
	return getString(a, slot)
}

func (a *IEmailAction) put(slot func(*IEmailActionVtbl) uintptr, s string) error {
	return putString(a, slot, s)
}

func (a *IEmailAction) Server() (string, error) {
	return a.get(func(vt *IEmailActionVtbl) uintptr { return vt.GetServer })
}

func (a *IEmailAction) SetServer(server string) error {
	return a.put(func(vt *IEmailActionVtbl) uintptr { return vt.PutServer }, server)
}

func (a *IEmailAction) Subject() (string, error) {
	return a.get(func(vt *IEmailActionVtbl) uintptr { return vt.GetSubject })
}

func (a *IEmailAction) SetSubject(subject string) error {
	return a.put(func(vt *IEmailActionVtbl) uintptr { return vt.PutSubject }, subject)
}

func (a *IEmailAction) To() (string, error) {
	return a.get(func(vt *IEmailActionVtbl) uintptr { return vt.GetTo })
}

func (a *IEmailAction) SetTo(to string) error {
	return a.put(func(vt *IEmailActionVtbl) uintptr { return vt.PutTo }, to)
}

func (a *IEmailAction) Cc() (string, error) {
	return a.get(func(vt *IEmailActionVtbl) uintptr { return vt.GetCc })
}

func (a *IEmailAction) SetCc(cc string) error {
	return a.put(func(vt *IEmailActionVtbl) uintptr { return vt.PutCc }, cc)
}

func (a *IEmailAction) Bcc() (string, error) {
	return a.get(func(vt *IEmailActionVtbl) uintptr { return vt.GetBcc })
}

func (a *IEmailAction) SetBcc(bcc string) error {
	return a.put(func(vt *IEmailActionVtbl) uintptr { return vt.PutBcc }, bcc)
}

func (a *IEmailAction) ReplyTo() (string, error) {
	return a.get(func(vt *IEmailActionVtbl) uintptr { return vt.GetReplyTo })
}

func (a *IEmailAction) SetReplyTo(replyTo string) error {
	return a.put(func(vt *IEmailActionVtbl) uintptr { return vt.PutReplyTo }, replyTo)
}

func (a *IEmailAction) From() (string, error) {
	return a.get(func(vt *IEmailActionVtbl) uintptr { return vt.GetFrom })
}

func (a *IEmailAction) SetFrom(from string) error {
	return a.put(func(vt *IEmailActionVtbl) uintptr { return vt.PutFrom }, from)
}

func (a *IEmailAction) Body() (string, error) {
	return a.get(func(vt *IEmailActionVtbl) uintptr { return vt.GetBody })
}

func (a *IEmailAction) SetBody(body string) error {
	return a.put(func(vt *IEmailActionVtbl) uintptr { return vt.PutBody }, body)
}

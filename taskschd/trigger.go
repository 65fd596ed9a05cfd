// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package taskschd

import (
	"github.com/itsManjeet/comsafe/com"
	"github.com/itsManjeet/comsafe/oleaut"
)

type ITriggerVtbl struct {
	oleaut.IDispatchVtbl
	GetType               uintptr
	GetID                 uintptr
	PutID                 uintptr
	GetRepetition         uintptr
	PutRepetition         uintptr
	GetExecutionTimeLimit uintptr
	PutExecutionTimeLimit uintptr
	GetStartBoundary      uintptr
	PutStartBoundary      uintptr
	GetEndBoundary        uintptr
	PutEndBoundary        uintptr
	GetEnabled            uintptr
	PutEnabled            uintptr
}

var ITriggerInfo = com.Declare[ITriggerVtbl]("ITrigger", "09941815-EA89-4B5B-89E0-2A773801FAC3", oleaut.IDispatchInfo)

// Trigger is the capability shared by every kind of trigger.
type Trigger interface {
	oleaut.Dispatch
	Type() (TASK_TRIGGER_TYPE2, error)
	ID() (string, error)
	SetID(id string) error
	ExecutionTimeLimit() (string, error)
	SetExecutionTimeLimit(limit string) error
	StartBoundary() (string, error)
	SetStartBoundary(start string) error
	EndBoundary() (string, error)
	SetEndBoundary(end string) error
	Enabled() (bool, error)
	SetEnabled(enabled bool) error
}

var _ Trigger = (*ITrigger)(nil)

// ITrigger wraps a task trigger.
//
// Boundaries are ISO 8601 date-times (2006-01-02T15:04:05) and the execution
// time limit is an ISO 8601 duration (PT1H30M).
type ITrigger struct{ oleaut.IDispatch }

func (*ITrigger) Info() *com.InterfaceInfo { return ITriggerInfo }

func (t *ITrigger) Type() (TASK_TRIGGER_TYPE2, error) {
	n, err := getInt32(t, func(vt *ITriggerVtbl) uintptr { return vt.GetType })
	return TASK_TRIGGER_TYPE2(n), err
}

func (t *ITrigger) ID() (string, error) {
	return getString(t, func(vt *ITriggerVtbl) uintptr { return vt.GetID })
}

func (t *ITrigger) SetID(id string) error {
	return putString(t, func(vt *ITriggerVtbl) uintptr { return vt.PutID }, id)
}

func (t *ITrigger) ExecutionTimeLimit() (string, error) {
	return getString(t, func(vt *ITriggerVtbl) uintptr { return vt.GetExecutionTimeLimit })
}

func (t *ITrigger) SetExecutionTimeLimit(limit string) error {
	return putString(t, func(vt *ITriggerVtbl) uintptr { return vt.PutExecutionTimeLimit }, limit)
}

func (t *ITrigger) StartBoundary() (string, error) {
	return getString(t, func(vt *ITriggerVtbl) uintptr { return vt.GetStartBoundary })
}

func (t *ITrigger) SetStartBoundary(start string) error {
	return putString(t, func(vt *ITriggerVtbl) uintptr { return vt.PutStartBoundary }, start)
}

func (t *ITrigger) EndBoundary() (string, error) {
	return getString(t, func(vt *ITriggerVtbl) uintptr { return vt.GetEndBoundary })
}

func (t *ITrigger) SetEndBoundary(end string) error {
	return putString(t, func(vt *ITriggerVtbl) uintptr { return vt.PutEndBoundary }, end)
}

func (t *ITrigger) Enabled() (bool, error) {
	vt, err := com.VTable[ITriggerVtbl](t)
	if err != nil {
		return false, err
	}
	return oleaut.GetBool(t, vt.GetEnabled)
}

func (t *ITrigger) SetEnabled(enabled bool) error {
	vt, err := com.VTable[ITriggerVtbl](t)
	if err != nil {
		return err
	}
	return oleaut.PutBool(t, vt.PutEnabled, enabled)
}

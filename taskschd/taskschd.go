// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package taskschd wraps the trigger and action interfaces of the Task
// Scheduler.
//
// Properties follow the automation conventions: strings travel as BSTRs
// and booleans as VARIANT_BOOLs. Getters return the value; setters are
// named Set followed by the property.
package taskschd

import (
	"strconv"
	"unsafe"

	"github.com/itsManjeet/comsafe/com"
	"github.com/itsManjeet/comsafe/oleaut"
)

// TASK_TRIGGER_TYPE2 identifies the kind of a trigger.
type TASK_TRIGGER_TYPE2 int32

const (
	TASK_TRIGGER_EVENT                TASK_TRIGGER_TYPE2 = 0
	TASK_TRIGGER_TIME                 TASK_TRIGGER_TYPE2 = 1
	TASK_TRIGGER_DAILY                TASK_TRIGGER_TYPE2 = 2
	TASK_TRIGGER_WEEKLY               TASK_TRIGGER_TYPE2 = 3
	TASK_TRIGGER_MONTHLY              TASK_TRIGGER_TYPE2 = 4
	TASK_TRIGGER_MONTHLYDOW           TASK_TRIGGER_TYPE2 = 5
	TASK_TRIGGER_IDLE                 TASK_TRIGGER_TYPE2 = 6
	TASK_TRIGGER_REGISTRATION         TASK_TRIGGER_TYPE2 = 7
	TASK_TRIGGER_BOOT                 TASK_TRIGGER_TYPE2 = 8
	TASK_TRIGGER_LOGON                TASK_TRIGGER_TYPE2 = 9
	TASK_TRIGGER_SESSION_STATE_CHANGE TASK_TRIGGER_TYPE2 = 11
	TASK_TRIGGER_CUSTOM_TRIGGER_01    TASK_TRIGGER_TYPE2 = 12
)

var triggerTypeNames = map[TASK_TRIGGER_TYPE2]string{
	TASK_TRIGGER_EVENT:                "event",
	TASK_TRIGGER_TIME:                 "time",
	TASK_TRIGGER_DAILY:                "daily",
	TASK_TRIGGER_WEEKLY:               "weekly",
	TASK_TRIGGER_MONTHLY:              "monthly",
	TASK_TRIGGER_MONTHLYDOW:           "monthly-dow",
	TASK_TRIGGER_IDLE:                 "idle",
	TASK_TRIGGER_REGISTRATION:         "registration",
	TASK_TRIGGER_BOOT:                 "boot",
	TASK_TRIGGER_LOGON:                "logon",
	TASK_TRIGGER_SESSION_STATE_CHANGE: "session-state-change",
	TASK_TRIGGER_CUSTOM_TRIGGER_01:    "custom",
}

func (t TASK_TRIGGER_TYPE2) String() string {
	if s, ok := triggerTypeNames[t]; ok {
		return s
	}
	return "trigger(" + strconv.Itoa(int(t)) + ")"
}

// TASK_ACTION_TYPE identifies the kind of an action.
type TASK_ACTION_TYPE int32

const (
	TASK_ACTION_EXEC         TASK_ACTION_TYPE = 0
	TASK_ACTION_COM_HANDLER  TASK_ACTION_TYPE = 5
	TASK_ACTION_SEND_EMAIL   TASK_ACTION_TYPE = 6
	TASK_ACTION_SHOW_MESSAGE TASK_ACTION_TYPE = 7
)

func (t TASK_ACTION_TYPE) String() string {
	switch t {
	case TASK_ACTION_EXEC:
		return "exec"
	case TASK_ACTION_COM_HANDLER:
		return "com-handler"
	case TASK_ACTION_SEND_EMAIL:
		return "send-email"
	case TASK_ACTION_SHOW_MESSAGE:
		return "show-message"
	}
	return "action(" + strconv.Itoa(int(t)) + ")"
}

// getString reads the string property behind the slot that slot selects
// from obj's dispatch table V.
func getString[V any](obj com.Object, slot func(*V) uintptr) (string, error) {
	vt, err := com.VTable[V](obj)
	if err != nil {
		return "", err
	}
	return oleaut.GetString(obj, slot(vt))
}

func putString[V any](obj com.Object, slot func(*V) uintptr, s string) error {
	vt, err := com.VTable[V](obj)
	if err != nil {
		return err
	}
	return oleaut.PutString(obj, slot(vt), s)
}

func getInt32[V any](obj com.Object, slot func(*V) uintptr) (int32, error) {
	vt, err := com.VTable[V](obj)
	if err != nil {
		return 0, err
	}
	var n int32
	if err := com.Check(com.Call(obj, slot(vt), uintptr(unsafe.Pointer(&n)))); err != nil {
		return 0, err
	}
	return n, nil
}

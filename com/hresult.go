// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package com

import "fmt"

// An HRESULT is the status returned by foreign calls. The high bit is the
// severity: clear means success, set means failure. Bits 16-28 hold the
// facility and the low 16 bits the code.
//
// A failed HRESULT is an error; errors.Is matches it by value. Success
// codes satisfy error too, so a success code stored in an error variable is
// non-nil. Pass raw results through Check or CheckBool before treating them
// as errors.
type HRESULT uint32

const (
	S_OK    HRESULT = 0x00000000
	S_FALSE HRESULT = 0x00000001

	E_NOTIMPL      HRESULT = 0x80004001
	E_NOINTERFACE  HRESULT = 0x80004002
	E_POINTER      HRESULT = 0x80004003
	E_ABORT        HRESULT = 0x80004004
	E_FAIL         HRESULT = 0x80004005
	E_UNEXPECTED   HRESULT = 0x8000FFFF
	E_ACCESSDENIED HRESULT = 0x80070005
	E_HANDLE       HRESULT = 0x80070006
	E_OUTOFMEMORY  HRESULT = 0x8007000E
	E_INVALIDARG   HRESULT = 0x80070057

	CLASS_E_NOAGGREGATION HRESULT = 0x80040110
	REGDB_E_CLASSNOTREG   HRESULT = 0x80040154
	CO_E_NOTINITIALIZED   HRESULT = 0x800401F0
	RPC_E_CHANGED_MODE    HRESULT = 0x80010106
)

// Facilities.
const (
	FACILITY_NULL     = 0
	FACILITY_RPC      = 1
	FACILITY_DISPATCH = 2
	FACILITY_STORAGE  = 3
	FACILITY_ITF      = 4
	FACILITY_WIN32    = 7
	FACILITY_WINDOWS  = 8
)

const severityBit = 0x80000000

var hresultText = map[HRESULT]struct{ name, text string }{
	S_OK:                  {"S_OK", "success"},
	S_FALSE:               {"S_FALSE", "success, false"},
	E_NOTIMPL:             {"E_NOTIMPL", "not implemented"},
	E_NOINTERFACE:         {"E_NOINTERFACE", "no such interface supported"},
	E_POINTER:             {"E_POINTER", "invalid pointer"},
	E_ABORT:               {"E_ABORT", "operation aborted"},
	E_FAIL:                {"E_FAIL", "unspecified error"},
	E_UNEXPECTED:          {"E_UNEXPECTED", "catastrophic failure"},
	E_ACCESSDENIED:        {"E_ACCESSDENIED", "access denied"},
	E_HANDLE:              {"E_HANDLE", "invalid handle"},
	E_OUTOFMEMORY:         {"E_OUTOFMEMORY", "out of memory"},
	E_INVALIDARG:          {"E_INVALIDARG", "invalid argument"},
	CLASS_E_NOAGGREGATION: {"CLASS_E_NOAGGREGATION", "class does not support aggregation"},
	REGDB_E_CLASSNOTREG:   {"REGDB_E_CLASSNOTREG", "class not registered"},
	CO_E_NOTINITIALIZED:   {"CO_E_NOTINITIALIZED", "CoInitialize has not been called"},
	RPC_E_CHANGED_MODE:    {"RPC_E_CHANGED_MODE", "cannot change thread mode after it is set"},
}

// Succeeded reports whether hr signals success.
func (hr HRESULT) Succeeded() bool { return hr&severityBit == 0 }

// Failed reports whether hr signals failure.
func (hr HRESULT) Failed() bool { return hr&severityBit != 0 }

// Facility returns the facility bits of hr.
func (hr HRESULT) Facility() uint16 { return uint16(hr>>16) & 0x1FFF }

// Code returns the low 16 bits of hr.
func (hr HRESULT) Code() uint16 { return uint16(hr) }

// HRESULTFromWin32 maps a Win32 error code into FACILITY_WIN32.
func HRESULTFromWin32(code uint32) HRESULT {
	if int32(code) <= 0 {
		return HRESULT(code)
	}
	return HRESULT(code&0xFFFF | FACILITY_WIN32<<16 | severityBit)
}

// Win32 returns the Win32 error code carried by hr, if hr is a failure in
// FACILITY_WIN32.
func (hr HRESULT) Win32() (uint32, bool) {
	if hr.Failed() && hr.Facility() == FACILITY_WIN32 {
		return uint32(hr.Code()), true
	}
	return 0, false
}

// String returns the symbolic name of hr, or its hexadecimal value.
func (hr HRESULT) String() string {
	if t, ok := hresultText[hr]; ok {
		return t.name
	}
	return fmt.Sprintf("HRESULT(0x%08X)", uint32(hr))
}

// Text returns a short description of hr.
func (hr HRESULT) Text() string {
	if t, ok := hresultText[hr]; ok {
		return t.text
	}
	if code, ok := hr.Win32(); ok {
		return fmt.Sprintf("win32 error %d", code)
	}
	if hr.Succeeded() {
		return "success"
	}
	return fmt.Sprintf("facility %d code %d", hr.Facility(), hr.Code())
}

func (hr HRESULT) Error() string {
	return fmt.Sprintf("com: %s (0x%08X)", hr.Text(), uint32(hr))
}

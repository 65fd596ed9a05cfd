// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oleaut wraps the automation layer: system strings and IDispatch.
package oleaut

import (
	"unicode/utf16"
	"unsafe"

	"github.com/itsManjeet/comsafe/com"
	"github.com/itsManjeet/comsafe/internal/abi"
)

// A BSTR is a length-prefixed system string owned by whoever allocated it.
// The zero BSTR is a valid empty string.
type BSTR uintptr

// NewBSTR allocates a system string holding s. The caller owns it and must
// Free it.
func NewBSTR(s string) (BSTR, error) {
	u, err := com.UTF16FromString(s)
	if err != nil {
		return 0, err
	}
	b := BSTR(abi.SysAllocString(u[:len(u)-1]))
	if b == 0 {
		return 0, com.E_OUTOFMEMORY
	}
	return b, nil
}

// Len returns the length of b in UTF-16 units.
func (b BSTR) Len() int { return abi.SysStringLen(uintptr(b)) }

// String decodes b. It does not free it.
func (b BSTR) String() string {
	n := b.Len()
	if n == 0 {
		return ""
	}
	return string(utf16.Decode(unsafe.Slice((*uint16)(unsafe.Pointer(b)), n)))
}

// Free frees *b and clears it. Freeing the zero BSTR does nothing.
func (b *BSTR) Free() {
	abi.SysFreeString(uintptr(*b))
	*b = 0
}

// Take decodes *b and frees it.
func (b *BSTR) Take() string {
	defer b.Free()
	return b.String()
}

// GetString calls fn on obj, a property getter of signature
// (this, *BSTR) HRESULT, and returns the text it produced. The returned
// string is freed whether or not decoding is needed.
func GetString(obj com.Object, fn uintptr) (string, error) {
	var b BSTR
	if err := com.Check(com.Call(obj, fn, uintptr(unsafe.Pointer(&b)))); err != nil {
		b.Free()
		return "", err
	}
	return b.Take(), nil
}

// PutString calls fn on obj, a property setter of signature
// (this, BSTR) HRESULT, with s. The string passed is freed after the call.
func PutString(obj com.Object, fn uintptr, s string) error {
	b, err := NewBSTR(s)
	if err != nil {
		return err
	}
	defer b.Free()
	return com.Check(com.Call(obj, fn, uintptr(b)))
}

// VARIANT_BOOL is the automation boolean: -1 is true, 0 is false.
type VARIANT_BOOL int16

const (
	VARIANT_TRUE  VARIANT_BOOL = -1
	VARIANT_FALSE VARIANT_BOOL = 0
)

// VariantBool converts v to a VARIANT_BOOL.
func VariantBool(v bool) VARIANT_BOOL {
	if v {
		return VARIANT_TRUE
	}
	return VARIANT_FALSE
}

// Bool reports whether b is true. Any non-zero value counts.
func (b VARIANT_BOOL) Bool() bool { return b != VARIANT_FALSE }

// Arg returns b as a call argument.
func (b VARIANT_BOOL) Arg() uintptr { return uintptr(uint16(b)) }

// GetBool calls fn on obj, a getter of signature (this, *VARIANT_BOOL) HRESULT.
func GetBool(obj com.Object, fn uintptr) (bool, error) {
	var v VARIANT_BOOL
	if err := com.Check(com.Call(obj, fn, uintptr(unsafe.Pointer(&v)))); err != nil {
		return false, err
	}
	return v.Bool(), nil
}

// PutBool calls fn on obj, a setter of signature (this, VARIANT_BOOL) HRESULT.
func PutBool(obj com.Object, fn uintptr, v bool) error {
	return com.Check(com.Call(obj, fn, VariantBool(v).Arg()))
}

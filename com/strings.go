// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package com

import (
	"errors"
	"strings"
	"unicode/utf16"
	"unsafe"
)

// ErrNulInString is returned when text bound for foreign code contains a
// NUL, which would silently truncate it.
var ErrNulInString = errors.New("com: string contains NUL")

// UTF16FromString returns s encoded as NUL-terminated UTF-16.
func UTF16FromString(s string) ([]uint16, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, ErrNulInString
	}
	return append(utf16.Encode([]rune(s)), 0), nil
}

// UTF16PtrFromString returns a pointer to s encoded as NUL-terminated UTF-16.
func UTF16PtrFromString(s string) (*uint16, error) {
	u, err := UTF16FromString(s)
	if err != nil {
		return nil, err
	}
	return &u[0], nil
}

// UTF16ToString decodes s up to its first NUL.
func UTF16ToString(s []uint16) string {
	for i, c := range s {
		if c == 0 {
			s = s[:i]
			break
		}
	}
	return string(utf16.Decode(s))
}

// UTF16PtrToString decodes the NUL-terminated UTF-16 text at p. A nil p
// yields "".
func UTF16PtrToString(p *uint16) string {
	if p == nil {
		return ""
	}
	n := 0
	for ptr := unsafe.Pointer(p); *(*uint16)(ptr) != 0; n++ {
		ptr = unsafe.Add(ptr, 2)
	}
	return string(utf16.Decode(unsafe.Slice(p, n)))
}

// maxFetchAttempts bounds FetchString when the text keeps growing between
// the size query and the copy.
const maxFetchAttempts = 4

var errNegativeLength = errors.New("com: foreign code reported a negative string length")

// FetchString reads variable-length text from foreign code with the two-call
// protocol. fetch is first called with a nil buffer and must return the
// buffer length the text needs, in UTF-16 units, counting any terminator.
// FetchString then allocates exactly that and calls fetch again; fetch
// fills the buffer and returns the length it needed. If that exceeds the
// buffer, the text grew in between and the exchange is repeated. A negative
// length from either call is an error.
func FetchString(fetch func(buf []uint16) (int, error)) (string, error) {
	n, err := fetch(nil)
	if err != nil {
		return "", err
	}
	for attempt := 0; attempt < maxFetchAttempts; attempt++ {
		if n < 0 {
			return "", errNegativeLength
		}
		if n == 0 {
			return "", nil
		}
		buf := make([]uint16, n)
		need, err := fetch(buf)
		if err != nil {
			return "", err
		}
		if need < 0 {
			return "", errNegativeLength
		}
		if need <= n {
			return UTF16ToString(buf[:need]), nil
		}
		n = need
	}
	return "", errors.New("com: string length kept changing")
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package com

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// A GUID identifies an interface or a class. Its layout matches the foreign
// definition; GUIDs compare by value.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

type (
	// IID identifies an interface.
	IID = GUID
	// CLSID identifies a class.
	CLSID = GUID
)

// ParseGUID parses the textual form of a GUID, with or without braces.
func ParseGUID(s string) (GUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return GUID{}, fmt.Errorf("com: invalid GUID %q: %w", s, err)
	}
	return FromUUID(u), nil
}

// MustParseGUID is like ParseGUID but panics if s cannot be parsed.
func MustParseGUID(s string) GUID {
	g, err := ParseGUID(s)
	if err != nil {
		panic(err)
	}
	return g
}

// FromUUID converts the big-endian byte order of u into a GUID.
func FromUUID(u uuid.UUID) GUID {
	g := GUID{
		Data1: binary.BigEndian.Uint32(u[0:4]),
		Data2: binary.BigEndian.Uint16(u[4:6]),
		Data3: binary.BigEndian.Uint16(u[6:8]),
	}
	copy(g.Data4[:], u[8:])
	return g
}

// UUID returns g in big-endian byte order.
func (g GUID) UUID() uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], g.Data1)
	binary.BigEndian.PutUint16(u[4:6], g.Data2)
	binary.BigEndian.PutUint16(u[6:8], g.Data3)
	copy(u[8:], g.Data4[:])
	return u
}

// IsZero reports whether g is the null GUID.
func (g GUID) IsZero() bool { return g == GUID{} }

// String returns g in registry format, {XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX}.
func (g GUID) String() string {
	return fmt.Sprintf("{%08X-%04X-%04X-%02X%02X-%02X%02X%02X%02X%02X%02X}",
		g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1], g.Data4[2], g.Data4[3],
		g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package com calls methods on reference-counted foreign objects that follow
// the Component Object Model binary contract.
//
// A foreign object is a pointer to a pointer to a dispatch table: an ordered
// array of function pointers whose first slots are those of the object's
// base interface. Each interface is described once, by a Go struct of
// uintptr slots whose first field embeds the base interface's struct, and
// declared with Declare:
//
//	type IPersistVtbl struct {
//		com.IUnknownVtbl
//		GetClassID uintptr
//	}
//
//	var IPersistInfo = com.Declare[IPersistVtbl]("IPersist",
//		"0000010C-0000-0000-C000-000000000046", com.IUnknownInfo)
//
// Wrapper types embed the wrapper of their base interface, ending in
// IUnknown, so a wrapper offers the methods of every ancestor:
//
//	type IPersist struct{ com.IUnknown }
//
//	func (*IPersist) Info() *com.InterfaceInfo { return IPersistInfo }
//
// A wrapper owns exactly one reference. Adopt takes over a reference handed
// back by foreign code, Query asks an object for another interface and
// Clone adds a reference; each result must be released once with Release,
// typically with defer. A finalizer releases wrappers that become
// unreachable while still owning their reference, but code should not rely
// on it: objects that live in a single-threaded apartment must be released
// on the thread that owns them.
//
// The correctness of a vtable struct, meaning its slot order and the
// signature each slot is called with, is the declarer's responsibility and
// cannot be checked at run time.
package com

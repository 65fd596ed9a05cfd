// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ole

import "strings"

// STGM flags select the access and sharing mode of a file or storage.
type STGM uint32

const (
	STGM_READ      STGM = 0x00000000
	STGM_WRITE     STGM = 0x00000001
	STGM_READWRITE STGM = 0x00000002

	STGM_SHARE_DENY_NONE  STGM = 0x00000040
	STGM_SHARE_DENY_READ  STGM = 0x00000030
	STGM_SHARE_DENY_WRITE STGM = 0x00000020
	STGM_SHARE_EXCLUSIVE  STGM = 0x00000010

	STGM_CREATE     STGM = 0x00001000
	STGM_TRANSACTED STGM = 0x00010000
	STGM_DIRECT     STGM = 0x00000000
)

const (
	stgmAccessMask = 0x3
	stgmShareMask  = 0x70
)

// String lists the flags set in m, for logs.
func (m STGM) String() string {
	var parts []string
	switch m & stgmAccessMask {
	case STGM_READ:
		parts = append(parts, "read")
	case STGM_WRITE:
		parts = append(parts, "write")
	case STGM_READWRITE:
		parts = append(parts, "readwrite")
	default:
		parts = append(parts, "access?")
	}
	switch m & stgmShareMask {
	case STGM_SHARE_DENY_NONE:
		parts = append(parts, "share-deny-none")
	case STGM_SHARE_DENY_READ:
		parts = append(parts, "share-deny-read")
	case STGM_SHARE_DENY_WRITE:
		parts = append(parts, "share-deny-write")
	case STGM_SHARE_EXCLUSIVE:
		parts = append(parts, "share-exclusive")
	}
	if m&STGM_CREATE != 0 {
		parts = append(parts, "create")
	}
	if m&STGM_TRANSACTED != 0 {
		parts = append(parts, "transacted")
	}
	return strings.Join(parts, "|")
}

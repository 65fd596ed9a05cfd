// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ole wraps the persistence interfaces of OLE.
package ole

import (
	"unsafe"

	"github.com/itsManjeet/comsafe/com"
)

type IPersistVtbl struct {
	com.IUnknownVtbl
	GetClassID uintptr
}

type IPersistFileVtbl struct {
	IPersistVtbl
	IsDirty       uintptr
	Load          uintptr
	Save          uintptr
	SaveCompleted uintptr
	GetCurFile    uintptr
}

var (
	IPersistInfo     = com.Declare[IPersistVtbl]("IPersist", "0000010C-0000-0000-C000-000000000046", com.IUnknownInfo)
	IPersistFileInfo = com.Declare[IPersistFileVtbl]("IPersistFile", "0000010B-0000-0000-C000-000000000046", IPersistInfo)
)

// Persist is the capability of objects that can name their class.
type Persist interface {
	com.Unknown
	GetClassID() (com.CLSID, error)
}

// PersistFile is the capability of objects that load and save files.
type PersistFile interface {
	Persist
	IsDirty() (bool, error)
	Load(name string, mode STGM) error
	Save(name string, remember bool) error
	SaveCompleted(name string) error
}

var (
	_ Persist     = (*IPersist)(nil)
	_ PersistFile = (*IPersistFile)(nil)
)

// IPersist wraps an object that can report its class.
type IPersist struct{ com.IUnknown }

func (*IPersist) Info() *com.InterfaceInfo { return IPersistInfo }

// GetClassID returns the class of the object.
func (p *IPersist) GetClassID() (com.CLSID, error) {
	vt, err := com.VTable[IPersistVtbl](p)
	if err != nil {
		return com.CLSID{}, err
	}
	var clsid com.CLSID
	if err := com.Check(com.Call(p, vt.GetClassID, uintptr(unsafe.Pointer(&clsid)))); err != nil {
		return com.CLSID{}, err
	}
	return clsid, nil
}

// IPersistFile wraps an object stored in a file.
type IPersistFile struct{ IPersist }

func (*IPersistFile) Info() *com.InterfaceInfo { return IPersistFileInfo }

// IsDirty reports whether the object changed since it was last saved.
func (p *IPersistFile) IsDirty() (bool, error) {
	vt, err := com.VTable[IPersistFileVtbl](p)
	if err != nil {
		return false, err
	}
	return com.CheckBool(com.Call(p, vt.IsDirty))
}

// Load opens the named file and initializes the object from it.
func (p *IPersistFile) Load(name string, mode STGM) error {
	vt, err := com.VTable[IPersistFileVtbl](p)
	if err != nil {
		return err
	}
	s, err := com.UTF16PtrFromString(name)
	if err != nil {
		return err
	}
	return com.Check(com.Call(p, vt.Load, uintptr(unsafe.Pointer(s)), uintptr(mode)))
}

// Save writes the object to the named file. An empty name saves to the
// current file. remember makes the named file current.
func (p *IPersistFile) Save(name string, remember bool) error {
	vt, err := com.VTable[IPersistFileVtbl](p)
	if err != nil {
		return err
	}
	s, err := optionalString(name)
	if err != nil {
		return err
	}
	return com.Check(com.Call(p, vt.Save, uintptr(unsafe.Pointer(s)), boolArg(remember)))
}

// SaveCompleted tells the object that the save to name has finished and it
// may write to its file again.
func (p *IPersistFile) SaveCompleted(name string) error {
	vt, err := com.VTable[IPersistFileVtbl](p)
	if err != nil {
		return err
	}
	s, err := optionalString(name)
	if err != nil {
		return err
	}
	return com.Check(com.Call(p, vt.SaveCompleted, uintptr(unsafe.Pointer(s))))
}

// optionalString converts s, mapping "" to a null pointer.
func optionalString(s string) (*uint16, error) {
	if s == "" {
		return nil, nil
	}
	return com.UTF16PtrFromString(s)
}

func boolArg(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iidset holds sets of interface identities.
package iidset

import (
	"sort"

	"github.com/itsManjeet/comsafe/com"
)

// Set is a set of IIDs. The zero value is not usable; call New.
type Set struct {
	inner map[com.IID]struct{}
}

// New returns a set holding iids.
func New(iids ...com.IID) Set {
	s := Set{inner: make(map[com.IID]struct{}, len(iids))}
	for _, iid := range iids {
		s.inner[iid] = struct{}{}
	}
	return s
}

// Add adds iid to s.
func (s Set) Add(iid com.IID) { s.inner[iid] = struct{}{} }

// AddInterface adds info and all its ancestors to s.
func (s Set) AddInterface(info *com.InterfaceInfo) {
	for i := info; i != nil; i = i.Base {
		s.Add(i.IID)
	}
}

// Delete removes iid from s.
func (s Set) Delete(iid com.IID) { delete(s.inner, iid) }

// Contains reports whether iid is in s.
func (s Set) Contains(iid com.IID) bool {
	_, ok := s.inner[iid]
	return ok
}

// ToSlice returns the IIDs in s in string order.
func (s Set) ToSlice() []com.IID {
	out := make([]com.IID, 0, len(s.inner))
	for iid := range s.inner {
		out = append(out, iid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

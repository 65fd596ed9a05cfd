// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package com

import (
	"errors"
	"fmt"

	"golang.org/x/xerrors"
)

// A QueryError reports that an object could not provide an interface.
type QueryError struct {
	IID IID
	Err error
}

func queryError(iid IID, err error) error {
	if err == ErrNullPointer {
		return err
	}
	return &QueryError{IID: iid, Err: err}
}

func (e *QueryError) Error() string {
	return fmt.Sprint(e)
}

// FormatError prints the requested interface and returns the cause.
func (e *QueryError) FormatError(p xerrors.Printer) error {
	p.Printf("com: query for %s", describe(e.IID))
	return e.Err
}

func (e *QueryError) Format(s fmt.State, v rune) { xerrors.FormatError(e, s, v) }

func (e *QueryError) Unwrap() error { return e.Err }

// NotSupported reports whether the object answered that it does not
// implement the interface, as opposed to failing.
func (e *QueryError) NotSupported() bool {
	return errors.Is(e.Err, E_NOINTERFACE)
}

// IsNotSupported reports whether err is a query refused with E_NOINTERFACE.
func IsNotSupported(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe) && qe.NotSupported()
}

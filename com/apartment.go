// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package com

import (
	"runtime"
	"sync"

	"github.com/go-logr/logr"

	"github.com/itsManjeet/comsafe/internal/abi"
)

// Concurrency selects the threading model of an apartment.
type Concurrency uint32

const (
	// Multithreaded joins the process-wide multithreaded apartment.
	Multithreaded Concurrency = 0x0
	// ApartmentThreaded makes the calling thread a single-threaded
	// apartment. Objects created in it must be used from that thread.
	ApartmentThreaded Concurrency = 0x2
)

const coinitDisableOLE1DDE = 0x4

func (c Concurrency) String() string {
	switch c {
	case Multithreaded:
		return "multithreaded"
	case ApartmentThreaded:
		return "apartment-threaded"
	}
	return "Concurrency(?)"
}

type apartmentConfig struct {
	log         logr.Logger
	concurrency Concurrency
}

// An Option configures Initialize.
type Option func(*apartmentConfig)

// WithLogger logs apartment setup and teardown to l.
func WithLogger(l logr.Logger) Option {
	return func(c *apartmentConfig) { c.log = l }
}

// WithConcurrency selects the threading model. The default is Multithreaded.
func WithConcurrency(m Concurrency) Option {
	return func(c *apartmentConfig) { c.concurrency = m }
}

// Seams for tests.
var (
	coInitializeEx = abi.CoInitializeEx
	coUninitialize = abi.CoUninitialize
	lockOSThread   = runtime.LockOSThread
	unlockOSThread = runtime.UnlockOSThread
)

// An Apartment is the scope in which the calling program uses foreign
// objects. Acquire it once, before creating any object, and end it once with
// Uninitialize after every wrapper has been released.
type Apartment struct {
	log         logr.Logger
	concurrency Concurrency
	once        sync.Once
}

// Initialize enters an apartment on the calling goroutine's thread. The
// goroutine stays locked to that thread until Uninitialize, which must be
// called from the same goroutine.
func Initialize(opts ...Option) (*Apartment, error) {
	cfg := apartmentConfig{log: logr.Discard(), concurrency: Multithreaded}
	for _, o := range opts {
		o(&cfg)
	}
	lockOSThread()
	hr := HRESULT(coInitializeEx(uint32(cfg.concurrency) | coinitDisableOLE1DDE))
	if hr.Failed() {
		unlockOSThread()
		return nil, hr
	}
	// S_FALSE means the thread was already initialized; the call still
	// has to be balanced.
	cfg.log.V(1).Info("apartment initialized", "concurrency", cfg.concurrency, "status", hr)
	return &Apartment{log: cfg.log, concurrency: cfg.concurrency}, nil
}

// Uninitialize leaves the apartment and unlocks the thread. Only the first
// call has an effect.
func (a *Apartment) Uninitialize() {
	a.once.Do(func() {
		coUninitialize()
		unlockOSThread()
		a.log.V(1).Info("apartment uninitialized", "concurrency", a.concurrency)
	})
}

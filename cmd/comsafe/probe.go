// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/itsManjeet/comsafe/com"
)

func newProbeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe --clsid GUID [--iface name]...",
		Short: "Create an object and report the interfaces it supports",
		Long: `Probe initializes an apartment, creates an instance of the class, asks it
for each named interface (every declared interface by default) and reports
the answer. Every reference obtained is released before probe returns.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, sync, err := newLogger(v.GetBool("verbose"))
			if err != nil {
				return err
			}
			defer sync()
			clsid, err := com.ParseGUID(v.GetString("clsid"))
			if err != nil {
				return fmt.Errorf("--clsid: %w", err)
			}
			infos, err := selectInterfaces(v.GetStringSlice("iface"))
			if err != nil {
				return err
			}
			conc := com.Multithreaded
			if v.GetBool("sta") {
				conc = com.ApartmentThreaded
			}
			return probe(cmd.OutOrStdout(), log, clsid, conc, infos)
		},
	}
	cmd.Flags().String("clsid", "", "class to create, as a GUID")
	cmd.Flags().StringSlice("iface", nil, "interface to ask for (repeatable)")
	cmd.Flags().Bool("sta", false, "use a single-threaded apartment")
	return cmd
}

// probe creates an instance of clsid and reports, for each of infos,
// whether the object supports it.
func probe(w io.Writer, log logr.Logger, clsid com.CLSID, conc com.Concurrency, infos []*com.InterfaceInfo) error {
	apt, err := com.Initialize(com.WithLogger(log), com.WithConcurrency(conc))
	if err != nil {
		return err
	}
	defer apt.Uninitialize()

	obj, err := com.CreateInstance[com.IUnknown](clsid, com.CLSCTX_ALL)
	if err != nil {
		return fmt.Errorf("creating %s: %w", clsid, err)
	}
	defer obj.Release()
	log.V(1).Info("object created", "clsid", clsid.String())

	for _, info := range infos {
		q, err := obj.QueryInterface(info.IID)
		switch {
		case err == nil:
			fmt.Fprintf(w, "%-20s %s supported\n", info.Name, info.IID)
			q.Release()
		case com.IsNotSupported(err):
			fmt.Fprintf(w, "%-20s %s not supported\n", info.Name, info.IID)
		default:
			var hr com.HRESULT
			if errors.As(err, &hr) {
				fmt.Fprintf(w, "%-20s %s failed: %s\n", info.Name, info.IID, hr)
				continue
			}
			return err
		}
	}
	return nil
}

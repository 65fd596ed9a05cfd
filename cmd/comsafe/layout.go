// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/itsManjeet/comsafe/com"

	// Imported for the interfaces they declare.
	_ "github.com/itsManjeet/comsafe/dshow"
	_ "github.com/itsManjeet/comsafe/ole"
	_ "github.com/itsManjeet/comsafe/oleaut"
	_ "github.com/itsManjeet/comsafe/taskschd"
)

// layout is the JSON form of an interface's dispatch table.
type layout struct {
	Name  string   `json:"name"`
	IID   string   `json:"iid"`
	Base  string   `json:"base,omitempty"`
	Slots []slot   `json:"slots"`
	Chain []string `json:"chain"`
}

type slot struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	From  string `json:"from"`
}

func newLayoutCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout [interface...]",
		Short: "Print the dispatch table of declared interfaces",
		Long: `Layout prints each named interface, or every declared interface if none is
named, with its identity and every slot of its dispatch table in call order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := selectInterfaces(args)
			if err != nil {
				return err
			}
			if v.GetBool("json") {
				return writeJSON(cmd.OutOrStdout(), infos)
			}
			return writeText(cmd.OutOrStdout(), infos)
		},
	}
	cmd.Flags().Bool("json", false, "print JSON instead of text")
	return cmd
}

func selectInterfaces(names []string) ([]*com.InterfaceInfo, error) {
	if len(names) == 0 {
		return com.Interfaces(), nil
	}
	var infos []*com.InterfaceInfo
	for _, name := range names {
		info, ok := com.LookupName(name)
		if !ok {
			return nil, fmt.Errorf("unknown interface %q", name)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func describeLayout(info *com.InterfaceInfo) layout {
	l := layout{Name: info.Name, IID: info.IID.String()}
	if info.Base != nil {
		l.Base = info.Base.Name
	}
	// Root first, so slots come out in table order.
	chain := info.Ancestors()
	slices.Reverse(chain)
	for _, a := range append(chain, info) {
		l.Chain = append(l.Chain, a.Name)
		for _, name := range a.OwnSlots() {
			l.Slots = append(l.Slots, slot{Index: len(l.Slots), Name: name, From: a.Name})
		}
	}
	return l
}

func writeJSON(w io.Writer, infos []*com.InterfaceInfo) error {
	out := make([]layout, 0, len(infos))
	for _, info := range infos {
		out = append(out, describeLayout(info))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeText(w io.Writer, infos []*com.InterfaceInfo) error {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	for i, info := range infos {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		l := describeLayout(info)
		fmt.Fprintf(tw, "%s %s\n", l.Name, l.IID)
		for _, s := range l.Slots {
			fmt.Fprintf(tw, "\t%d\t%s\t%s\n", s.Index, s.Name, s.From)
		}
	}
	return tw.Flush()
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Comsafe inspects foreign object interfaces.
//
// Usage:
//
//	comsafe layout [--json] [interface...]
//	comsafe probe --clsid GUID [--iface name]...
//
// The layout command prints the dispatch table of each declared interface,
// slot by slot, including inherited slots. The probe command creates an
// instance of a registered class and reports which interfaces it answers
// for. Probing needs Windows; elsewhere no class is ever registered.
//
// Flags may also be set through the environment, as COMSAFE_<FLAG>
// (for example COMSAFE_VERBOSE=1), or in a config file given by --config.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Flag values are read through v, so
// the environment and config file can supply them.
func newRootCmd(v *viper.Viper) *cobra.Command {
	var cfgFile string
	root := &cobra.Command{
		Use:          "comsafe",
		Short:        "Inspect foreign object interfaces",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cmd, cfgFile)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log apartment and object lifetime events")
	root.AddCommand(newLayoutCmd(v), newProbeCmd(v))
	return root
}

// initConfig binds the flags of cmd and its parents to v, then layers the
// environment and the optional config file underneath them.
func initConfig(v *viper.Viper, cmd *cobra.Command, cfgFile string) error {
	v.SetEnvPrefix("comsafe")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := v.BindPFlags(cmd.InheritedFlags()); err != nil {
		return err
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

// newLogger returns a logr.Logger backed by zap, writing to stderr. Verbose
// mode enables the V(1) lifetime events of package com.
func newLogger(verbose bool) (logr.Logger, func(), error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		// zapr maps logr's V(n) to zap level -n.
		cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-1))
	}
	z, err := cfg.Build()
	if err != nil {
		return logr.Discard(), func() {}, err
	}
	return zapr.NewLogger(z), func() { _ = z.Sync() }, nil
}

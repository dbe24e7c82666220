// SPDX-License-Identifier: MIT
// Package: lvloan/cmd/loanfinder

package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	def := defaultConfig()
	root := &cobra.Command{
		Use:   "loanfinder",
		Short: "Find the cheapest lenders for an actor in a lending graph",
		Long: `loanfinder builds a directed actor graph where every actor holds some
potential and every arc carries an interest rate, then collects a requested
amount for a sink actor from its cheapest ancestors under a rate ceiling.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML config file (defaults to $LOANFINDER_CONFIG)")
	pf.String("queue", def.Queue, "priority queue: binary or fibonacci")
	pf.String("log-level", def.Logging.Level, "trace, debug, info, warn, error or disabled")
	pf.Bool("log-pretty", def.Logging.Pretty, "human-friendly console logs")
	pf.Bool("metrics", def.Metrics, "print phase metrics in Prometheus text format")
	pf.Int("top", def.Top, "lenders to list per result (0 lists all)")

	root.AddCommand(newRunCmd(def), newDemoCmd())

	return root
}

// resolveConfig merges file, environment and flags for cmd and validates.
func resolveConfig(cmd *cobra.Command, getenv func(string) string) (Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return Config{}, err
	}
	cfg, err := loadConfig(path, getenv)
	if err != nil {
		return cfg, err
	}
	if err = applyFlags(&cfg, cmd.Flags()); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

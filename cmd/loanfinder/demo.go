// SPDX-License-Identifier: MIT
// Package: lvloan/cmd/loanfinder
//
// demo.go — the four-actor worked example.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvloan/actorgraph"
	"github.com/katalvlaran/lvloan/loan"
	"github.com/katalvlaran/lvloan/pq"
)

// demoQuery is one (requested, ceiling) pair asked of actor A.
type demoQuery struct {
	requested float64
	maxRate   float64
}

var demoQueries = []demoQuery{
	{requested: 35, maxRate: 0.6},
	{requested: 35, maxRate: 0.5},
	{requested: 50, maxRate: 0.7},
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the four-actor worked example with both finders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, os.Getenv)
			if err != nil {
				return err
			}
			return runDemo(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// demoGraph builds A(0) B(10) C(20) D(15) with B→D 0.05, D→C 0.2,
// C→B 0.15 and B→A 0.1, and returns the sink A.
func demoGraph() (*actorgraph.Graph[string], *actorgraph.Actor[string], error) {
	g := actorgraph.NewGraph[string]()
	byID := map[string]*actorgraph.Actor[string]{}
	for _, a := range []struct {
		id        string
		potential float64
	}{{"A", 0}, {"B", 10}, {"C", 20}, {"D", 15}} {
		actor := actorgraph.NewActor(a.id)
		if err := g.AddActor(actor, a.potential); err != nil {
			return nil, nil, err
		}
		byID[a.id] = actor
	}
	for _, arc := range []struct {
		from, to string
		rate     float64
	}{{"B", "D", 0.05}, {"D", "C", 0.2}, {"C", "B", 0.15}, {"B", "A", 0.1}} {
		if err := g.AddArc(byID[arc.from], byID[arc.to], arc.rate); err != nil {
			return nil, nil, err
		}
	}

	return g, byID["A"], nil
}

func runDemo(cfg Config, out, errOut io.Writer) error {
	kind, err := pq.ParseKind(cfg.Queue)
	if err != nil {
		return err
	}
	opts := []loan.Option{loan.WithQueue(kind), loan.WithLogger(newLogger(cfg.Logging, errOut))}

	g, sink, err := demoGraph()
	if err != nil {
		return err
	}
	cache, err := loan.NewCache(g, opts...)
	if err != nil {
		return err
	}
	finders := []struct {
		name   string
		finder loan.Finder[string]
	}{
		{"search", loan.NewSearch[string](opts...)},
		{"cache", cache},
	}

	for _, q := range demoQueries {
		for _, f := range finders {
			res, err := f.finder.FindLenders(sink, q.requested, q.maxRate)
			if err != nil {
				return err
			}
			if err = writeReport(out, f.name, res, cfg.Top); err != nil {
				return err
			}
		}
		fmt.Fprintln(out)
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package: lvloan/cmd/loanfinder
//
// run.go — random graph benchmark: preprocessing, cached query and
// on-demand query over the same graph.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvloan/actorgraph"
	"github.com/katalvlaran/lvloan/builder"
	"github.com/katalvlaran/lvloan/loan"
	"github.com/katalvlaran/lvloan/pq"
)

// uuidNamespace seeds UUID identities so that the same index maps to the
// same UUID in every run.
var uuidNamespace = uuid.MustParse("8f0c5e36-4a4e-4d5b-9c83-6f1f0a6c2d11")

func newRunCmd(def Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a random graph and compare cached and on-demand lender queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, os.Getenv)
			if err != nil {
				return err
			}
			return execute(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.Int("actors", def.Graph.Actors, "number of actors")
	f.Int("arcs", def.Graph.Arcs, "number of distinct arcs")
	f.Int64("seed", def.Graph.Seed, "random seed (0 uses the current time)")
	f.Float64("max-potential", def.Graph.MaxPotential, "potentials are drawn from [0, max)")
	f.Float64("max-arc-rate", def.Graph.MaxInterestRate, "arc rates are drawn from [0, max)")
	f.String("id-scheme", def.Graph.IDScheme, "actor identities: int or uuid")
	f.Int("sink", def.Query.Sink, "index of the borrowing actor")
	f.Float64("requested", def.Query.Requested, "amount to collect")
	f.Float64("max-rate", def.Query.MaxInterestRate, "effective rate ceiling")

	return cmd
}

// execute dispatches on the identity scheme.
func execute(cfg Config, out, errOut io.Writer) error {
	if cfg.Graph.Seed == 0 {
		cfg.Graph.Seed = time.Now().UnixNano()
	}
	r := runner{
		cfg:     cfg,
		out:     out,
		log:     newLogger(cfg.Logging, errOut),
		metrics: newMetrics(),
	}
	var err error
	switch cfg.Graph.IDScheme {
	case "uuid":
		err = runQueries(r, builder.UUIDScheme(uuidNamespace))
	default:
		err = runQueries(r, builder.IntID)
	}
	if err != nil {
		return err
	}
	if cfg.Metrics {
		return r.metrics.write(out)
	}

	return nil
}

type runner struct {
	cfg     Config
	out     io.Writer
	log     zerolog.Logger
	metrics *metrics
}

// runQueries builds the graph, preprocesses it, and answers the configured
// query with both finders.
func runQueries[I comparable](r runner, idFn builder.IDFn[I]) error {
	cfg := r.cfg
	kind, err := pq.ParseKind(cfg.Queue)
	if err != nil {
		return err
	}
	opts := []loan.Option{loan.WithQueue(kind), loan.WithLogger(r.log)}

	var (
		g      *actorgraph.Graph[I]
		actors []*actorgraph.Actor[I]
	)
	elapsed, err := r.metrics.time(phaseBuild, func() (err error) {
		g, actors, err = builder.RandomActorGraph(cfg.Graph.Actors, cfg.Graph.Arcs, idFn,
			builder.WithSeed(cfg.Graph.Seed),
			builder.WithMaxPotential(cfg.Graph.MaxPotential),
			builder.WithMaxInterestRate(cfg.Graph.MaxInterestRate),
		)
		return err
	})
	if err != nil {
		return err
	}
	r.metrics.observeGraph(g.ActorCount(), g.ArcCount())
	r.log.Info().
		Int("actors", g.ActorCount()).
		Int("arcs", g.ArcCount()).
		Int64("seed", cfg.Graph.Seed).
		Dur("elapsed", elapsed).
		Msg("graph built")
	fmt.Fprintf(r.out, "graph: %d actors, %d arcs, seed %d\n", g.ActorCount(), g.ArcCount(), cfg.Graph.Seed)

	var cache *loan.Cache[I]
	elapsed, err = r.metrics.time(phasePreprocess, func() (err error) {
		cache, err = loan.NewCache(g, opts...)
		return err
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "preprocessing (%s heap): %v\n", kind, elapsed)

	sink := actors[cfg.Query.Sink]
	cached, err := runQuery[I](r, phaseCached, cache, sink)
	if err != nil {
		return err
	}
	searched, err := runQuery[I](r, phaseSearch, loan.NewSearch[I](opts...), sink)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "results agree: %t\n", sameAllocation(cached, searched))

	return nil
}

// runQuery times one finder and prints its report.
func runQuery[I comparable](r runner, phase string, f loan.Finder[I], sink *actorgraph.Actor[I]) (*loan.Result[I], error) {
	var res *loan.Result[I]
	elapsed, err := r.metrics.time(phase, func() (err error) {
		res, err = f.FindLenders(sink, r.cfg.Query.Requested, r.cfg.Query.MaxInterestRate)
		return err
	})
	if err != nil {
		return nil, err
	}
	r.metrics.observeResult(phase, res.Achieved(), len(res.Lenders()))
	fmt.Fprintf(r.out, "%s: %v\n", phase, elapsed)

	return res, writeReport(r.out, phase, res, r.cfg.Top)
}

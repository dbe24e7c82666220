// SPDX-License-Identifier: MIT
// Package: lvloan/builder
//
// Package builder generates random actor graphs for drivers, benchmarks and
// property tests.
//
// The package offers:
//
//   - RandomActorGraph(n, arcs, idFn, opts...): n actors with random
//     potentials and exactly arcs distinct random arcs with random rates.
//   - Chain(n, idFn, opts...) and Star(n, idFn, opts...): deterministic
//     lender topologies draining into actor 0.
//   - Identity schemes (IDFn implementations):
//     – DecimalID:     decimal strings ("0","1",…).
//     – IntID:         the index itself.
//     – ExcelColumnID: spreadsheet-style columns ("A","Z","AA",…).
//     – UUIDScheme:    name-based UUIDs derived from the index.
//   - Value distributions (ValueFn implementations) for potentials and rates:
//     – ConstantValue, UniformValue.
//   - Options: WithSeed, WithRand, WithMaxPotential, WithMaxInterestRate,
//     WithPotentialFn, WithRateFn.
//
// Guarantees:
//
//   - Deterministic output for a fixed seed and option set.
//   - Option constructors panic on meaningless arguments, as does a nil IDFn.
//     Size and RNG problems are reported as ErrTooFewActors, ErrTooManyArcs
//     or ErrNeedRandSource.
package builder

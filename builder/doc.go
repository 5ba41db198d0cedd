// SPDX-License-Identifier: MIT

// Package builder generates deterministic weighted topologies on top of
// core.Graph, as fixtures for the shortest-path solver, benchmarks and the
// "pqpath generate" command.
//
// A single orchestrator composes constructors:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithDirected(false)},
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.IntWeight(1, 9))},
//	    builder.Grid(10, 10),
//	)
//
// Topologies:
//
//	Path(n)            0—1—…—(n-1)                       n ≥ 2
//	Cycle(n)           Path closed by (n-1)—0            n ≥ 3
//	Star(n)            "Center" plus n-1 leaves          n ≥ 2
//	Complete(n)        K_n                               n ≥ 1
//	Grid(r, c)         4-neighborhood, IDs "r,c"         r, c ≥ 1
//	RandomSparse(n, p) G(n, p), needs an RNG for 0<p<1   n ≥ 1
//
// Options:
//
//	WithIDScheme(fn)   vertex index → ID (IndexNamer, LetterNamer, PrefixNamer)
//	WithSeed(seed)     deterministic RNG
//	WithRand(r)        caller-owned RNG
//	WithWeightFn(fn)   per-edge weight draw (ConstantWeight, UniformWeight,
//	                   IntWeight); UnitWeight when unset
//
// Determinism: the same options, seed and constructor order always produce
// the same graph. Weight draws happen in edge emission order.
//
// Errors:
//
//	ErrTooFewVertices     - size below the topology minimum
//	ErrInvalidProbability - p outside [0, 1]
//	ErrNeedRandSource     - RandomSparse with 0<p<1 and no RNG
//	ErrConstructFailed    - nil constructor
//	ErrUnknownTopology    - ByName with an unknown name
package builder

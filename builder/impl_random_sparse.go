// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/pqpath/core"
)

const (
	shapeRandom    = "RandomSparse"
	minRandomSize  = 1
	maxProbability = 1.0
)

// RandomSparse builds G(n, p): every candidate pair is kept with probability
// p. Pairs are ordered on a directed graph and unordered otherwise;
// self-loops are candidates only when the graph allows them.
//
// An RNG (WithSeed or WithRand) is required unless p is 0 or 1. With a fixed
// seed the result is repeatable.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSize {
			return tooSmall(shapeRandom, n, minRandomSize)
		}
		if p < 0 || p > maxProbability {
			return fmt.Errorf("%s: p=%g not in [0,1]: %w", shapeRandom, p, ErrInvalidProbability)
		}
		certain := p == 0 || p == maxProbability
		if cfg.rng == nil && !certain {
			return fmt.Errorf("%s: p=%g: %w", shapeRandom, p, ErrNeedRandSource)
		}

		ids, err := namedVertices(g, cfg, shapeRandom, n)
		if err != nil {
			return err
		}
		directed, loops := g.Directed(), g.Looped()
		for i, u := range ids {
			for j, v := range ids {
				switch {
				case i == j && !loops:
					continue
				case j < i && !directed:
					continue
				}
				keep := p == maxProbability
				if !certain {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err = link(g, cfg, shapeRandom, u, v); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

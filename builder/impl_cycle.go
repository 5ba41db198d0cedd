// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/pqpath/core"

const (
	shapeCycle   = "Cycle"
	minCycleSize = 3
)

// Cycle builds a ring of n ≥ 3 vertices: Path(n) plus the closing road
// v(n-1)—v0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleSize {
			return tooSmall(shapeCycle, n, minCycleSize)
		}
		ids, err := namedVertices(g, cfg, shapeCycle, n)
		if err != nil {
			return err
		}
		prev := ids[n-1]
		for _, id := range ids {
			if err = link(g, cfg, shapeCycle, prev, id); err != nil {
				return err
			}
			prev = id
		}
		return nil
	}
}

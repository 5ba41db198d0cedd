// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/pqpath/core"

const (
	shapePath   = "Path"
	minPathSize = 2
)

// Path builds the chain v0—v1—…—v(n-1), n ≥ 2. On a directed graph the
// chain only runs forward.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathSize {
			return tooSmall(shapePath, n, minPathSize)
		}
		ids, err := namedVertices(g, cfg, shapePath, n)
		if err != nil {
			return err
		}
		for i := 1; i < len(ids); i++ {
			if err = link(g, cfg, shapePath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}
		return nil
	}
}

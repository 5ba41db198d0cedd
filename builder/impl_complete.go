// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/pqpath/core"

const (
	shapeComplete   = "Complete"
	minCompleteSize = 1
)

// Complete links every pair of n ≥ 1 vertices. A directed graph gets both
// orientations, each with its own weight draw. O(n²) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteSize {
			return tooSmall(shapeComplete, n, minCompleteSize)
		}
		ids, err := namedVertices(g, cfg, shapeComplete, n)
		if err != nil {
			return err
		}
		for i, u := range ids {
			for _, v := range ids[i+1:] {
				if err = linkBoth(g, cfg, shapeComplete, u, v); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

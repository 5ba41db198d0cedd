// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/pqpath/core"
)

const (
	shapeStar   = "Star"
	minStarSize = 2
)

// StarCenterID is the hub of every Star.
const StarCenterID = "Center"

// Star builds a hub with n-1 spokes, n ≥ 2. Leaves are named by the
// configured Namer; on a directed graph spokes leave the hub.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarSize {
			return tooSmall(shapeStar, n, minStarSize)
		}
		if err := g.AddVertex(StarCenterID); err != nil {
			return fmt.Errorf("%s: vertex %q: %w", shapeStar, StarCenterID, err)
		}
		leaves, err := namedVertices(g, cfg, shapeStar, n-1)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err = link(g, cfg, shapeStar, StarCenterID, leaf); err != nil {
				return err
			}
		}
		return nil
	}
}

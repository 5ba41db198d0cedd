// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/pqpath/core"
)

const (
	shapeGrid  = "Grid"
	minGridDim = 1
)

// GridID is the ID Grid gives cell (r, c): "r,c".
func GridID(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }

// Grid builds a rows×cols street map where each cell connects to its right
// and lower neighbor. Cells are always named by GridID. A directed graph
// gets both orientations of every street.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: %dx%d, each side needs at least %d: %w",
				shapeGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(GridID(r, c)); err != nil {
					return fmt.Errorf("%s: cell %d,%d: %w", shapeGrid, r, c, err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				here := GridID(r, c)
				if c+1 < cols {
					if err := linkBoth(g, cfg, shapeGrid, here, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := linkBoth(g, cfg, shapeGrid, here, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}

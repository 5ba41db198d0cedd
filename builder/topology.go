// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strings"
)

// Topologies lists the names accepted by ByName, in display order.
var Topologies = []string{"path", "cycle", "star", "complete", "grid", "random"}

// ByName maps a topology name to its constructor. n is the vertex count,
// or the side length for "grid" (an n×n grid); p is only read by "random".
// Returns ErrUnknownTopology for any other name.
func ByName(name string, n int, p float64) (Constructor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "path":
		return Path(n), nil
	case "cycle":
		return Cycle(n), nil
	case "star":
		return Star(n), nil
	case "complete":
		return Complete(n), nil
	case "grid":
		return Grid(n, n), nil
	case "random":
		return RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownTopology, name, strings.Join(Topologies, ", "))
	}
}

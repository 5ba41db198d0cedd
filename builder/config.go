// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig holds the resolved options of one BuildGraph call.
type builderConfig struct {
	namer  Namer
	rng    *rand.Rand
	weight WeightFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{namer: IndexNamer, weight: unitWeight}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// edgeWeight draws the next weight. A draw that is not a valid edge weight
// is left for core.Graph.AddEdge to reject.
func (c builderConfig) edgeWeight() float64 { return c.weight(c.rng) }

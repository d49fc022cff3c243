// SPDX-License-Identifier: MIT

// Package repair makes a filtered graph consistent with its largest connected
// component.
//
// Policies:
//
//   - Drop: keep only edges whose endpoints both lie in the component; every
//     other vertex disappears. Drop is idempotent.
//   - Stitch: keep every edge and every vertex of the universe; each universe
//     vertex outside the component gets exactly one new edge to a uniformly
//     chosen component vertex, weighted by the configured WeightFn
//     (default uniform in [1, 999]). Draw order per vertex: target, then weight.
//
// Renumber remaps vertex ids to the dense range [0, n) in first-seen order over
// the edge stream, followed by the remaining universe vertices ascending. It is
// applied before Stitch when dense ids are required; VertexMap.Apply remaps the
// selected component with the same mapping.
//
// Randomness is injected through WithRand / WithSeed so that tests can supply
// a deterministic Source.
package repair

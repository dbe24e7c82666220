// SPDX-License-Identifier: MIT
// Package: lvloan/actorgraph
//
// traversal.go — reverse breadth-first reachability.

package actorgraph

// Ancestors returns every actor with a directed path into a, excluding a,
// in breadth-first order of hop count. These are exactly the actors that can
// lend to a under an unbounded rate ceiling.
//
// Errors: ErrNilActor, ErrNotInGraph.
// Complexity: O(V + E) over the ancestor subgraph.
func (g *Graph[I]) Ancestors(a *Actor[I]) ([]*Actor[I], error) {
	if err := g.checkMember("actor", a); err != nil {
		return nil, err
	}

	visited := map[*Actor[I]]bool{a: true}
	queue := []*Actor[I]{a}
	var out []*Actor[I]
	for head := 0; head < len(queue); head++ {
		for tail := range g.incoming[queue[head]] {
			if visited[tail] {
				continue
			}
			visited[tail] = true
			queue = append(queue, tail)
			out = append(out, tail)
		}
	}

	return out, nil
}

package enfa

import "github.com/aretw0/automata/pkg/domain"

// Closure returns the smallest superset of states closed under epsilon edges.
// Each state is expanded at most once, so epsilon cycles terminate.
func (r *Relation) Closure(states domain.StateSet) domain.StateSet {
	visited := make(map[domain.State]struct{}, len(states))
	stack := make([]domain.State, 0, len(states))
	for _, s := range states {
		if _, seen := visited[s]; !seen {
			visited[s] = struct{}{}
			stack = append(stack, s)
		}
	}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, next := range r.edges[edge{from: s, label: domain.Epsilon}] {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			stack = append(stack, next)
		}
	}

	out := make([]domain.State, 0, len(visited))
	for s := range visited {
		out = append(out, s)
	}
	return domain.NewStateSet(out...)
}

// Move returns the union of the direct (non-epsilon) successors on sym of
// every state in states. The result is empty if none has such a transition.
func (r *Relation) Move(states domain.StateSet, sym domain.Symbol) domain.StateSet {
	out := domain.StateSet{}
	label := domain.On(sym)
	for _, s := range states {
		if next := r.Successors(s, label); !next.Empty() {
			out = out.Union(next)
		}
	}
	return out
}

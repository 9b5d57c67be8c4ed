package autodiff

// Backward propagates gradients from this node to every differentiable
// ancestor.
//
// Algorithm:
//  1. Seed this node's Grad with the one of Data's shape
//  2. Topologically sort the subgraph reachable through parent edges
//  3. Replay each visited node's backward closure in reverse order, so a
//     node's Grad is fully accumulated from all of its consumers before its
//     own closure propagates it further upstream
//
// Calling Backward on a node with RequiresGrad == false is a no-op.
//
// Gradients are never zeroed here: a second call accumulates on top of the
// first. Callers that want fresh gradients must reset them between calls.
func (n *Node[T]) Backward() {
	if !n.RequiresGrad {
		return
	}
	n.Grad = n.Data.OneLike()
	order := n.topologicalSort()
	for i := len(order) - 1; i >= 0; i-- {
		if order[i].backward != nil {
			order[i].backward()
		}
	}
}

// topologicalSort returns the reachable differentiable subgraph in post-order:
// parents appear before every node that references them.
//
// Visitation is keyed by node identity. A node with RequiresGrad == false is
// skipped together with everything reachable only through it, even if some of
// those ancestors would require gradients along a different path that is
// itself never visited.
//
// A cyclic graph (possible only by bypassing Module wiring) recurses without
// bound; this is an unchecked precondition, not a handled error.
func (n *Node[T]) topologicalSort() []*Node[T] {
	var order []*Node[T]
	visited := make(map[*Node[T]]struct{})

	var visit func(node *Node[T])
	visit = func(node *Node[T]) {
		if _, ok := visited[node]; ok || !node.RequiresGrad {
			return
		}
		visited[node] = struct{}{}
		for _, parent := range node.parents {
			visit(parent)
		}
		order = append(order, node)
	}

	visit(n)
	return order
}

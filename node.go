package gsearch

import "github.com/pdrpinto/gsearch/internal"

// Node wraps a state with its accumulated path cost, depth and the node it was
// expanded from. Nodes are immutable once created.
type Node[StateType comparable, CostType Cost] struct {
	state    StateType
	cost     CostType
	depth    int
	operator string
	parent   *Node[StateType, CostType]
}

// NewRootNode returns a node for the start state: depth 0, cost 0, no parent.
func NewRootNode[StateType comparable, CostType Cost](state StateType) *Node[StateType, CostType] {
	return &Node[StateType, CostType]{state: state}
}

func newChildNode[StateType comparable, CostType Cost](
	parent *Node[StateType, CostType],
	operation OperationResult[StateType, CostType],
	cost CostType,
) *Node[StateType, CostType] {
	return &Node[StateType, CostType]{
		state:    operation.State,
		cost:     cost,
		depth:    parent.depth + 1,
		operator: operation.Operator,
		parent:   parent,
	}
}

// State returns the wrapped state.
func (n *Node[StateType, CostType]) State() StateType { return n.state }

// Cost returns g, the accumulated cost from the root.
func (n *Node[StateType, CostType]) Cost() CostType { return n.cost }

// Depth returns the number of operators applied since the root.
func (n *Node[StateType, CostType]) Depth() int { return n.depth }

// Operator returns the name of the operator that produced the node, or "" for the root.
func (n *Node[StateType, CostType]) Operator() string { return n.operator }

// Parent returns the node this one was expanded from, or nil for the root.
func (n *Node[StateType, CostType]) Parent() *Node[StateType, CostType] { return n.parent }

// Path returns the states from the root to n.
func (n *Node[StateType, CostType]) Path() []StateType {
	nodes := n.lineage()
	states := make([]StateType, len(nodes))
	for i, node := range nodes {
		states[i] = node.state
	}
	return states
}

// Operators returns the operator names applied from the root to reach n.
func (n *Node[StateType, CostType]) Operators() []string {
	nodes := n.lineage()
	names := make([]string, 0, len(nodes)-1)
	for _, node := range nodes[1:] {
		names = append(names, node.operator)
	}
	return names
}

func (n *Node[StateType, CostType]) lineage() []*Node[StateType, CostType] {
	return internal.ReconstructPath(n, func(current *Node[StateType, CostType]) (*Node[StateType, CostType], bool) {
		return current.parent, current.parent != nil
	})
}

package gsearch

// Result contains the outcome of a search.
// The final node is present only when a goal was reached; running out of
// frontier is a normal outcome, not an error.
type Result[StateType comparable, CostType Cost] struct {
	finalNode      *Node[StateType, CostType]
	nodesExpanded  int
	maxQueueLength int
	err            error
}

// FinalNode returns the goal node and true, or nil and false when the search
// exhausted the state space.
func (r Result[StateType, CostType]) FinalNode() (*Node[StateType, CostType], bool) {
	return r.finalNode, r.finalNode != nil
}

// Found reports whether a goal was reached.
func (r Result[StateType, CostType]) Found() bool { return r.finalNode != nil }

// TotalNodesExpanded returns how many nodes were expanded. Goal and stale pops are not counted.
func (r Result[StateType, CostType]) TotalNodesExpanded() int { return r.nodesExpanded }

// MaxQueueLength returns the largest open-set size observed.
func (r Result[StateType, CostType]) MaxQueueLength() int { return r.maxQueueLength }

// Path returns the states from the initial state to the goal, or nil.
func (r Result[StateType, CostType]) Path() []StateType {
	if r.finalNode == nil {
		return nil
	}
	return r.finalNode.Path()
}

// Cost returns the path cost of the final node, or zero when not found.
func (r Result[StateType, CostType]) Cost() CostType {
	if r.finalNode == nil {
		return 0
	}
	return r.finalNode.cost
}

// Err returns the error that aborted the search, if any.
func (r Result[StateType, CostType]) Err() error { return r.err }

// Depth returns the depth of the final node, or -1 when not found.
func (r Result[StateType, CostType]) Depth() int {
	if r.finalNode == nil {
		return -1
	}
	return r.finalNode.depth
}

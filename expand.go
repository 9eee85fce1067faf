package gsearch

// ExpandResult groups a node with the children produced by applying every
// operator valid at its state.
type ExpandResult[StateType comparable, CostType Cost] struct {
	currentNode *Node[StateType, CostType]
	children    []*Node[StateType, CostType]
}

// CurrentNode returns the node that was expanded.
func (e ExpandResult[StateType, CostType]) CurrentNode() *Node[StateType, CostType] {
	return e.currentNode
}

// Children returns the produced child nodes in operator order, dominated ones included.
func (e ExpandResult[StateType, CostType]) Children() []*Node[StateType, CostType] {
	return e.children
}

// ExpandedStates returns the states of the produced children.
func (e ExpandResult[StateType, CostType]) ExpandedStates() []StateType {
	states := make([]StateType, len(e.children))
	for i, child := range e.children {
		states[i] = child.state
	}
	return states
}

// Expand applies operators to the state of node and builds one child per
// operator, with path cost computed by costOf. It neither mutates node nor
// retains operators.
func Expand[StateType comparable, CostType Cost](
	node *Node[StateType, CostType],
	operators []Operator[StateType, CostType],
	costOf GFunc[StateType, CostType],
) (ExpandResult[StateType, CostType], error) {
	if costOf == nil {
		costOf = AdditiveCost[StateType, CostType]
	}
	children := make([]*Node[StateType, CostType], 0, len(operators))
	for _, operator := range operators {
		if operator.Cost < 0 {
			return ExpandResult[StateType, CostType]{}, &OperatorError{Operator: operator.Name, Err: ErrNegativeCost}
		}
		if operator.Apply == nil {
			return ExpandResult[StateType, CostType]{}, &OperatorError{Operator: operator.Name, Err: ErrNilApply}
		}
		operation := OperationResult[StateType, CostType]{
			State:    operator.Apply(node.state),
			Cost:     operator.Cost,
			Operator: operator.Name,
		}
		children = append(children, newChildNode(node, operation, costOf(node, operation)))
	}
	return ExpandResult[StateType, CostType]{currentNode: node, children: children}, nil
}

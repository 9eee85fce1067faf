package gsearch

import "golang.org/x/exp/constraints"

// Cost is the numeric type used for step costs, path costs and heuristic values.
type Cost interface {
	constraints.Integer | constraints.Float
}

// Problem describes a state space to be searched.
// Implementations must be deterministic and free of side effects: the engine may
// ask for the operators of the same state more than once.
type Problem[StateType comparable, CostType Cost] interface {
	// InitialState returns the state the search starts from.
	InitialState() StateType
	// Operators returns the transitions applicable to state. It may be empty.
	Operators(state StateType) []Operator[StateType, CostType]
	// GoalTest reports whether state is a goal.
	GoalTest(state StateType) bool
}

// Operator is one applicable state transition.
// Apply must return a new state value and never mutate its argument.
type Operator[StateType comparable, CostType Cost] struct {
	Name  string
	Cost  CostType
	Apply func(state StateType) StateType
}

// OperationResult is the outcome of applying an Operator to a state.
type OperationResult[StateType comparable, CostType Cost] struct {
	State    StateType
	Cost     CostType
	Operator string
}

// Heuristic estimates the remaining cost from state to the nearest goal.
type Heuristic[StateType comparable, CostType Cost] func(state StateType) CostType

// GFunc computes the accumulated path cost of the child produced by applying
// operation to parent.
type GFunc[StateType comparable, CostType Cost] func(parent *Node[StateType, CostType], operation OperationResult[StateType, CostType]) CostType

// AdditiveCost is the default GFunc: the parent's cost plus the step cost.
func AdditiveCost[StateType comparable, CostType Cost](parent *Node[StateType, CostType], operation OperationResult[StateType, CostType]) CostType {
	return parent.Cost() + operation.Cost
}

// DepthCost charges one unit per move regardless of the operator's step cost.
func DepthCost[StateType comparable, CostType Cost](parent *Node[StateType, CostType], _ OperationResult[StateType, CostType]) CostType {
	return CostType(parent.Depth() + 1)
}

// ProblemFunc adapts plain functions to the Problem interface.
type ProblemFunc[StateType comparable, CostType Cost] struct {
	Initial StateType
	Expand  func(state StateType) []Operator[StateType, CostType]
	IsGoal  func(state StateType) bool
}

// InitialState implements Problem.
func (p ProblemFunc[StateType, CostType]) InitialState() StateType { return p.Initial }

// Operators implements Problem.
func (p ProblemFunc[StateType, CostType]) Operators(state StateType) []Operator[StateType, CostType] {
	if p.Expand == nil {
		return nil
	}
	return p.Expand(state)
}

// GoalTest implements Problem.
func (p ProblemFunc[StateType, CostType]) GoalTest(state StateType) bool {
	return p.IsGoal != nil && p.IsGoal(state)
}

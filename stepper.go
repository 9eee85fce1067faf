package gsearch

import (
	"cmp"
	"log/slog"
)

// StepSnapshot exposes the per-iteration state of the search.
type StepSnapshot[StateType comparable, CostType Cost] struct {
	StepIndex int
	// Current is the node popped by this step; nil once the open set is empty.
	Current *Node[StateType, CostType]
	// Expansion is set when Current was expanded.
	Expansion *ExpandResult[StateType, CostType]
	// Stale is true when Current was superseded by a cheaper path and skipped.
	Stale          bool
	QueueLength    int
	NodesExpanded  int
	MaxQueueLength int
	Done           bool
	Found          bool
}

// Stepper advances an A* search one popped node at a time.
// Search is a Stepper run until Done.
type Stepper[StateType comparable, CostType Cost] struct {
	problem   Problem[StateType, CostType]
	heuristic Heuristic[StateType, CostType]
	gFunc     GFunc[StateType, CostType]
	logger    *slog.Logger
	hooks     Hooks[StateType, CostType]

	openSet  *PriorityQueue[*Node[StateType, CostType], CostType]
	bestCost map[StateType]CostType

	stepCount      int
	nodesExpanded  int
	maxQueueLength int
	finalNode      *Node[StateType, CostType]
	done           bool
	err            error
}

// NewStepper seeds the open set with the problem's initial state.
func NewStepper[StateType comparable, CostType Cost](
	problem Problem[StateType, CostType],
	heuristic Heuristic[StateType, CostType],
	options ...Option[StateType, CostType],
) (*Stepper[StateType, CostType], error) {
	if problem == nil {
		return nil, ErrNilProblem
	}
	if heuristic == nil {
		return nil, ErrNilHeuristic
	}
	searchOptions := buildOptions(options)

	s := &Stepper[StateType, CostType]{
		problem:        problem,
		heuristic:      heuristic,
		gFunc:          searchOptions.GFunc,
		logger:         searchOptions.Logger,
		hooks:          searchOptions.Hooks,
		openSet:        NewPriorityQueue[*Node[StateType, CostType]](Comparator[CostType](cmp.Compare[CostType])),
		bestCost:       make(map[StateType]CostType),
		maxQueueLength: 1,
	}

	root := NewRootNode[StateType, CostType](problem.InitialState())
	s.bestCost[root.state] = 0
	s.openSet.Insert(root, heuristic(root.state))
	return s, nil
}

// Done reports whether the search has finished.
func (s *Stepper[StateType, CostType]) Done() bool { return s.done }

// Result returns the outcome so far. The final node is set only once a goal was popped.
func (s *Stepper[StateType, CostType]) Result() Result[StateType, CostType] {
	return Result[StateType, CostType]{
		finalNode:      s.finalNode,
		nodesExpanded:  s.nodesExpanded,
		maxQueueLength: s.maxQueueLength,
		err:            s.err,
	}
}

// Step pops the lowest-priority node and either discards it as stale,
// accepts it as the goal, or expands it. Steps after Done return the final
// snapshot again, along with the error that aborted the search if there was one.
func (s *Stepper[StateType, CostType]) Step() (StepSnapshot[StateType, CostType], error) {
	if s.done {
		return s.snapshot(nil), s.err
	}
	if s.openSet.Len() == 0 {
		s.logger.Debug("open set exhausted", "expanded", s.nodesExpanded, "max_queue", s.maxQueueLength)
		s.finish()
		return s.snapshot(nil), nil
	}

	s.stepCount++
	current, priority, err := s.openSet.ExtractMin()
	if err != nil {
		return s.snapshot(nil), err
	}

	if best, known := s.bestCost[current.state]; known && best < current.cost {
		s.logger.Debug("stale entry", "depth", current.depth, "g", current.cost, "best_g", best)
		if s.hooks.OnStale != nil {
			s.hooks.OnStale(current)
		}
		snapshot := s.snapshot(current)
		snapshot.Stale = true
		return snapshot, nil
	}

	if s.problem.GoalTest(current.state) {
		s.logger.Debug("goal reached", "depth", current.depth, "g", current.cost, "expanded", s.nodesExpanded)
		s.finalNode = current
		s.finish()
		return s.snapshot(current), nil
	}

	expansion, err := Expand(current, s.problem.Operators(current.state), s.gFunc)
	if err != nil {
		s.logger.Debug("expansion failed", "depth", current.depth, "error", err)
		s.err = err
		s.finish()
		return s.snapshot(current), err
	}
	s.nodesExpanded++
	s.logger.Debug("expand",
		"depth", current.depth,
		"g", current.cost,
		"f", priority,
		"children", len(expansion.children),
	)
	if s.hooks.OnExpand != nil {
		s.hooks.OnExpand(expansion)
	}

	for _, child := range expansion.children {
		previous, seen := s.bestCost[child.state]
		if seen && child.cost >= previous {
			continue
		}
		s.bestCost[child.state] = child.cost
		s.openSet.Insert(child, child.cost+s.heuristic(child.state))
	}
	if queueLength := s.openSet.Len(); queueLength > s.maxQueueLength {
		s.maxQueueLength = queueLength
	}

	snapshot := s.snapshot(current)
	snapshot.Expansion = &expansion
	return snapshot, nil
}

func (s *Stepper[StateType, CostType]) finish() {
	s.done = true
	if s.hooks.OnFinish != nil {
		s.hooks.OnFinish(s.Result())
	}
}

func (s *Stepper[StateType, CostType]) snapshot(current *Node[StateType, CostType]) StepSnapshot[StateType, CostType] {
	return StepSnapshot[StateType, CostType]{
		StepIndex:      s.stepCount,
		Current:        current,
		QueueLength:    s.openSet.Len(),
		NodesExpanded:  s.nodesExpanded,
		MaxQueueLength: s.maxQueueLength,
		Done:           s.done,
		Found:          s.finalNode != nil,
	}
}

package gsearch

import (
	"context"
	"log/slog"

	"github.com/pdrpinto/gsearch/internal/logging"
)

// Hooks are optional callbacks invoked by the search loop.
type Hooks[StateType comparable, CostType Cost] struct {
	// OnExpand runs after a node has been expanded, before its children are queued.
	OnExpand func(expansion ExpandResult[StateType, CostType])
	// OnStale runs when a superseded queue entry is popped and discarded.
	OnStale func(node *Node[StateType, CostType])
	// OnFinish runs once with the final result.
	OnFinish func(result Result[StateType, CostType])
}

// CombineHooks returns Hooks that call each of hooks in order.
func CombineHooks[StateType comparable, CostType Cost](hooks ...Hooks[StateType, CostType]) Hooks[StateType, CostType] {
	return Hooks[StateType, CostType]{
		OnExpand: func(expansion ExpandResult[StateType, CostType]) {
			for _, h := range hooks {
				if h.OnExpand != nil {
					h.OnExpand(expansion)
				}
			}
		},
		OnStale: func(node *Node[StateType, CostType]) {
			for _, h := range hooks {
				if h.OnStale != nil {
					h.OnStale(node)
				}
			}
		},
		OnFinish: func(result Result[StateType, CostType]) {
			for _, h := range hooks {
				if h.OnFinish != nil {
					h.OnFinish(result)
				}
			}
		},
	}
}

// Options defines parameters for the search.
type Options[StateType comparable, CostType Cost] struct {
	GFunc  GFunc[StateType, CostType]
	Logger *slog.Logger
	Hooks  Hooks[StateType, CostType]
}

// Option is a function that modifies Options.
type Option[StateType comparable, CostType Cost] func(*Options[StateType, CostType])

// WithGFunc replaces the additive path cost with gFunc.
func WithGFunc[StateType comparable, CostType Cost](gFunc GFunc[StateType, CostType]) Option[StateType, CostType] {
	return func(options *Options[StateType, CostType]) { options.GFunc = gFunc }
}

// WithLogger sets the logger used for the debug trace of the search.
func WithLogger[StateType comparable, CostType Cost](logger *slog.Logger) Option[StateType, CostType] {
	return func(options *Options[StateType, CostType]) { options.Logger = logger }
}

// WithHooks installs lifecycle callbacks. Repeated use combines them.
func WithHooks[StateType comparable, CostType Cost](hooks Hooks[StateType, CostType]) Option[StateType, CostType] {
	return func(options *Options[StateType, CostType]) {
		options.Hooks = CombineHooks(options.Hooks, hooks)
	}
}

func buildOptions[StateType comparable, CostType Cost](options []Option[StateType, CostType]) Options[StateType, CostType] {
	searchOptions := Options[StateType, CostType]{
		GFunc:  AdditiveCost[StateType, CostType],
		Logger: logging.NewNop(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.GFunc == nil {
		searchOptions.GFunc = AdditiveCost[StateType, CostType]
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = logging.NewNop()
	}
	return searchOptions
}

// Searcher runs A* searches with a fixed set of options.
// It holds no state between calls and may be shared by goroutines that search
// distinct problems.
type Searcher[StateType comparable, CostType Cost] struct {
	options []Option[StateType, CostType]
}

// NewSearcher returns a Searcher applying options to every search.
func NewSearcher[StateType comparable, CostType Cost](options ...Option[StateType, CostType]) *Searcher[StateType, CostType] {
	return &Searcher[StateType, CostType]{options: options}
}

// Search runs the search for problem to completion.
// Per-call options are applied after the Searcher's own.
func (s *Searcher[StateType, CostType]) Search(
	contextObject context.Context,
	problem Problem[StateType, CostType],
	heuristic Heuristic[StateType, CostType],
	options ...Option[StateType, CostType],
) (Result[StateType, CostType], error) {
	merged := make([]Option[StateType, CostType], 0, len(s.options)+len(options))
	merged = append(merged, s.options...)
	merged = append(merged, options...)
	return Search(contextObject, problem, heuristic, merged...)
}

// Search executes the A* search algorithm.
//
// It returns a Result whose final node is absent when the open set runs dry.
// The context is checked before every expansion; when it is done the search
// stops and returns its error with an empty Result.
func Search[StateType comparable, CostType Cost](
	contextObject context.Context,
	problem Problem[StateType, CostType],
	heuristic Heuristic[StateType, CostType],
	options ...Option[StateType, CostType],
) (Result[StateType, CostType], error) {
	stepper, err := NewStepper(problem, heuristic, options...)
	if err != nil {
		return Result[StateType, CostType]{}, err
	}

	// --- Orchestrator loop ---
	for !stepper.Done() {
		if err := contextObject.Err(); err != nil {
			return Result[StateType, CostType]{}, err
		}
		if _, err := stepper.Step(); err != nil {
			return Result[StateType, CostType]{}, err
		}
	}
	return stepper.Result(), nil
}

// Package metrics exports search statistics to Prometheus through gsearch.Hooks.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pdrpinto/gsearch"
)

// Outcome label values for gsearch_searches_total.
const (
	OutcomeFound     = "found"
	OutcomeExhausted = "exhausted"
	OutcomeFailed    = "failed"
)

// Collector holds the search metrics.
type Collector struct {
	nodesExpanded  prometheus.Counter
	staleEntries   prometheus.Counter
	searches       *prometheus.CounterVec
	maxQueueLength prometheus.Histogram
	solutionCost   prometheus.Histogram
}

// New creates a Collector and registers it with reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		nodesExpanded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gsearch_nodes_expanded_total",
			Help: "Total number of nodes expanded",
		}),
		staleEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gsearch_stale_entries_total",
			Help: "Total number of superseded queue entries discarded",
		}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gsearch_searches_total",
			Help: "Completed searches by outcome",
		}, []string{"outcome"}),
		maxQueueLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gsearch_max_queue_length",
			Help:    "Largest open-set size observed per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
		}),
		solutionCost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gsearch_solution_cost",
			Help:    "Path cost of solutions found",
			Buckets: []float64{1, 2, 5, 10, 20, 30, 50, 80},
		}),
	}
	for _, collector := range []prometheus.Collector{
		c.nodesExpanded, c.staleEntries, c.searches, c.maxQueueLength, c.solutionCost,
	} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Hooks returns search hooks that record into c.
func Hooks[StateType comparable, CostType gsearch.Cost](c *Collector) gsearch.Hooks[StateType, CostType] {
	return gsearch.Hooks[StateType, CostType]{
		OnExpand: func(gsearch.ExpandResult[StateType, CostType]) {
			c.nodesExpanded.Inc()
		},
		OnStale: func(*gsearch.Node[StateType, CostType]) {
			c.staleEntries.Inc()
		},
		OnFinish: func(result gsearch.Result[StateType, CostType]) {
			c.maxQueueLength.Observe(float64(result.MaxQueueLength()))
			if result.Err() != nil {
				c.searches.WithLabelValues(OutcomeFailed).Inc()
				return
			}
			if !result.Found() {
				c.searches.WithLabelValues(OutcomeExhausted).Inc()
				return
			}
			c.searches.WithLabelValues(OutcomeFound).Inc()
			c.solutionCost.Observe(float64(result.Cost()))
		},
	}
}

// Package metrics exposes Prometheus collectors for automaton evaluations.
package metrics

import (
	"errors"
	"unicode/utf8"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the evaluation collectors.
type Metrics struct {
	Evaluations *prometheus.CounterVec
	InputLength *prometheus.HistogramVec
	CacheHits   *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
// A nil reg registers with prometheus.DefaultRegisterer. Collectors already
// registered with reg by an earlier call are shared.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automata_evaluations_total",
				Help: "Total number of evaluated input strings",
			},
			[]string{"automaton", "outcome"},
		),
		InputLength: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "automata_input_symbols",
				Help:    "Number of symbols per evaluated input",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"automaton"},
		),
		CacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automata_result_cache_hits_total",
				Help: "Evaluations served from the result store",
			},
			[]string{"automaton"},
		),
	}
	m.Evaluations = register(reg, m.Evaluations)
	m.InputLength = register(reg, m.InputLength)
	m.CacheHits = register(reg, m.CacheHits)
	return m
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// Observe records one evaluation.
func (m *Metrics) Observe(automaton string, res domain.Result) {
	m.Evaluations.WithLabelValues(automaton, string(res.Outcome)).Inc()
	m.InputLength.WithLabelValues(automaton).Observe(float64(utf8.RuneCountInString(res.Input)))
}

// ObserveCacheHit records an evaluation answered by the store.
func (m *Metrics) ObserveCacheHit(automaton string) {
	m.CacheHits.WithLabelValues(automaton).Inc()
}

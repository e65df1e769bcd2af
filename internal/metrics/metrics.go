// Package metrics counts transform invocations with Prometheus collectors.
package metrics

import (
	"github.com/ib-77/bindchain/pkg/monad"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bindchain"

// Recorder owns a private registry so that several recorders never collide.
type Recorder struct {
	registry *prometheus.Registry
	steps    *prometheus.CounterVec
	terminal *prometheus.CounterVec
}

// Sample is a single counter value read back from a Recorder.
type Sample struct {
	Name  string
	Kind  string
	Step  string
	Value float64
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Transform invocations by container kind and step",
		}, []string{"kind", "step"}),
		terminal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "terminal_total",
			Help:      "Transform invocations that produced a terminal container",
		}, []string{"kind", "step"}),
	}
	r.registry.MustRegister(r.steps, r.terminal)
	return r
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Observe wraps f so that every invocation is counted. A nil recorder
// returns f unchanged.
func Observe[T, M any](r *Recorder, kind, step string, f func(T) M) func(T) M {
	if r == nil {
		return f
	}

	steps := r.steps.WithLabelValues(kind, step)
	terminal := r.terminal.WithLabelValues(kind, step)
	return func(v T) M {
		out := f(v)
		steps.Inc()
		if monad.IsTerminal(out) {
			terminal.Inc()
		}
		return out
	}
}

// Samples returns every non-zero counter, sorted by metric name and labels.
func (r *Recorder) Samples() ([]Sample, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for _, family := range families {
		for _, m := range family.GetMetric() {
			value := m.GetCounter().GetValue()
			if value == 0 {
				continue
			}

			s := Sample{Name: family.GetName(), Value: value}
			for _, label := range m.GetLabel() {
				switch label.GetName() {
				case "kind":
					s.Kind = label.GetValue()
				case "step":
					s.Step = label.GetValue()
				}
			}
			samples = append(samples, s)
		}
	}
	return samples, nil
}

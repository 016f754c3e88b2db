// Package metrics counts transaction lifecycle events with Prometheus.
package metrics

import (
	"context"
	"fmt"

	"github.com/Layr-Labs/txflow-go/pkg/orchestrator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "txflow"

type Metrics struct {
	registry *prometheus.Registry
	events   *prometheus.CounterVec
	inFlight prometheus.Gauge
}

// NewMetrics registers the lifecycle collectors on a fresh registry. Every
// event tag starts at zero so absent series never hide a missing transition.
func NewMetrics() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lifecycle_events_total",
			Help:      "Transaction lifecycle events reported, by event tag.",
		}, []string{"event"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "transactions_in_flight",
			Help:      "Transactions submitted and not yet mined or failed.",
		}),
	}
	for _, c := range []prometheus.Collector{m.events, m.inFlight} {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}
	for _, tag := range orchestrator.AllEventTags {
		m.events.WithLabelValues(string(tag))
	}
	return m, nil
}

// Registry exposes the underlying registry for scraping or pushing.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Reporter counts each event and then forwards it to next, which may be nil.
func (m *Metrics) Reporter(next orchestrator.Reporter) orchestrator.Reporter {
	return func(event orchestrator.Event) {
		m.events.WithLabelValues(string(event.Tag)).Inc()
		switch {
		case !event.HasTxHash():
		case event.Tag.IsTerminal():
			m.inFlight.Dec()
		default:
			m.inFlight.Inc()
		}
		if next != nil {
			next(event)
		}
	}
}

// Push sends the current values to a Prometheus Pushgateway under job.
func (m *Metrics) Push(ctx context.Context, url string, job string, groupings map[string]string) error {
	pusher := push.New(url, job).Gatherer(m.registry)
	for name, value := range groupings {
		pusher = pusher.Grouping(name, value)
	}
	if err := pusher.PushContext(ctx); err != nil {
		return fmt.Errorf("failed to push metrics to %s: %w", url, err)
	}
	return nil
}

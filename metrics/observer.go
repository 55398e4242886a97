// Package metrics exports initialization passes to Prometheus.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sghaida/beaninit/bean"
)

// Outcome label values of beaninit_pass_total.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Observer implements bean.Observer on top of Prometheus collectors.
type Observer struct {
	dispatches *prometheus.CounterVec
	passes     *prometheus.CounterVec
	duration   prometheus.Histogram
}

var _ bean.Observer = (*Observer)(nil)

// NewObserver creates the collectors and registers them with reg.
func NewObserver(reg prometheus.Registerer) (*Observer, error) {
	o := &Observer{
		dispatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "beaninit_dispatch_total",
				Help: "Beans offered to the dispatcher, by result.",
			},
			[]string{"result"},
		),
		passes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "beaninit_pass_total",
				Help: "Initialization passes, by outcome.",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "beaninit_pass_duration_seconds",
			Help:    "Duration of initialization passes.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}

	for _, c := range []prometheus.Collector{o.dispatches, o.passes, o.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	// Pre-create every series so scrapes show zeros.
	for _, r := range []bean.DispatchResult{bean.Initialized, bean.Incompatible, bean.Failed} {
		o.dispatches.WithLabelValues(r.String())
	}
	o.passes.WithLabelValues(OutcomeOK)
	o.passes.WithLabelValues(OutcomeError)
	return o, nil
}

// Dispatched implements bean.Observer.
func (o *Observer) Dispatched(_ *bean.Node, result bean.DispatchResult) {
	o.dispatches.WithLabelValues(result.String()).Inc()
}

// PassFinished implements bean.Observer.
func (o *Observer) PassFinished(_ bean.Bean, err error, elapsed time.Duration) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	o.passes.WithLabelValues(outcome).Inc()
	o.duration.Observe(elapsed.Seconds())
}

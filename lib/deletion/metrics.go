// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package deletion

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fisherman_deletion"

// Metrics records pipeline metrics. A nil *Metrics records nothing.
type Metrics struct {
	phaseDuration *prometheus.HistogramVec
	outcomes      *prometheus.CounterVec
	inFlight      prometheus.Gauge
}

// NewMetrics creates the pipeline metrics and registers them with the
// registerer. Collectors already registered are reused.
func NewMetrics(registerer prometheus.Registerer) (metrics *Metrics, err error) {
	metrics = &Metrics{
		phaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "phase_duration_seconds",
			Help:      "duration of each phase of the target pipelines",
			Buckets:   prometheus.DefBuckets,
		}, []string{"phase"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "target_outcomes_total",
			Help:      "target pipeline outcomes by result",
		}, []string{"result"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "targets_in_flight",
			Help:      "number of target pipelines currently running",
		}),
	}

	metrics.phaseDuration, err = register(registerer, "phase duration histogram", metrics.phaseDuration)
	if err != nil {
		return nil, err
	}
	metrics.outcomes, err = register(registerer, "outcomes counter", metrics.outcomes)
	if err != nil {
		return nil, err
	}
	metrics.inFlight, err = register(registerer, "in flight gauge", metrics.inFlight)
	if err != nil {
		return nil, err
	}

	return metrics, nil
}

func register[T prometheus.Collector](registerer prometheus.Registerer,
	name string, collector T) (registered T, err error) {
	err = registerer.Register(collector)
	if err == nil {
		return collector, nil
	}

	alreadyRegistered := prometheus.AlreadyRegisteredError{}
	if errors.As(err, &alreadyRegistered) {
		existing, ok := alreadyRegistered.ExistingCollector.(T)
		if ok {
			return existing, nil
		}
	}
	return registered, fmt.Errorf("cannot register %s: %w", name, err)
}

func (m *Metrics) observePhase(phase Phase, start time.Time) {
	if m == nil {
		return
	}
	m.phaseDuration.WithLabelValues(phase.String()).Observe(time.Since(start).Seconds())
}

func (m *Metrics) targetStarted() {
	if m == nil {
		return
	}
	m.inFlight.Inc()
}

func (m *Metrics) targetFinished(err error) {
	if m == nil {
		return
	}
	m.inFlight.Dec()
	m.outcomes.WithLabelValues(outcomeLabel(err)).Inc()
}

func outcomeLabel(err error) string {
	if err == nil {
		return "success"
	}

	var pipelineErr *PipelineError
	if errors.As(err, &pipelineErr) {
		switch pipelineErr.Kind() {
		case ErrResourceExhaustion:
			return "resource_exhaustion"
		case ErrInvalidTarget:
			return "invalid_target"
		case ErrSourceUnavailable:
			return "source_unavailable"
		case ErrInsertion:
			return "insertion"
		case ErrCatchUpApply:
			return "catch_up_apply"
		case ErrProofConstruction:
			return "proof_construction"
		}
	}
	return "unknown"
}

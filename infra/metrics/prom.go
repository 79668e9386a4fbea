// Package metrics provides the Prometheus and InfluxDB implementations of
// the core metrics sink.
package metrics

import (
	coremetrics "github.com/autolytix/fleetcare/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records fleet engine events in Prometheus metrics.
type PromSink struct {
	mutations     *prometheus.CounterVec
	statusChanges *prometheus.CounterVec
	saveSeconds   prometheus.Histogram
	saveFailures  prometheus.Counter
	records       *prometheus.GaugeVec
}

// NewPromSink registers fleet metrics on the default Prometheus registerer.
// The /metrics server is started separately.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fleet_mutations_total",
		Help: "Total number of fleet entity mutations",
	}, []string{"entity", "op"})
	statusChanges := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vehicle_status_changes_total",
		Help: "Total number of derived vehicle status transitions",
	}, []string{"from", "to"})
	saveSeconds := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "snapshot_save_seconds",
		Help:    "Duration of snapshot persistence writes",
		Buckets: prometheus.DefBuckets,
	})
	saveFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "snapshot_save_failures_total",
		Help: "Total number of failed snapshot writes",
	})
	records := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "fleet_records",
		Help: "Number of records in the last persisted snapshot",
	}, []string{"entity"})

	if err := reg.Register(mutations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			mutations = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(statusChanges); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			statusChanges = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(saveSeconds); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			saveSeconds = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(saveFailures); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			saveFailures = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(records); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			records = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{
		mutations:     mutations,
		statusChanges: statusChanges,
		saveSeconds:   saveSeconds,
		saveFailures:  saveFailures,
		records:       records,
	}, nil
}

// RecordMutation increments the mutation counter.
func (s *PromSink) RecordMutation(ev coremetrics.MutationEvent) error {
	s.mutations.WithLabelValues(ev.Entity, ev.Op).Inc()
	return nil
}

// RecordStatusChange increments the transition counter.
func (s *PromSink) RecordStatusChange(ev coremetrics.StatusChangeEvent) error {
	s.statusChanges.WithLabelValues(string(ev.Previous), string(ev.Current)).Inc()
	return nil
}

// RecordSnapshot observes the save duration and updates the record gauges.
func (s *PromSink) RecordSnapshot(ev coremetrics.SnapshotEvent) error {
	s.saveSeconds.Observe(ev.Duration.Seconds())
	if ev.Failed {
		s.saveFailures.Inc()
	}
	s.records.WithLabelValues("vehicle").Set(float64(ev.Vehicles))
	s.records.WithLabelValues("maintenance").Set(float64(ev.Maintenance))
	return nil
}

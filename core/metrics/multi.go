package metrics

import "errors"

// MultiSink fans every event out to several sinks, collecting errors.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink returns a sink forwarding to all the given sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) RecordMutation(ev MutationEvent) error {
	var errs []error
	for _, s := range m.sinks {
		errs = append(errs, s.RecordMutation(ev))
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordStatusChange(ev StatusChangeEvent) error {
	var errs []error
	for _, s := range m.sinks {
		errs = append(errs, s.RecordStatusChange(ev))
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordSnapshot(ev SnapshotEvent) error {
	var errs []error
	for _, s := range m.sinks {
		errs = append(errs, s.RecordSnapshot(ev))
	}
	return errors.Join(errs...)
}

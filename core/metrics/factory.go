package metrics

import (
	"fmt"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// Factory constructs a Sink from its raw configuration.
type Factory func(conf map[string]any) (Sink, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// RegisterSink adds a sink factory identified by name. Registering the same
// name twice is an error.
func RegisterSink(name string, f Factory) error {
	if f == nil {
		return fmt.Errorf("nil factory for %s", name)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[name]; ok {
		return fmt.Errorf("sink factory already registered for %s", name)
	}
	registry[name] = f
	return nil
}

// NewSink creates a Sink from the provided configurations: none yields a
// NopSink, several are fanned out through a MultiSink.
func NewSink(cfgs []ModuleConfig) (Sink, error) {
	if len(cfgs) == 0 {
		return NopSink{}, nil
	}
	sinks := make([]Sink, len(cfgs))
	for i, c := range cfgs {
		registryMu.RLock()
		f, ok := registry[c.Type]
		registryMu.RUnlock()
		if !ok {
			return nil, fmt.Errorf("unknown sink type %s", c.Type)
		}
		s, err := f(c.Conf)
		if err != nil {
			return nil, fmt.Errorf("sink %s: %w", c.Type, err)
		}
		sinks[i] = s
	}
	if len(sinks) == 1 {
		return sinks[0], nil
	}
	return NewMultiSink(sinks...), nil
}

// Decode fills out the provided struct from raw config using json tags.
func Decode(data map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: out})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}

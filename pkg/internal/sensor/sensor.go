// Package sensor implements the callback fan-out used for registry and tool-run
// telemetry. Subscribers register plain functions; core components invoke them without
// knowing who listens.
package sensor

import (
	"sync"

	"github.com/spectralsuite/peaks/pkg/internal/types"
	"github.com/spectralsuite/peaks/pkg/internal/utils"
)

// Sensor provides callback hooks for component telemetry.
type Sensor struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	OnTraceRegistered      []func(types.ComponentMetadata, types.Trace)
	OnTraceRemoved         []func(types.ComponentMetadata, int)
	OnStatusChanged        []func(types.ComponentMetadata, string)
	OnToolRunStart         []func(types.ComponentMetadata, string)
	OnToolRunComplete      []func(types.ComponentMetadata, string)
	OnToolRunError         []func(types.ComponentMetadata, string, error)
	OnPeakDetectionWarning []func(types.ComponentMetadata, int, int)

	callbackLock sync.Mutex
	loggers      []types.Logger
	loggersLock  sync.Mutex
	meters       []types.Meter
	metersLock   sync.Mutex
}

// NewSensor constructs a Sensor with optional configuration.
func NewSensor(options ...types.Option[types.Sensor]) types.Sensor {
	s := &Sensor{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "SENSOR",
		},
	}

	for _, opt := range s.decorateCallbacks(options...) {
		if opt == nil {
			continue
		}
		opt(s)
	}

	return s
}

// decorateCallbacks prepends the built-in callbacks that keep attached meters current,
// so counter upkeep never depends on the subscriber.
func (s *Sensor) decorateCallbacks(options ...types.Option[types.Sensor]) []types.Option[types.Sensor] {
	options = append(
		options,
		WithOnTraceRegisteredFunc(func(c types.ComponentMetadata, trace types.Trace) {
			s.incrementMeterCounters(types.MetricTracesRegistered)
		}),
		WithOnTraceRemovedFunc(func(c types.ComponentMetadata, id int) {
			s.incrementMeterCounters(types.MetricTracesRemoved)
		}),
		WithOnToolRunStartFunc(func(c types.ComponentMetadata, name string) {
			s.incrementMeterCounters(types.MetricRunsStarted)
		}),
		WithOnToolRunCompleteFunc(func(c types.ComponentMetadata, name string) {
			s.incrementMeterCounters(types.MetricRunsSucceeded)
		}),
		WithOnToolRunErrorFunc(func(c types.ComponentMetadata, name string, err error) {
			s.incrementMeterCounters(types.MetricRunsFailed)
		}),
	)
	return options
}

func (s *Sensor) incrementMeterCounters(metric string) {
	s.metersLock.Lock()
	meters := s.meters
	s.metersLock.Unlock()
	for _, m := range meters {
		m.IncrementCount(metric)
	}
}

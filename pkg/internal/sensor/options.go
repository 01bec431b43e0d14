// Package sensor provides options for configuring Sensor components.
package sensor

import (
	"github.com/spectralsuite/peaks/pkg/internal/types"
)

// WithLogger creates an option to add a logger to a Sensor.
func WithLogger(logger ...types.Logger) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.ConnectLogger(logger...)
	}
}

// WithMeter creates an option to attach a meter to a Sensor.
func WithMeter(meter ...types.Meter) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.ConnectMeter(meter...)
	}
}

// WithOnTraceRegisteredFunc creates an option to register a callback for the
// OnTraceRegistered event.
func WithOnTraceRegisteredFunc(callback ...func(c types.ComponentMetadata, trace types.Trace)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnTraceRegistered(callback...)
	}
}

// WithOnTraceRemovedFunc creates an option to register a callback for the OnTraceRemoved
// event.
func WithOnTraceRemovedFunc(callback ...func(c types.ComponentMetadata, id int)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnTraceRemoved(callback...)
	}
}

// WithOnStatusChangedFunc creates an option to register a callback for the
// OnStatusChanged event.
func WithOnStatusChangedFunc(callback ...func(c types.ComponentMetadata, status string)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnStatusChanged(callback...)
	}
}

// WithOnToolRunStartFunc creates an option to register a callback for the OnToolRunStart
// event.
func WithOnToolRunStartFunc(callback ...func(c types.ComponentMetadata, name string)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnToolRunStart(callback...)
	}
}

// WithOnToolRunCompleteFunc creates an option to register a callback for the
// OnToolRunComplete event.
func WithOnToolRunCompleteFunc(callback ...func(c types.ComponentMetadata, name string)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnToolRunComplete(callback...)
	}
}

// WithOnToolRunErrorFunc creates an option to register a callback for the OnToolRunError
// event.
func WithOnToolRunErrorFunc(callback ...func(c types.ComponentMetadata, name string, err error)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnToolRunError(callback...)
	}
}

// WithOnPeakDetectionWarningFunc creates an option to register a callback for the
// OnPeakDetectionWarning event.
func WithOnPeakDetectionWarningFunc(callback ...func(c types.ComponentMetadata, found int, minimum int)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnPeakDetectionWarning(callback...)
	}
}

package builder

import (
	"github.com/spectralsuite/peaks/pkg/internal/sensor"
	"github.com/spectralsuite/peaks/pkg/internal/types"
)

// Sensor is the callback fan-out for registry and tool-run telemetry.
type Sensor = types.Sensor

// NewSensor constructs a Sensor with optional configuration.
func NewSensor(options ...types.Option[types.Sensor]) Sensor {
	return sensor.NewSensor(options...)
}

// SensorWithLogger adds a logger to the Sensor.
func SensorWithLogger(logger ...types.Logger) types.Option[types.Sensor] {
	return sensor.WithLogger(logger...)
}

// SensorWithMeter attaches a meter to the Sensor.
func SensorWithMeter(meter ...types.Meter) types.Option[types.Sensor] {
	return sensor.WithMeter(meter...)
}

// SensorWithOnTraceRegisteredFunc registers a callback for the OnTraceRegistered event.
func SensorWithOnTraceRegisteredFunc(callback ...func(c ComponentMetadata, trace Trace)) types.Option[types.Sensor] {
	return sensor.WithOnTraceRegisteredFunc(callback...)
}

// SensorWithOnTraceRemovedFunc registers a callback for the OnTraceRemoved event.
func SensorWithOnTraceRemovedFunc(callback ...func(c ComponentMetadata, id int)) types.Option[types.Sensor] {
	return sensor.WithOnTraceRemovedFunc(callback...)
}

// SensorWithOnStatusChangedFunc registers a callback for the OnStatusChanged event.
func SensorWithOnStatusChangedFunc(callback ...func(c ComponentMetadata, status string)) types.Option[types.Sensor] {
	return sensor.WithOnStatusChangedFunc(callback...)
}

// SensorWithOnToolRunStartFunc registers a callback for the OnToolRunStart event.
func SensorWithOnToolRunStartFunc(callback ...func(c ComponentMetadata, name string)) types.Option[types.Sensor] {
	return sensor.WithOnToolRunStartFunc(callback...)
}

// SensorWithOnToolRunCompleteFunc registers a callback for the OnToolRunComplete event.
func SensorWithOnToolRunCompleteFunc(callback ...func(c ComponentMetadata, name string)) types.Option[types.Sensor] {
	return sensor.WithOnToolRunCompleteFunc(callback...)
}

// SensorWithOnToolRunErrorFunc registers a callback for the OnToolRunError event.
func SensorWithOnToolRunErrorFunc(callback ...func(c ComponentMetadata, name string, err error)) types.Option[types.Sensor] {
	return sensor.WithOnToolRunErrorFunc(callback...)
}

// SensorWithOnPeakDetectionWarningFunc registers a callback for the OnPeakDetectionWarning event.
func SensorWithOnPeakDetectionWarningFunc(callback ...func(c ComponentMetadata, found int, minimum int)) types.Option[types.Sensor] {
	return sensor.WithOnPeakDetectionWarningFunc(callback...)
}

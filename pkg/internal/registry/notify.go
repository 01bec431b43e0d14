package registry

import (
	"fmt"

	"github.com/spectralsuite/peaks/pkg/internal/types"
)

// ConnectLogger registers loggers for registry output.
func (r *Registry) ConnectLogger(loggers ...types.Logger) {
	r.loggersLock.Lock()
	defer r.loggersLock.Unlock()
	for _, logger := range loggers {
		if logger != nil {
			r.loggers = append(r.loggers, logger)
		}
	}
}

// ConnectSensor attaches sensors notified on registration and removal events.
func (r *Registry) ConnectSensor(sensors ...types.Sensor) {
	r.sensorLock.Lock()
	defer r.sensorLock.Unlock()
	for _, s := range sensors {
		if s != nil {
			r.sensors = append(r.sensors, s)
		}
	}
}

func (r *Registry) hasLoggers() bool {
	r.loggersLock.Lock()
	defer r.loggersLock.Unlock()
	return len(r.loggers) > 0
}

func (r *Registry) hasSensors() bool {
	r.sensorLock.Lock()
	defer r.sensorLock.Unlock()
	return len(r.sensors) > 0
}

// notifyLoggers formats the message and sends it to all attached loggers.
func (r *Registry) notifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	if !r.hasLoggers() {
		return
	}
	msg := fmt.Sprintf(format, args...)
	r.loggersLock.Lock()
	defer r.loggersLock.Unlock()
	for _, logger := range r.loggers {
		if logger == nil {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg)
		case types.InfoLevel:
			logger.Info(msg)
		case types.WarnLevel:
			logger.Warn(msg)
		case types.ErrorLevel:
			logger.Error(msg)
		case types.DPanicLevel:
			logger.DPanic(msg)
		case types.PanicLevel:
			logger.Panic(msg)
		case types.FatalLevel:
			logger.Fatal(msg)
		}
	}
}

func (r *Registry) notifyTraceRegistered(trace types.Trace) {
	if !r.hasSensors() {
		return
	}
	for _, s := range r.sensors {
		s.InvokeOnTraceRegistered(r.componentMetadata, trace)
	}
}

func (r *Registry) notifyTraceRemoved(id int) {
	if !r.hasSensors() {
		return
	}
	for _, s := range r.sensors {
		s.InvokeOnTraceRemoved(r.componentMetadata, id)
	}
}

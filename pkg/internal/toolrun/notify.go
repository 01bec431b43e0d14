package toolrun

import (
	"fmt"

	"github.com/spectralsuite/peaks/pkg/internal/types"
)

// ConnectLogger registers loggers for run output.
func (r *Run) ConnectLogger(loggers ...types.Logger) {
	r.loggersLock.Lock()
	defer r.loggersLock.Unlock()
	for _, logger := range loggers {
		if logger != nil {
			r.loggers = append(r.loggers, logger)
		}
	}
}

// ConnectSensor attaches sensors notified across the run lifecycle.
func (r *Run) ConnectSensor(sensors ...types.Sensor) {
	r.sensorLock.Lock()
	defer r.sensorLock.Unlock()
	for _, s := range sensors {
		if s != nil {
			r.sensors = append(r.sensors, s)
		}
	}
}

func (r *Run) hasLoggers() bool {
	r.loggersLock.Lock()
	defer r.loggersLock.Unlock()
	return len(r.loggers) > 0
}

func (r *Run) hasSensors() bool {
	r.sensorLock.Lock()
	defer r.sensorLock.Unlock()
	return len(r.sensors) > 0
}

// notifyLoggers formats the message and sends it to all attached loggers.
func (r *Run) notifyLoggers(level types.LogLevel, format string, args ...interface{}) {
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

func (r *Run) notifyRunStart() {
	r.notifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: Launch, run: %s => Run started", r.componentMetadata.ID, r.name)
	if !r.hasSensors() {
		return
	}
	for _, s := range r.sensors {
		s.InvokeOnToolRunStart(r.componentMetadata, r.name)
	}
}

func (r *Run) notifyRunComplete() {
	r.notifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: Complete, run: %s => Run completed", r.componentMetadata.ID, r.name)
	if !r.hasSensors() {
		return
	}
	for _, s := range r.sensors {
		s.InvokeOnToolRunComplete(r.componentMetadata, r.name)
	}
}

func (r *Run) notifyRunError(err error) {
	r.notifyLoggers(types.ErrorLevel, "component: %s, level: ERROR, result: FAILURE, event: Complete, run: %s, error: %v => Run failed", r.componentMetadata.ID, r.name, err)
	if !r.hasSensors() {
		return
	}
	for _, s := range r.sensors {
		s.InvokeOnToolRunError(r.componentMetadata, r.name, err)
	}
}

func (r *Run) notifyStatusChanged(text string) {
	if !r.hasSensors() {
		return
	}
	for _, s := range r.sensors {
		s.InvokeOnStatusChanged(r.componentMetadata, text)
	}
}

func (r *Run) notifyDetectionShortfall(found, minimum int) {
	r.notifyLoggers(types.WarnLevel, "component: %s, level: WARN, result: SUCCESS, event: Detect, run: %s, found: %d, minimum: %d => Fewer peaks than requested", r.componentMetadata.ID, r.name, found, minimum)
	if !r.hasSensors() {
		return
	}
	for _, s := range r.sensors {
		s.InvokeOnPeakDetectionWarning(r.componentMetadata, found, minimum)
	}
}

package meter

import (
	"fmt"

	"github.com/spectralsuite/peaks/pkg/internal/types"
)

// ConnectLogger registers loggers for meter output.
func (m *Meter) ConnectLogger(loggers ...types.Logger) {
	m.loggersLock.Lock()
	defer m.loggersLock.Unlock()
	for _, logger := range loggers {
		if logger != nil {
			m.loggers = append(m.loggers, logger)
		}
	}
}

// NotifyLoggers formats the message and sends it to all attached loggers.
func (m *Meter) NotifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	m.loggersLock.Lock()
	defer m.loggersLock.Unlock()
	for _, logger := range m.loggers {
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

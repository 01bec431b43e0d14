package sensor

import (
	"fmt"

	"github.com/spectralsuite/peaks/pkg/internal/types"
)

// NotifyLoggers formats the message and sends it to all attached loggers.
func (s *Sensor) NotifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	if s.loggers != nil {
		msg := fmt.Sprintf(format, args...)
		for _, logger := range s.loggers {
			if logger == nil {
				continue
			}
			s.loggersLock.Lock()
			type levelChecker interface {
				IsLevelEnabled(types.LogLevel) bool
			}
			if lc, ok := logger.(levelChecker); ok && !lc.IsLevelEnabled(level) {
				s.loggersLock.Unlock()
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
			s.loggersLock.Unlock()
		}
	}
}

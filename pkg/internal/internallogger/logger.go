package internallogger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spectralsuite/peaks/pkg/logschema"
)

type LoggerOption func(*zap.Config, *zapcore.Level, *int)

// ZapLoggerAdapter exposes a zap logger behind the types.Logger interface so core
// components can fan out key/value events without binding to zap directly.
type ZapLoggerAdapter struct {
	logger       *zap.Logger
	level        zapcore.Level
	callerDepth  int
	mu           sync.Mutex
	sinks        map[string]zapcore.Core
	combinedCore zapcore.Core
}

// NewLogger initializes a new ZapLoggerAdapter with configurable options.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	config := zap.NewProductionConfig()
	var level zapcore.Level
	var callerDepth int = 3 // Default caller depth

	// Apply each provided option to the configuration
	for _, option := range options {
		option(&config, &level, &callerDepth)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = logschema.FieldTimestamp
	encoderConfig.LevelKey = logschema.FieldLevel
	encoderConfig.MessageKey = logschema.FieldMessage
	encoderConfig.CallerKey = logschema.FieldCaller
	encoderConfig.StacktraceKey = logschema.FieldStack

	// Ensure at least one core is created to prevent nil logger
	defaultCore := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(zapcore.InfoLevel))
	cores := []zapcore.Core{defaultCore}

	logger := zap.New(
		zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddCallerSkip(callerDepth),
		zap.Fields(zap.String(logschema.FieldSchema, logschema.SchemaID)),
	)

	return &ZapLoggerAdapter{
		logger:       logger,
		level:        level,
		callerDepth:  callerDepth,
		sinks:        make(map[string]zapcore.Core),
		combinedCore: zapcore.NewTee(cores...),
	}
}

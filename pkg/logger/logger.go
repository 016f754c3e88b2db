// Package logger provides structured logging for txflow.
// It configures zap loggers for production and console use and turns
// transaction lifecycle events into log lines.
package logger

import (
	"github.com/Layr-Labs/txflow-go/pkg/orchestrator"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerConfig holds the configuration for logger creation.
type LoggerConfig struct {
	// Debug enables debug-level logging when true, otherwise uses info level
	Debug bool
	// Console switches from JSON to human readable console encoding
	Console bool
}

// NewLogger creates a new structured logger with the specified configuration.
// The logger uses the production config with ISO8601 timestamps. Debug mode
// lowers the level and Console switches the encoding.
//
// Parameters:
//   - cfg: The logger configuration
//   - options: Additional zap options to apply to the logger
//
// Returns:
//   - *zap.Logger: A configured zap logger instance
//   - error: An error if the logger cannot be created
func NewLogger(cfg *LoggerConfig, options ...zap.Option) (*zap.Logger, error) {
	mergedOptions := append([]zap.Option{zap.WithCaller(true)}, options...)

	c := zap.NewProductionConfig()
	c.EncoderConfig = zap.NewProductionEncoderConfig()
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg.Console {
		c.Encoding = "console"
		c.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if cfg.Debug {
		c.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		c.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	return c.Build(mergedOptions...)
}

// EventReporter logs every lifecycle event. Failure tags log at warn,
// everything else at info. fields are attached to each line.
func EventReporter(l *zap.Logger, fields ...zap.Field) orchestrator.Reporter {
	l = l.With(fields...)
	return func(event orchestrator.Event) {
		eventFields := []zap.Field{zap.String("event", string(event.Tag))}
		if event.HasTxHash() {
			eventFields = append(eventFields, zap.String("txHash", event.TxHash.Hex()))
		}
		switch event.Tag {
		case orchestrator.EventRejected, orchestrator.EventBadTx, orchestrator.EventFailed:
			l.Warn("transaction lifecycle event", eventFields...)
		default:
			l.Info("transaction lifecycle event", eventFields...)
		}
	}
}

// Package logging builds the application's zap logger.
//
// The TUI owns the terminal, so log output always goes to a rotated file
// rather than stdout or stderr.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultFile is the log file used when none is configured
const DefaultFile = "pokesearch.log"

// Options configures the file logger
type Options struct {
	Path    string
	Verbose bool
}

// New creates a JSON logger writing to a size-rotated file. The returned
// closer releases the file once the logger is no longer used.
func New(opts Options) (*zap.Logger, io.Closer) {
	path := opts.Path
	if path == "" {
		path = DefaultFile
	}

	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	}

	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	return NewWithWriter(rotator, level), rotator
}

// NewWithWriter creates a JSON logger writing to w at the given level
func NewWithWriter(w io.Writer, level zapcore.Level) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core, zap.AddCaller())
}

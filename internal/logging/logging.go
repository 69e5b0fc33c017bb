// Package logging builds the application logger.
package logging

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Sink forwards formatted log lines to a consumer attached at runtime, such
// as the in-app log pane. Lines written before Attach are dropped.
type Sink struct {
	mu sync.RWMutex
	fn func(string)
}

// Attach sets the consumer; nil detaches.
func (s *Sink) Attach(fn func(string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fn = fn
}

// Write implements zapcore.WriteSyncer.
func (s *Sink) Write(p []byte) (int, error) {
	s.mu.RLock()
	fn := s.fn
	s.mu.RUnlock()
	if fn != nil {
		for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
			fn(line)
		}
	}
	return len(p), nil
}

// Sync implements zapcore.WriteSyncer.
func (s *Sink) Sync() error { return nil }

// New returns a console logger on stderr at info level, or debug level when
// verbose is set. When sink is non-nil every entry is also written to it.
func New(verbose bool, sink *Sink) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.Sampling = nil
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	var opts []zap.Option
	if sink != nil {
		paneConfig := config.EncoderConfig
		paneConfig.TimeKey = ""
		paneConfig.CallerKey = ""
		paneConfig.StacktraceKey = ""
		paneCore := zapcore.NewCore(zapcore.NewConsoleEncoder(paneConfig), sink, config.Level)
		opts = append(opts, zap.WrapCore(func(c zapcore.Core) zapcore.Core {
			return zapcore.NewTee(c, paneCore)
		}))
	}

	logger, err := config.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("logging: failed to initialize logger: %w", err)
	}
	return logger, nil
}

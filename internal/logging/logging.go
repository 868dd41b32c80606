// Package logging builds the zap loggers used by the command-line tools.
// Library packages never log.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config contains logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level" json:"level"`

	// Format is the output format (console, json).
	Format string `yaml:"format" json:"format"`

	// Output is the destination: stdout, stderr, or a file path.
	Output string `yaml:"output" json:"output"`

	// Development enables caller stack traces on errors.
	Development bool `yaml:"development" json:"development"`
}

// DefaultConfig returns console logging at info level to stderr.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: "stderr",
	}
}

// Validate checks level and format names.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if c.Format != "console" && c.Format != "json" {
		return fmt.Errorf("logging: unknown format %q", c.Format)
	}
	return nil
}

// New builds a logger writing to cfg.Output. The returned close func
// releases a file output and must be called once logging is done.
func New(cfg Config) (*zap.Logger, func() error, error) {
	switch cfg.Output {
	case "", "stderr":
		log, err := build(cfg, zapcore.Lock(os.Stderr))
		return log, nop, err
	case "stdout":
		log, err := build(cfg, zapcore.Lock(os.Stdout))
		return log, nop, err
	}

	file, err := os.OpenFile(cfg.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}
	log, err := build(cfg, zapcore.Lock(file))
	if err != nil {
		file.Close()
		return nil, nil, err
	}

	return log, file.Close, nil
}

func nop() error { return nil }

// NewWriter builds a logger writing to w, ignoring cfg.Output.
func NewWriter(cfg Config, w io.Writer) (*zap.Logger, error) {
	return build(cfg, zapcore.AddSync(w))
}

func build(cfg Config, ws zapcore.WriteSyncer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, ws, level)
	if cfg.Development {
		return zap.New(core, zap.Development(), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
	}

	return zap.New(core), nil
}

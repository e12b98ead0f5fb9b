package common

import (
	"path"

	"github.com/mattn/go-colorable"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig enables an optional rolling json log file next to the console.
type LogConfig struct {
	Level      string `yaml:"level"`
	Directory  string `yaml:"directory"`
	Filename   string `yaml:"filename"`
	MaxSize    int    `yaml:"max_size"` // megabytes
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"` // days
}

func (c LogConfig) FileEnabled() bool {
	return c.Filename != ""
}

// ZapLevel parses Level, defaulting to info.
func (c LogConfig) ZapLevel() zapcore.Level {
	level := zap.InfoLevel
	if c.Level != "" {
		if err := level.UnmarshalText([]byte(c.Level)); err != nil {
			return zap.InfoLevel
		}
	}
	return level
}

func encoderConfig() zapcore.EncoderConfig {
	pe := zap.NewProductionEncoderConfig()
	pe.EncodeTime = zapcore.RFC3339TimeEncoder
	return pe
}

func ConfigureZap(level zapcore.Level) *zap.Logger {
	consoleEncoder := zapcore.NewConsoleEncoder(encoderConfig())
	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(colorable.NewColorableStdout()), level)
	return zap.New(core)
}

// ConfigureZapWithFile tees the console logger into a rolling file when one
// is configured. The returned func flushes and closes the file.
func ConfigureZapWithFile(cfg LogConfig) (*zap.Logger, func()) {
	level := cfg.ZapLevel()
	if !cfg.FileEnabled() {
		logger := ConfigureZap(level)
		return logger, func() { logger.Sync() }
	}

	roller := &lumberjack.Logger{
		Filename:   path.Join(cfg.Directory, cfg.Filename),
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
	}
	pe := encoderConfig()
	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(pe), zapcore.AddSync(roller), level),
		zapcore.NewCore(zapcore.NewConsoleEncoder(pe), zapcore.AddSync(colorable.NewColorableStdout()), level),
	)
	logger := zap.New(core)
	return logger, func() {
		logger.Sync()
		roller.Close()
	}
}

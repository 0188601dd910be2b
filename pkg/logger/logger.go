package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	globalLogger *zap.Logger
	once         sync.Once
)

type Options struct {
	Level string
	// FilePath, when set, adds a rotating JSON log file alongside stdout.
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
}

// Init initializes the global logger
func Init(opts Options) error {
	var err error
	once.Do(func() {
		globalLogger, err = newLogger(opts)
	})
	return err
}

// Get returns the global logger instance
func Get() *zap.Logger {
	if globalLogger == nil {
		_ = Init(Options{Level: getDefaultLevel()})
	}
	return globalLogger
}

// Sync flushes any buffered log entries
func Sync() {
	if globalLogger != nil {
		_ = globalLogger.Sync()
	}
}

// New creates a standalone logger that does not touch the global one.
func New(opts Options) (*zap.Logger, error) {
	return newLogger(opts)
}

func newLogger(opts Options) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(opts.Level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.CallerKey = "caller"

	if opts.FilePath == "" {
		return config.Build()
	}

	rotator := &lumberjack.Logger{
		Filename:   opts.FilePath,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     30,
		Compress:   true,
	}

	encoder := zapcore.NewJSONEncoder(config.EncoderConfig)
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.AddSync(rotator), config.Level),
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), config.Level),
	)

	return zap.New(core, zap.AddCaller()), nil
}

func getDefaultLevel() string {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		return level
	}
	return "info"
}

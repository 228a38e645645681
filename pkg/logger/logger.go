package logger

import (
	"github.com/NedohAR/marketplace-platform/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin wrapper over zap's sugared logger. The zero value
// is usable and discards everything, which keeps test setup simple.
type Logger struct {
	sugar *zap.SugaredLogger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	level := zapcore.InfoLevel
	if cfg.LoggerMode.Level != "" {
		if err := level.Set(cfg.LoggerMode.Level); err != nil {
			return nil, err
		}
	}

	var zapCfg zap.Config
	if cfg.LoggerMode.Prod {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	z, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &Logger{sugar: z.Sugar()}, nil
}

func (l *Logger) Debug(msg string, keysAndValues ...any) {
	if l.sugar != nil {
		l.sugar.Debugw(msg, keysAndValues...)
	}
}

func (l *Logger) Info(msg string, keysAndValues ...any) {
	if l.sugar != nil {
		l.sugar.Infow(msg, keysAndValues...)
	}
}

func (l *Logger) Infof(format string, args ...any) {
	if l.sugar != nil {
		l.sugar.Infof(format, args...)
	}
}

func (l *Logger) Warn(msg string, keysAndValues ...any) {
	if l.sugar != nil {
		l.sugar.Warnw(msg, keysAndValues...)
	}
}

func (l *Logger) Error(msg string, keysAndValues ...any) {
	if l.sugar != nil {
		l.sugar.Errorw(msg, keysAndValues...)
	}
}

func (l *Logger) Errorf(format string, args ...any) {
	if l.sugar != nil {
		l.sugar.Errorf(format, args...)
	}
}

func (l *Logger) Sync() {
	if l.sugar != nil {
		_ = l.sugar.Sync()
	}
}

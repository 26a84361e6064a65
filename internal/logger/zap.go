// Package logger provides a structured logger using Zap with Sentry integration.
package logger

import (
	"math"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kenobicjj/youtubeanalystAPI/internal/config"
)

const sentryFlushTimeout = 2 * time.Second

// Logger wraps zap.Logger with Sentry integration.
type Logger struct {
	*zap.Logger
	sentryEnabled bool
}

// New creates a Logger for the service called name. Entries at ERROR and
// above are also sent to Sentry when it is enabled.
func New(name string, cfg config.LoggerConfig, sentryCfg config.SentryConfig) (*Logger, error) {
	sentryEnabled := sentryCfg.Enabled && sentryCfg.DSN != ""
	if sentryEnabled {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              sentryCfg.DSN,
			Environment:      sentryCfg.Environment,
			SampleRate:       sentryCfg.SampleRate,
			ServerName:       name,
			AttachStacktrace: true,
		})
		if err != nil {
			return nil, err
		}
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	output, err := openOutput(cfg.Output)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(newEncoder(cfg.Format), output, level)
	if sentryEnabled {
		core = zapcore.NewTee(core, newSentryCore(level))
	}

	zapLogger := zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Fields(zap.String("service", name)),
	)

	return &Logger{
		Logger:        zapLogger,
		sentryEnabled: sentryEnabled,
	}, nil
}

func newEncoder(format string) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	if format == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

		return zapcore.NewConsoleEncoder(encoderConfig)
	}

	return zapcore.NewJSONEncoder(encoderConfig)
}

func openOutput(output string) (zapcore.WriteSyncer, error) {
	switch output {
	case "stdout", "":
		return zapcore.AddSync(os.Stdout), nil
	case "stderr":
		return zapcore.AddSync(os.Stderr), nil
	default:
		file, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return nil, err
		}

		return zapcore.AddSync(file), nil
	}
}

// Sync flushes any buffered log entries and Sentry events.
func (l *Logger) Sync() error {
	if l.sentryEnabled {
		sentry.Flush(sentryFlushTimeout)
	}

	return l.Logger.Sync()
}

// sentryCore implements zapcore.Core to send errors to Sentry.
type sentryCore struct {
	zapcore.LevelEnabler
	fields []zapcore.Field
}

func newSentryCore(level zapcore.Level) *sentryCore {
	return &sentryCore{LevelEnabler: level}
}

func (c *sentryCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)

	return &sentryCore{
		LevelEnabler: c.LevelEnabler,
		fields:       merged,
	}
}

func (c *sentryCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if entry.Level >= zapcore.ErrorLevel {
		return checked.AddCore(entry, c)
	}

	return checked
}

func (c *sentryCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	event := sentry.NewEvent()
	event.Level = zapLevelToSentry(entry.Level)
	event.Message = entry.Message
	event.Logger = entry.LoggerName
	event.Timestamp = entry.Time

	all := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	all = append(all, c.fields...)
	all = append(all, fields...)
	event.Extra = fieldsToMap(all)

	if videoID, ok := event.Extra["video_id"].(string); ok {
		event.Tags = map[string]string{"video_id": videoID}
	}

	sentry.CaptureEvent(event)

	return nil
}

func (c *sentryCore) Sync() error {
	sentry.Flush(sentryFlushTimeout)

	return nil
}

// zapLevelToSentry converts zap level to Sentry level.
func zapLevelToSentry(level zapcore.Level) sentry.Level {
	switch level {
	case zapcore.DebugLevel:
		return sentry.LevelDebug
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return sentry.LevelFatal
	default:
		return sentry.LevelInfo
	}
}

// fieldsToMap converts zap fields to a map for Sentry extra data.
func fieldsToMap(fields []zapcore.Field) map[string]any {
	m := make(map[string]any, len(fields))
	for _, f := range fields {
		switch f.Type {
		case zapcore.StringType:
			m[f.Key] = f.String
		case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type,
			zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type:
			m[f.Key] = f.Integer
		case zapcore.Float64Type:
			m[f.Key] = math.Float64frombits(uint64(f.Integer))
		case zapcore.Float32Type:
			m[f.Key] = float64(math.Float32frombits(uint32(f.Integer)))
		case zapcore.BoolType:
			m[f.Key] = f.Integer == 1
		case zapcore.DurationType:
			m[f.Key] = time.Duration(f.Integer).String()
		case zapcore.ErrorType:
			if err, ok := f.Interface.(error); ok {
				m[f.Key] = err.Error()
			}
		default:
			if f.Interface != nil {
				m[f.Key] = f.Interface
			}
		}
	}

	return m
}

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	config "github.com/mwantia/gauchogo/internal/config/server"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerService interface {
	Debug(msg string, args ...any)

	Info(msg string, args ...any)

	Warn(msg string, args ...any)

	Error(msg string, args ...any)

	Fatal(msg string, args ...any)

	Named(name string) LoggerService
}

type LoggerServiceImpl struct {
	LoggerService

	cfg    config.LogServerConfig
	name   string
	level  LogLevel
	writer io.Writer

	root   *slog.Logger
	logger *slog.Logger
}

func NewLoggerService(name string, cfg config.LogServerConfig) LoggerService {
	impl := &LoggerServiceImpl{
		cfg:   cfg,
		name:  name,
		level: Parse(cfg.Level),
	}

	impl.setupWriter()
	impl.setupHandler()
	return impl
}

// NewLoggerServiceWithWriter bypasses terminal and file setup and writes
// uncoloured text to w.
func NewLoggerServiceWithWriter(name string, cfg config.LogServerConfig, w io.Writer) LoggerService {
	cfg.NoColor = true
	impl := &LoggerServiceImpl{
		cfg:    cfg,
		name:   name,
		level:  Parse(cfg.Level),
		writer: w,
	}

	impl.setupHandler()
	return impl
}

func (impl *LoggerServiceImpl) setupWriter() {
	var writers []io.Writer

	if !impl.cfg.NoTerminal {
		writers = append(writers, os.Stdout)
	}

	if impl.cfg.File != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   impl.cfg.File,
			MaxSize:    impl.cfg.Rotation.MaxSize,
			MaxBackups: impl.cfg.Rotation.MaxBackups,
			MaxAge:     impl.cfg.Rotation.MaxAge,
			Compress:   impl.cfg.Rotation.Compress,
		}
		writers = append(writers, fileWriter)
	}

	if len(writers) == 0 {
		writers = append(writers, os.Stdout)
	}

	impl.writer = io.MultiWriter(writers...)
}

func (impl *LoggerServiceImpl) setupHandler() {
	var handler slog.Handler

	switch {
	case impl.cfg.JSON:
		handler = slog.NewJSONHandler(impl.writer, &slog.HandlerOptions{
			AddSource:   impl.cfg.AddSource,
			Level:       impl.level.Slog(),
			ReplaceAttr: impl.replaceTime,
		})
	case !impl.cfg.NoTerminal && !impl.cfg.NoColor:
		handler = tint.NewHandler(impl.writer, &tint.Options{
			AddSource:  impl.cfg.AddSource,
			Level:      impl.level.Slog(),
			TimeFormat: impl.cfg.TimeFormat,
		})
	default:
		handler = slog.NewTextHandler(impl.writer, &slog.HandlerOptions{
			AddSource:   impl.cfg.AddSource,
			Level:       impl.level.Slog(),
			ReplaceAttr: impl.replaceTime,
		})
	}

	impl.root = slog.New(handler)
	impl.logger = impl.root
	if impl.name != "" {
		impl.logger = impl.root.With("service", impl.name)
	}
}

func (impl *LoggerServiceImpl) replaceTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey && impl.cfg.TimeFormat != "" {
		return slog.String(slog.TimeKey, a.Value.Time().Format(impl.cfg.TimeFormat))
	}
	return a
}

func (impl *LoggerServiceImpl) log(level LogLevel, msg string, args ...any) {
	if level < impl.level {
		return
	}

	formattedMsg := msg
	if len(args) > 0 {
		formattedMsg = fmt.Sprintf(msg, args...)
	}

	impl.logger.Log(context.Background(), level.Slog(), formattedMsg)

	if level == Fatal {
		os.Exit(1)
	}
}

func (impl *LoggerServiceImpl) Debug(msg string, args ...any) {
	impl.log(Debug, msg, args...)
}

func (impl *LoggerServiceImpl) Info(msg string, args ...any) {
	impl.log(Info, msg, args...)
}

func (impl *LoggerServiceImpl) Warn(msg string, args ...any) {
	impl.log(Warn, msg, args...)
}

func (impl *LoggerServiceImpl) Error(msg string, args ...any) {
	impl.log(Error, msg, args...)
}

func (impl *LoggerServiceImpl) Fatal(msg string, args ...any) {
	impl.log(Fatal, msg, args...)
}

func (impl *LoggerServiceImpl) Named(name string) LoggerService {
	full := name
	if impl.name != "" {
		full = fmt.Sprintf("%s/%s", impl.name, name)
	}

	return &LoggerServiceImpl{
		cfg:    impl.cfg,
		name:   full,
		level:  impl.level,
		writer: impl.writer, // Share the same writer
		root:   impl.root,
		logger: impl.root.With("service", full),
	}
}

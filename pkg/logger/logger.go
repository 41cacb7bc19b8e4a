package logger

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ctxKey struct{}

var once sync.Once

var logger *zap.SugaredLogger

// Options configures the sinks of the global logger beyond stdout
type Options struct {
	// File is a log file rotated by size. Empty disables file logging.
	File       string
	MaxSizeMB  int
	MaxBackups int
	// Capture receives every line at debug level regardless of LOG_LEVEL
	Capture *Capture
}

// Get initializes a zap.SugaredLogger instance if it has not been initialized
// already and returns the same instance for subsequent calls.
func Get() *zap.SugaredLogger {
	once.Do(func() {
		logger = New(Options{})
	})

	return logger
}

// Configure replaces the global logger with one writing to the configured sinks
func Configure(opts Options) *zap.SugaredLogger {
	l := New(opts)
	once.Do(func() {})
	logger = l
	return l
}

// New builds a logger writing to stdout and the sinks in opts
func New(opts Options) *zap.SugaredLogger {
	level := zap.InfoLevel
	levelEnv := os.Getenv("LOG_LEVEL")
	if levelEnv != "" {
		levelFromEnv, err := zapcore.ParseLevel(levelEnv)
		if err != nil {
			log.Println(
				fmt.Errorf("invalid level, defaulting to INFO: %w", err),
			)
		} else {
			level = levelFromEnv
		}
	}

	logLevel := zap.NewAtomicLevelAt(level)

	productionCfg := zap.NewProductionEncoderConfig()
	productionCfg.TimeKey = "timestamp"
	productionCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	developmentCfg := zap.NewDevelopmentEncoderConfig()
	if isTerminal(os.Stdout) {
		developmentCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	encoder := zapcore.NewConsoleEncoder(developmentCfg)
	isJSON := os.Getenv("JSON_LOG")
	if isJSON != "" {
		encoder = zapcore.NewJSONEncoder(productionCfg)
	}

	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), logLevel)}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			log.Println(fmt.Errorf("failed to create log directory, file logging disabled: %w", err))
		} else {
			file := zapcore.AddSync(&lumberjack.Logger{
				Filename:   opts.File,
				MaxSize:    opts.MaxSizeMB,
				MaxBackups: opts.MaxBackups,
			})
			cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(productionCfg), file, logLevel))
		}
	}

	if opts.Capture != nil {
		plainCfg := zap.NewDevelopmentEncoderConfig()
		plainCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(plainCfg), opts.Capture, zap.DebugLevel))
	}

	core := zapcore.NewTee(cores...)

	buildInfo, ok := debug.ReadBuildInfo()
	if ok {
		var fields []zapcore.Field
		fields = append(fields, zap.String("go_version", buildInfo.GoVersion))
		for _, v := range buildInfo.Settings {
			if v.Key == "vcs.revision" && len(v.Value) >= 7 {
				fields = append(fields, zap.String("git_revision", v.Value[0:7]))
				break
			}
		}

		core = core.With(fields)
	}

	return zap.New(core).Sugar()
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// FromCtx returns the Logger associated with the ctx. If no logger
// is associated, the default logger is returned, unless it is nil
// in which case a disabled logger is returned.
func FromCtx(ctx context.Context, with ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger)
	if !ok {
		l = Get()
	}

	if len(with) == 0 {
		return l
	}
	return l.With(with...)
}

// WithCtx returns a copy of ctx with the Logger attached.
func WithCtx(ctx context.Context, l *zap.SugaredLogger) context.Context {
	if lp, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok {
		if lp == l {
			// Do not store same logger.
			return ctx
		}
	}

	return context.WithValue(ctx, ctxKey{}, l)
}

// Capture keeps log output in memory so it can be written next to a download that failed to sort
type Capture struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (c *Capture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

func (c *Capture) Sync() error {
	return nil
}

func (c *Capture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// WriteFile writes the captured output to path, replacing any earlier log
func (c *Capture) WriteFile(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.WriteFile(path, c.buf.Bytes(), 0o644)
}

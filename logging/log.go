package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ANSI Color Codes
const (
	Reset   = "\033[0m"
	Green   = "\033[32m"
	Magenta = "\033[35m"
)

type LogLevel int

const (
	LogLevelError   LogLevel = 0
	LogLevelWarning LogLevel = 1
	LogLevelInfo    LogLevel = 2
	LogLevelDebug   LogLevel = 3
)

var (
	mu      sync.Mutex
	level   = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	console = io.Writer(os.Stdout)
	logger  = newLogger(console, nil)
	sugar   = logger.Sugar()
	// a \r progress line is waiting for its newline
	progress bool
)

func newLogger(out io.Writer, file io.Writer) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05.000000")
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(out), level),
	}
	if file != nil {
		fileCfg := encCfg
		fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(fileCfg), zapcore.AddSync(file), level))
	}
	return zap.New(zapcore.NewTee(cores...))
}

// ParseLogLevel maps the names accepted on the command line to a LogLevel.
func ParseLogLevel(name string) (LogLevel, error) {
	switch name {
	case "error":
		return LogLevelError, nil
	case "warn", "warning":
		return LogLevelWarning, nil
	case "info", "":
		return LogLevelInfo, nil
	case "debug":
		return LogLevelDebug, nil
	}
	return LogLevelInfo, fmt.Errorf("unknown log level %q", name)
}

func SetLogLevel(newLevel LogLevel) {
	switch {
	case newLevel >= LogLevelDebug:
		level.SetLevel(zapcore.DebugLevel)
	case newLevel == LogLevelInfo:
		level.SetLevel(zapcore.InfoLevel)
	case newLevel == LogLevelWarning:
		level.SetLevel(zapcore.WarnLevel)
	default:
		level.SetLevel(zapcore.ErrorLevel)
	}
}

// SetLogFile mirrors everything written to the console into logFile.
func SetLogFile(logFile io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(console, logFile)
	sugar = logger.Sugar()
}

// Logger returns the underlying zap logger.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

func Sync() {
	_ = Logger().Sync()
}

func get() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()
	if progress {
		fmt.Fprintln(console)
		progress = false
	}
	return sugar
}

// Progressf rewrites the current console line. The next regular log line
// starts on a fresh line.
func Progressf(format string, args ...interface{}) {
	if !level.Enabled(zapcore.InfoLevel) {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(console, "\r"+format, args...)
	progress = true
}

func Fatalf(format string, args ...interface{}) {
	get().Fatalf(format, args...)
}

func Debugf(format string, args ...interface{}) {
	get().Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	get().Infof(format, args...)
}

// Successf prints in green, for successful events like finding the genesis hash.
func Successf(format string, args ...interface{}) {
	get().Infof(Green+format+Reset, args...)
}

// Noticef prints in magenta, for the block summary.
func Noticef(format string, args ...interface{}) {
	get().Infof(Magenta+format+Reset, args...)
}

func Warnf(format string, args ...interface{}) {
	get().Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	get().Errorf(format, args...)
}

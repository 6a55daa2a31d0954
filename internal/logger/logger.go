package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/jitsuna/internal/constants"
)

// Logger is the process-wide logger. It stays nil until Init, and the package
// helpers drop entries while it is nil so store code can log from tests.
var Logger *log.Logger

// Config selects where entries go and which fields every entry carries.
type Config struct {
	Debug bool
	// Dir is the directory that receives logs/jitsuna.log. Empty disables the
	// file sink.
	Dir string
	// Backend tags every entry, e.g. "sqlite" or "postgres".
	Backend string
	// Stderr receives entries in debug mode. Defaults to os.Stderr.
	Stderr io.Writer
}

// LogFile is the rotating log file path for a given directory.
func LogFile(dir string) string {
	return filepath.Join(dir, "logs", constants.AppName+".log")
}

func Init(cfg Config) error {
	var sinks []io.Writer

	if cfg.Dir != "" {
		path := LogFile(cfg.Dir)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		sinks = append(sinks, &lumberjack.Logger{
			Filename:   path,
			MaxSize:    5, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		})
	}

	level := log.InfoLevel
	if cfg.Debug {
		level = log.DebugLevel
		stderr := cfg.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		sinks = append(sinks, stderr)
	}

	var out io.Writer = io.Discard
	if len(sinks) > 0 {
		out = io.MultiWriter(sinks...)
	}

	l := log.NewWithOptions(out, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
	})
	if cfg.Backend != "" {
		l = l.With("backend", cfg.Backend)
	}
	Logger = l
	return nil
}

func Debug(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}

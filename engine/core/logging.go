package core

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var once sync.Once

type logger struct {
	*log.Logger
}

var singleton *logger

// LogOptions controls how the engine logger is built and what it emits.
type LogOptions struct {
	Level        string
	Prefix       string
	ReportCaller bool
	Output       io.Writer
}

func getLogger() *logger {
	once.Do(
		func() {
			l := log.NewWithOptions(os.Stderr, log.Options{
				ReportCaller:    false,
				ReportTimestamp: true,
				TimeFormat:      time.RFC3339,
				Prefix:          "EngineUtils 📐",
			})
			l.SetLevel(log.WarnLevel)
			singleton = &logger{l}
		})
	return singleton
}

// ConfigureLogger applies opts to the engine logger. Empty fields keep
// their current value.
func ConfigureLogger(opts LogOptions) error {
	l := getLogger()
	if opts.Level != "" {
		lvl, err := log.ParseLevel(opts.Level)
		if err != nil {
			return err
		}
		l.SetLevel(lvl)
	}
	if opts.Prefix != "" {
		l.SetPrefix(opts.Prefix)
	}
	if opts.Output != nil {
		l.SetOutput(opts.Output)
	}
	l.SetReportCaller(opts.ReportCaller)
	return nil
}

// LogLevel returns the current level name of the engine logger.
func LogLevel() string {
	return getLogger().GetLevel().String()
}

func LogDebug(msg string, args ...interface{}) {
	getLogger().Debugf(msg, args...)
}

func LogInfo(msg string, args ...interface{}) {
	getLogger().Infof(msg, args...)
}

func LogWarn(msg string, args ...interface{}) {
	getLogger().Warnf(msg, args...)
}

func LogError(msg string, args ...interface{}) {
	getLogger().Errorf(msg, args...)
}

func LogFatal(msg string, args ...interface{}) {
	getLogger().Fatalf(msg, args...)
}

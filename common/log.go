package common

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	loggerOnce sync.Once
	logger     *log.Logger
)

// Logger returns the process logger.
func Logger() *log.Logger {
	loggerOnce.Do(func() {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.TimeOnly,
			Prefix:          "spritelab",
		})
		logger.SetLevel(log.InfoLevel)
	})
	return logger
}

// SetDebug switches the process logger between info and debug level.
func SetDebug(enabled bool) {
	if enabled {
		Logger().SetLevel(log.DebugLevel)
		return
	}
	Logger().SetLevel(log.InfoLevel)
}

func LogDebug(msg string, keyvals ...any) {
	Logger().Debug(msg, keyvals...)
}

func LogInfo(msg string, keyvals ...any) {
	Logger().Info(msg, keyvals...)
}

func LogWarn(msg string, keyvals ...any) {
	Logger().Warn(msg, keyvals...)
}

func LogError(msg string, keyvals ...any) {
	Logger().Error(msg, keyvals...)
}

func LogFatal(msg string, keyvals ...any) {
	Logger().Fatal(msg, keyvals...)
}

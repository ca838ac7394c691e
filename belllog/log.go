// Package belllog wires together the subsystem loggers shared by every
// package in this module. It mirrors the subsystem-logger-registry idiom
// common to the btcsuite/lnd family: each package owns a package-level
// btclog.Logger pulled from a shared backend, and the backend writes to
// both stdout and a rotating log file.
package belllog

import (
	"io"
	"os"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"
)

// DefaultLogFilename is used when LOG_FILE_PATH is unset, matching the
// upstream service's own default.
const DefaultLogFilename = "/var/log/jito-bell/app.log"

var (
	logRotator *rotator.Rotator
	mainWriter = &logWriter{}
	backendLog = btclog.NewBackend(mainWriter)

	// subsystemLoggers is keyed by the short tag printed in each log
	// line so SetLogLevels can adjust them all from a single CLI flag.
	subsystemLoggers = make(map[string]btclog.Logger)
)

// logWriter implements io.Writer and forwards to both stdout and the log
// rotator, so a single backend can be pointed at both sinks at once.
type logWriter struct {
	rotator *rotator.Rotator
}

func (w *logWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p)
	if w.rotator != nil {
		w.rotator.Write(p)
	}
	return len(p), nil
}

// InitLogRotator initializes the log rotation system. It must be called
// before any subsystem logger writes a line that should be mirrored to
// disk. logFile is the full path to the active log file; the rotator
// creates its parent directory if missing.
func InitLogRotator(logFile string) error {
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return err
	}
	logRotator = r
	mainWriter.rotator = r
	return nil
}

// Writer exposes the active multi-destination writer, primarily so other
// ambient subsystems (e.g. a metrics endpoint) can share the same sink
// without importing btclog directly.
func Writer() io.Writer {
	if logRotator == nil {
		return os.Stdout
	}
	return &logWriter{rotator: logRotator}
}

// NewSubsystemLogger registers and returns the logger for tag, defaulting
// to Info level. Packages call this once at init time, matching the
// teacher's own per-package logger variables (ltndLog, peerLog, srvrLog).
func NewSubsystemLogger(tag string) btclog.Logger {
	logger := backendLog.Logger(tag)
	logger.SetLevel(btclog.LevelInfo)
	subsystemLoggers[tag] = logger
	return logger
}

// SetLogLevels adjusts every registered subsystem logger to level,
// supporting the --debuglevel CLI flag.
func SetLogLevels(level btclog.Level) {
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
}

// LevelFromString parses a textual level (trace/debug/info/warn/error/
// critical/off), defaulting to Info on an unrecognized string.
func LevelFromString(s string) btclog.Level {
	level, ok := btclog.LevelFromString(s)
	if !ok {
		return btclog.LevelInfo
	}
	return level
}

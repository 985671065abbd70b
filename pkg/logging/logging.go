package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pathmend/pathmend/pkg/paths"
)

// SetupLogger configures the global logger based on verbosity level.
// It sets up dual output to both console and the default log file.
func SetupLogger(verbosity int) {
	SetupLoggerWithFile(verbosity, "")
}

// SetupLoggerWithFile configures the global logger with an explicit log
// file. An empty logFile selects the default under the state directory.
func SetupLoggerWithFile(verbosity int, logFile string) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    false,
	}

	var writers []io.Writer
	writers = append(writers, consoleWriter)

	if logFile == "" {
		logFile = paths.LogFilePath()
	}
	logFileHandle, err := setupLogFile(logFile)
	if err == nil {
		writers = append(writers, logFileHandle)
	}

	multi := io.MultiWriter(writers...)
	log.Logger = zerolog.New(multi).With().Timestamp().Logger()

	// If we couldn't create the log file, log the error now with the new logger
	if err != nil {
		log.Warn().Err(err).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}

	// Add caller information for debug and trace levels
	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Open log file in append mode
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// Must logs a fatal error and exits if err is not nil
func Must(err error, msg string) {
	if err != nil {
		log.Fatal().Err(err).Msg(msg)
	}
}

// Sink routes reconciliation engine messages to a zerolog logger.
// Verbose messages additionally reach echo when set, carrying the
// dry-run "would ..." narration to the user.
type Sink struct {
	logger zerolog.Logger
	echo   io.Writer
}

// NewSink creates a Sink writing to the given logger.
func NewSink(logger zerolog.Logger) *Sink {
	return &Sink{logger: logger}
}

// WithEcho returns a copy of the sink that mirrors verbose messages to w.
func (s *Sink) WithEcho(w io.Writer) *Sink {
	return &Sink{logger: s.logger, echo: w}
}

// Trace logs an engine trace message
func (s *Sink) Trace(format string, args ...interface{}) {
	s.logger.Trace().Msgf(format, args...)
}

// Debug logs an engine debug message
func (s *Sink) Debug(format string, args ...interface{}) {
	s.logger.Debug().Msgf(format, args...)
}

// Verbose logs an engine progress message and echoes it to the user
func (s *Sink) Verbose(format string, args ...interface{}) {
	s.logger.Info().Msgf(format, args...)
	if s.echo != nil {
		fmt.Fprintf(s.echo, format+"\n", args...)
	}
}

// Error logs an engine failure message
func (s *Sink) Error(format string, args ...interface{}) {
	s.logger.Error().Msgf(format, args...)
}

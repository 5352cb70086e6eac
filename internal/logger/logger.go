package logger

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	AppLogger  = zerolog.Nop()
	HttpLogger = zerolog.Nop()
)

type Options struct {
	Level     string
	ToFile    bool
	Directory string
}

// Init configures AppLogger (console + app.log, with caller) and HttpLogger
// (http.log only). File output goes to <Directory>/<dd-mm-yyyy>/.
func Init(opts Options) error {
	level := parseLogLevel(opts.Level, zerolog.InfoLevel)

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	if !opts.ToFile {
		AppLogger = newAppLogger(console, level)
		HttpLogger = zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
		return nil
	}

	dir := opts.Directory
	if dir == "" {
		dir = "logs"
	}
	logPath := filepath.Join(dir, time.Now().Format("02-01-2006"))
	if err := os.MkdirAll(logPath, 0o755); err != nil {
		AppLogger = newAppLogger(console, level)
		return err
	}

	appFile, err := os.OpenFile(filepath.Join(logPath, "app.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o664)
	if err != nil {
		AppLogger = newAppLogger(console, level)
		return err
	}
	AppLogger = newAppLogger(zerolog.MultiLevelWriter(console, appFile), level)

	httpFile, err := os.OpenFile(filepath.Join(logPath, "http.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o664)
	if err != nil {
		return err
	}
	HttpLogger = zerolog.New(httpFile).
		Level(level).
		With().
		Timestamp().
		Logger()

	return nil
}

func newAppLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Caller().
		Logger()
}

func parseLogLevel(levelStr string, defaultLevel zerolog.Level) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return defaultLevel
	}
}

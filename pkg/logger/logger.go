// Package logger provides the process-wide structured logger backed by
// zerolog. Call Init once at startup, then Get (or With for a
// component-scoped child) anywhere else.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls how the logger is initialised.
type Options struct {
	// Level is the minimum level to emit: trace, debug, info, warn, error.
	// Unrecognised or empty values fall back to "info".
	Level string
	// Pretty switches from JSON to a human-readable console format.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

var (
	mu       sync.Mutex
	instance *zerolog.Logger
)

// Init builds the process logger. The first call wins; later calls return
// the already-built instance.
func Init(opts Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return *instance
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	lvl := parseLevel(opts.Level)
	zerolog.SetGlobalLevel(lvl)

	log := zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Caller().
		Logger()
	instance = &log
	return log
}

// Get returns the process logger. Panics if Init has not run.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		panic("logger: Get called before Init")
	}
	return *instance
}

// With returns a child of the process logger tagged with a component name.
func With(component string) zerolog.Logger {
	return Get().With().Str("component", component).Logger()
}

// Reset discards the instance so the next Init rebuilds it. Test use only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

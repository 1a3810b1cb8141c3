package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is a log verbosity, from Debug (most verbose) to Error
type Level logging.Level

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// lineFormat prefixes each message with time, package and level
var lineFormat = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var backend logging.LeveledBackend

// Logger is what each package logs through; New returns one per package name
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for a package, e.g. "tracer" or "renderer"
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink redirects all output to sink and resets every level to Info
func SetSink(sink io.Writer) {
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), lineFormat)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(logging.INFO, "")
	logging.SetBackend(backend)
}

// SetLevel sets the default verbosity of all packages
func SetLevel(level Level) {
	backend.SetLevel(toLoggingLevel(level), "")
}

// SetModuleLevel sets the verbosity of one package, overriding SetLevel
func SetModuleLevel(module string, level Level) {
	backend.SetLevel(toLoggingLevel(level), module)
}

// IsEnabled reports whether module emits messages at level
func IsEnabled(level Level, module string) bool {
	return backend.IsEnabledFor(toLoggingLevel(level), module)
}

func toLoggingLevel(level Level) logging.Level {
	switch level {
	case Debug:
		return logging.DEBUG
	case Info:
		return logging.INFO
	case Notice:
		return logging.NOTICE
	case Warning:
		return logging.WARNING
	default:
		return logging.ERROR
	}
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}

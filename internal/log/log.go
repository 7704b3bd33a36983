package log

import (
	"io"
	stdlog "log"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelSilent
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelSilent:
		return "SILENT"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps an environment-style string to a Level. Unknown or empty
// input yields LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "SILENT", "NONE":
		return LevelSilent
	default:
		return LevelInfo
	}
}

// Logger is a minimal leveled logger. It is passed explicitly into every
// subsystem constructor; there is no package-level default.
type Logger struct {
	out   *stdlog.Logger
	level Level
}

func New(w io.Writer, level Level) *Logger {
	return &Logger{
		out:   stdlog.New(w, "", stdlog.Ltime),
		level: level,
	}
}

func (l *Logger) Debugf(format string, v ...any) { l.printf(LevelDebug, format, v...) }
func (l *Logger) Infof(format string, v ...any)  { l.printf(LevelInfo, format, v...) }
func (l *Logger) Warnf(format string, v ...any)  { l.printf(LevelWarn, format, v...) }
func (l *Logger) Errorf(format string, v ...any) { l.printf(LevelError, format, v...) }

func (l *Logger) printf(lv Level, format string, v ...any) {
	if lv < l.level {
		return
	}
	l.out.Printf(lv.String()+": "+format, v...)
}

func (l *Logger) SetLevel(level Level) { l.level = level }
func (l *Logger) Level() Level         { return l.level }

// Package logger is a leveled wrapper around the standard log package.
// Messages are prefixed with the level and, for component loggers, with
// the component name in brackets: "[INFO] [DashboardService] ...".
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level is a logging severity.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

var levelNames = map[Level]string{
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel maps a config string to a Level. Unknown values fall back to InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

var (
	mu     sync.RWMutex
	level  = InfoLevel
	output = log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)
)

// Init sets the global level and output format. Format "text" adds file:line to each entry.
func Init(lvl string, format string) {
	InitWriter(os.Stderr, lvl, format)
}

// InitWriter is Init with an explicit destination.
func InitWriter(w io.Writer, lvl string, format string) {
	flags := log.LstdFlags | log.Lmicroseconds
	if strings.ToLower(format) == "text" {
		flags |= log.Lshortfile
	}

	mu.Lock()
	defer mu.Unlock()
	level = ParseLevel(lvl)
	output = log.New(w, "", flags)
}

// Logger writes entries tagged with a component name.
type Logger struct {
	component string
}

// New returns a Logger for the given component.
func New(component string) *Logger {
	return &Logger{component: component}
}

func (l *Logger) Debugf(format string, args ...interface{}) { l.output(DebugLevel, format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.output(InfoLevel, format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.output(WarnLevel, format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.output(ErrorLevel, format, args...) }

func (l *Logger) output(lvl Level, format string, args ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	if lvl < level {
		return
	}

	var b strings.Builder
	b.WriteString("[")
	b.WriteString(lvl.String())
	b.WriteString("] ")
	if l.component != "" {
		b.WriteString("[")
		b.WriteString(l.component)
		b.WriteString("] ")
	}
	b.WriteString(fmt.Sprintf(format, args...))
	_ = output.Output(3, b.String())
}

// Fatalf logs at error level and exits the process.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.output(ErrorLevel, format, args...)
	os.Exit(1)
}

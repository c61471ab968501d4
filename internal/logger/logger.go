package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"time"
)

type Level int
type Channel string

const (
	DEBUG Level = iota
	INFO
	WARNING
	ERROR
	CRITICAL
)

const (
	ChannelHarness Channel = "harness"
	ChannelGateway Channel = "gateway"
	ChannelSystem  Channel = "system"
)

type Logger struct {
	logLevel Level
	out      *log.Logger
	context  map[string]interface{}
}

// New returns a logger writing to stderr.
func New(logLevel string) *Logger {
	return NewWithWriter(logLevel, os.Stderr)
}

func NewWithWriter(logLevel string, w io.Writer) *Logger {
	return &Logger{
		logLevel: ParseLevel(logLevel),
		out:      log.New(w, "", 0),
		context:  make(map[string]interface{}),
	}
}

// Discard is a logger that drops everything. Used by tests.
func Discard() *Logger {
	return NewWithWriter("critical", io.Discard)
}

func ParseLevel(logLevel string) Level {
	switch logLevel {
	case "debug":
		return DEBUG
	case "warning":
		return WARNING
	case "error":
		return ERROR
	case "critical":
		return CRITICAL
	}
	return INFO
}

// With returns a copy of the logger that adds fields to every entry.
func (l *Logger) With(fields map[string]interface{}) *Logger {
	merged := make(map[string]interface{}, len(l.context)+len(fields))
	for k, v := range l.context {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Logger{logLevel: l.logLevel, out: l.out, context: merged}
}

func (l *Logger) Enabled(level Level) bool {
	return l.logLevel <= level
}

func (l *Logger) Debug(message string, context map[string]interface{}, channel Channel) {
	if l.logLevel <= DEBUG {
		l.writeLog("DEBUG", message, context, channel)
	}
}

func (l *Logger) Info(message string, context map[string]interface{}, channel Channel) {
	if l.logLevel <= INFO {
		l.writeLog("INFO", message, context, channel)
	}
}

func (l *Logger) Warning(message string, context map[string]interface{}, channel Channel) {
	if l.logLevel <= WARNING {
		l.writeLog("WARNING", message, context, channel)
	}
}

func (l *Logger) Error(message string, context map[string]interface{}, channel Channel) {
	if l.logLevel <= ERROR {
		l.writeLog("ERROR", message, context, channel)
	}
}

func (l *Logger) Critical(message string, context map[string]interface{}, channel Channel) {
	if l.logLevel <= CRITICAL {
		l.writeLog("CRITICAL", message, context, channel)
	}
}

func (l *Logger) writeLog(level, message string, context map[string]interface{}, channel Channel) {
	timestamp := time.Now().Format(time.RFC3339)
	logEntry := timestamp + " [" + level + "] [" + string(channel) + "] " + message
	if fields := formatFields(l.context, context); fields != "" {
		logEntry += " " + fields
	}
	l.out.Println(logEntry)
}

func formatFields(base, extra map[string]interface{}) string {
	if len(base) == 0 && len(extra) == 0 {
		return ""
	}
	all := make(map[string]interface{}, len(base)+len(extra))
	for k, v := range base {
		all[k] = v
	}
	for k, v := range extra {
		all[k] = v
	}
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, all[k]))
	}
	return strings.Join(parts, " ")
}

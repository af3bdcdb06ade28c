// Package logging provides the leveled, optionally colored logger used by
// every command. It is backed by logrus; lines keep the
// "2006-01-02 15:04:05 [LEVEL] text" shape on screen and in the log file.
//
// All output goes to stderr: stdout is reserved for generated names so
// they can be piped.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/backmassage/assetnamer/internal/config"
	"github.com/backmassage/assetnamer/internal/term"
)

// successKey marks entries logged through [Logger.Success].
const successKey = "success"

// Logger provides leveled, optionally colored logging with an optional
// append-only file sink.
type Logger struct {
	mu   sync.Mutex
	log  *logrus.Logger
	file *os.File
}

// NewLogger configures terminal colors from cfg, sets the level and
// optionally opens cfg.LogFile. Call Close() when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg *config.Config, w io.Writer) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	lg := logrus.New()
	lg.SetOutput(w)
	lg.SetFormatter(&lineFormatter{color: term.Enabled()})
	lg.SetLevel(toLogrusLevel(cfg.LogLevel))
	l := &Logger{log: lg}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		lg.AddHook(&fileHook{w: f, formatter: &lineFormatter{}})
	}
	return l, nil
}

func toLogrusLevel(level config.LogLevel) logrus.Level {
	switch level {
	case config.LevelDebug:
		return logrus.DebugLevel
	case config.LevelWarn:
		return logrus.WarnLevel
	case config.LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Close detaches and closes the log file if one was opened. Later calls
// still log to the terminal.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	l.log.ReplaceHooks(make(logrus.LevelHooks))
	err := l.file.Close()
	l.file = nil
	return err
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

// Success logs at INFO severity with a green SUCCESS tag.
func (l *Logger) Success(format string, args ...interface{}) {
	l.log.WithField(successKey, true).Infof(format, args...)
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log.Warnf(format, args...)
}

// Error logs at ERROR level (red).
func (l *Logger) Error(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

// Debug logs at DEBUG level (cyan); dropped unless the level is debug.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

// lineFormatter renders "ts [LEVEL] text", coloring the tag when color is set.
type lineFormatter struct {
	color bool
}

func (f *lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	tag, color := levelTag(e)
	var b bytes.Buffer
	b.WriteString(e.Time.Format("2006-01-02 15:04:05"))
	b.WriteByte(' ')
	if f.color && color != "" {
		fmt.Fprintf(&b, "%s[%s]%s", color, tag, term.NC)
	} else {
		fmt.Fprintf(&b, "[%s]", tag)
	}
	b.WriteByte(' ')
	b.WriteString(e.Message)
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func levelTag(e *logrus.Entry) (tag, color string) {
	if ok, _ := e.Data[successKey].(bool); ok {
		return "SUCCESS", term.Green
	}
	switch e.Level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return "DEBUG", term.Cyan
	case logrus.WarnLevel:
		return "WARN", term.Yellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return "ERROR", term.Red
	default:
		return "INFO", term.Blue
	}
}

// fileHook mirrors every emitted entry, uncolored, into the log file.
type fileHook struct {
	mu        sync.Mutex
	w         io.Writer
	formatter logrus.Formatter
}

func (h *fileHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *fileHook) Fire(e *logrus.Entry) error {
	line, err := h.formatter.Format(e)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.w.Write(line)
	return err
}

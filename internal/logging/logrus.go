package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var _ Logger = (*logrusLogger)(nil)

type logrusLogger struct {
	entry *logrus.Entry
}

// Options configures New.
type Options struct {
	Level string
	// Dir, when set, receives a log file named after Name and the start time.
	Dir  string
	Name string
	// Console defaults to os.Stdout.
	Console io.Writer
}

// New creates a logrus-backed Logger writing to the console and, when
// opts.Dir is set, to <Dir>/<Name>-YYYYMMDD-HHMMSS.log as well.
// The returned closer releases the log file; it is never nil.
func New(opts Options) (Logger, io.Closer, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	l.SetFormatter(&SimpleFormatter{TimestampFormat: "2006/01/02 15:04:05.000000"})

	console := opts.Console
	if console == nil {
		console = os.Stdout
	}
	l.SetOutput(console)

	closer := io.Closer(nopCloser{})
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return &logrusLogger{entry: logrus.NewEntry(l)}, closer,
				fmt.Errorf("logging: create log directory %s: %w", opts.Dir, err)
		}
		name := opts.Name
		if name == "" {
			name = "export"
		}
		path := filepath.Join(opts.Dir, name+"-"+time.Now().Format("20060102-150405")+".log")
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return &logrusLogger{entry: logrus.NewEntry(l)}, closer,
				fmt.Errorf("logging: open log file %s: %w", path, err)
		}
		l.SetOutput(io.MultiWriter(console, f))
		closer = f
	}

	return &logrusLogger{entry: logrus.NewEntry(l)}, closer, nil
}

// Discard returns a Logger that drops everything. Useful in tests.
func Discard() Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &logrusLogger{entry: logrus.NewEntry(l)}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func (l *logrusLogger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *logrusLogger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *logrusLogger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *logrusLogger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *logrusLogger) WithField(key string, value interface{}) Logger {
	return &logrusLogger{entry: l.entry.WithField(key, value)}
}

// SimpleFormatter writes one compact line per entry:
// 2026/10/18 17:30:00.000000 [INF] message key1=value1 key2=value2
type SimpleFormatter struct {
	TimestampFormat string
}

// Format implements logrus.Formatter.
func (f *SimpleFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	ts := f.TimestampFormat
	if ts == "" {
		ts = "2006/01/02 15:04:05.000000"
	}
	b.WriteString(entry.Time.Format(ts))
	b.WriteString(" ")

	level := strings.ToUpper(entry.Level.String())
	if len(level) > 3 {
		level = level[:3]
	}
	fmt.Fprintf(b, "[%s] ", level)
	b.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
		}
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

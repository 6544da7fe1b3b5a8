package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// StdLogger is a lightweight implementation backed by Go's log package.
type StdLogger struct {
	verbose bool
}

// NewStd creates a StdLogger.
func NewStd(verbose bool) *StdLogger {
	return &StdLogger{verbose: verbose}
}

func (l *StdLogger) Debug(msg string, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	log.Println("[DEBUG]", msg, fields)
}

func (l *StdLogger) Info(msg string, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	log.Println("[INFO]", msg, fields)
}

func (l *StdLogger) Warn(msg string, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	log.Println("[WARN]", msg, fields)
}

func (l *StdLogger) Error(msg string, err error, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	log.Println("[ERROR]", msg, err, fields)
}

// FileLogger appends structured lines to the configured log file. Writes are
// best-effort: a logging failure never interrupts the calling operation.
type FileLogger struct {
	mu      sync.Mutex
	path    string
	verbose bool
}

// NewFile creates a FileLogger writing to path. With verbose set, lines are
// echoed to stderr as well.
func NewFile(path string, verbose bool) *FileLogger {
	return &FileLogger{path: path, verbose: verbose}
}

func (l *FileLogger) Debug(msg string, fields map[string]interface{}) {
	l.write("DEBUG", msg, fields)
}

func (l *FileLogger) Info(msg string, fields map[string]interface{}) {
	l.write("INFO", msg, fields)
}

func (l *FileLogger) Warn(msg string, fields map[string]interface{}) {
	l.write("WARN", msg, fields)
}

func (l *FileLogger) Error(msg string, err error, fields map[string]interface{}) {
	if err != nil {
		if fields == nil {
			fields = map[string]interface{}{}
		}
		fields["error"] = err.Error()
	}
	l.write("ERROR", msg, fields)
}

func (l *FileLogger) write(level, msg string, fields map[string]interface{}) {
	line := fmt.Sprintf("%s - %s - %s%s\n",
		time.Now().UTC().Format("2006-01-02 15:04:05"), level, msg, formatFields(fields))

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err == nil {
		if file, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			_, _ = file.WriteString(line)
			_ = file.Close()
		}
	}
	if l.verbose {
		fmt.Fprint(os.Stderr, line)
	}
}

func formatFields(fields map[string]interface{}) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	return b.String()
}

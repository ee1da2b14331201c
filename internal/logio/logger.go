package logio

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Logger implements a leveled logging facility, safe for use from many
// goroutines, that remembers whether any error was logged.
type Logger struct {
	sync.Mutex
	output   io.Writer
	buf      bytes.Buffer
	exitCode int
	color    bool
	muted    map[string]bool
}

// levelColors are the ANSI SGR codes used for level labels.
var levelColors = map[string]string{
	"ERROR": "31",
	"WARN":  "33",
	"INFO":  "32",
	"TRACE": "2",
}

// SetOutput sets the logger's output stream.
func (log *Logger) SetOutput(out io.Writer) {
	log.Lock()
	defer log.Unlock()
	log.output = out
}

// SetColor enables ANSI coloring of level labels.
func (log *Logger) SetColor(color bool) {
	log.Lock()
	defer log.Unlock()
	log.color = color
}

// Mute discards any further messages at the given level; ERROR can not be
// muted.
func (log *Logger) Mute(level string) {
	log.Lock()
	defer log.Unlock()
	if level == "ERROR" {
		return
	}
	if log.muted == nil {
		log.muted = make(map[string]bool)
	}
	log.muted[level] = true
}

// ExitCode returns a code to pass to os.Exit, facilitating "exit non-zero if
// any error log" semantics.
func (log *Logger) ExitCode() int {
	log.Lock()
	defer log.Unlock()
	return log.exitCode
}

// Leveledf returns a typical printf-style formatting function that logs
// messages with the given level.
func (log *Logger) Leveledf(level string) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) { log.Printf(level, mess, args...) }
}

// ErrorIf logs any non-nil error through Errorf.
func (log *Logger) ErrorIf(err error) {
	if err != nil {
		log.Errorf("%v", err)
	}
}

// Errorf is like `Printf("ERROR", ...)` but additionally retains state so that
// ExitCode() will return non-zero.
func (log *Logger) Errorf(mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	if log.exitCode == 0 {
		log.exitCode = 1
	}
	if err := log.printf("ERROR", mess, args...); err != nil {
		log.exitCode = 2
	}
}

// Printf prints a line to the output stream like "level: message...\n".
// An io error leaves ExitCode() returning non-zero.
func (log *Logger) Printf(level, mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	if log.muted[level] {
		return
	}
	if err := log.printf(level, mess, args...); err != nil {
		log.exitCode = 2
	}
}

func (log *Logger) printf(level, mess string, args ...interface{}) error {
	if log.output == nil {
		return nil
	}
	if level != "" {
		if code := levelColors[level]; log.color && code != "" {
			fmt.Fprintf(&log.buf, "\x1b[%sm%s\x1b[0m: ", code, level)
		} else {
			log.buf.WriteString(level)
			log.buf.WriteString(": ")
		}
	}
	if len(args) > 0 {
		fmt.Fprintf(&log.buf, mess, args...)
	} else {
		log.buf.WriteString(mess)
	}
	if b := log.buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		log.buf.WriteByte('\n')
	}
	_, err := log.buf.WriteTo(log.output)
	log.buf.Reset()
	return err
}

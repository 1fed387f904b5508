package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"
)

// LogEntry is a single event in the shell's activity log. Exactly one of the
// event fields is populated per entry.
type LogEntry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	SessionStart      *SessionStart      `json:"session_start,omitempty"`
	SessionEnd        *SessionEnd        `json:"session_end,omitempty"`
	RunCommand        *RunCommand        `json:"run_command,omitempty"`
	ChildExit         *ChildExit         `json:"child_exit,omitempty"`
	UnknownCommand    *UnknownCommand    `json:"unknown_command,omitempty"`
	InvalidInvocation *InvalidInvocation `json:"invalid_invocation,omitempty"`
	Interrupt         *Interrupt         `json:"interrupt,omitempty"`
}

// SessionStart marks the beginning of an interpreter session.
type SessionStart struct {
	Username    string `json:"username"`
	Interactive bool   `json:"interactive"`
}

// SessionEnd marks the end of an interpreter session.
type SessionEnd struct {
	// ExitCode is the interpreter's own exit status.
	ExitCode int `json:"exit_code"`
	// LastStatus is the status of the last dispatched command, which the
	// interpreter tracks but never displays.
	LastStatus int `json:"last_status"`
}

// RunCommand records a command handed to the process launcher.
type RunCommand struct {
	// Command holds the cleaned argv, including the program as Command[0].
	Command []string `json:"command"`
	// ResolvedPath is the executable the command name resolved to.
	ResolvedPath string `json:"resolved_path"`
	Background   bool   `json:"background"`
	PID          int    `json:"pid"`
}

// ChildExit records the collected status of a launched child.
type ChildExit struct {
	PID        int  `json:"pid"`
	ExitStatus int  `json:"exit_status"`
	Background bool `json:"background"`
}

// UnknownCommand records a command name that resolved to no executable.
type UnknownCommand struct {
	Command []string `json:"command"`
	Error   string   `json:"error"`
}

// InvalidInvocation records a command that failed before any child was
// created: bad builtin usage, redirection syntax errors, unopenable
// redirection targets.
type InvalidInvocation struct {
	Command []string `json:"command"`
	Error   string   `json:"error"`
}

// Interrupt records an interrupt delivered at the input read point.
type Interrupt struct{}

// Event is the value set of LogEntry's one-of event fields.
type Event interface {
	attach(le *LogEntry)
}

func (e *SessionStart) attach(le *LogEntry)      { le.SessionStart = e }
func (e *SessionEnd) attach(le *LogEntry)        { le.SessionEnd = e }
func (e *RunCommand) attach(le *LogEntry)        { le.RunCommand = e }
func (e *ChildExit) attach(le *LogEntry)         { le.ChildExit = e }
func (e *UnknownCommand) attach(le *LogEntry)    { le.UnknownCommand = e }
func (e *InvalidInvocation) attach(le *LogEntry) { le.InvalidInvocation = e }
func (e *Interrupt) attach(le *LogEntry)         { le.Interrupt = e }

// LogRecorder is a callback that stores entries in an external datastore.
type LogRecorder func(le *LogEntry) error

// Logger captures activity events to determine how the shell is used.
type Logger struct {
	Record LogRecorder
}

// NewJsonLinesLogRecorder creates a Logger that exports entries in newline
// delimited JSON object format.
func NewJsonLinesLogRecorder(w io.Writer) *Logger {
	return &Logger{
		Record: func(le *LogEntry) error {
			entry, err := json.Marshal(le)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
	}
}

// NewNopLogger creates a Logger that discards all entries.
func NewNopLogger() *Logger {
	return &Logger{
		Record: func(le *LogEntry) error {
			return nil
		},
	}
}

func (l *Logger) recordEvent(sessionID string, event Event) error {
	le := &LogEntry{}
	le.TimestampMicros = time.Now().UnixNano() / int64(time.Microsecond)
	le.SessionID = sessionID
	event.attach(le)

	return l.Record(le)
}

// NewSession creates a logger with an attached session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{Logger: l, sessionID: fmt.Sprintf("%d", rand.Uint64())}
}

// Sessionless creates a logger with no session ID.
func (l *Logger) Sessionless() *SessionLogger {
	return &SessionLogger{Logger: l, sessionID: ""}
}

// SessionLogger logs events with a shared session ID.
type SessionLogger struct {
	*Logger
	sessionID string
}

// Record stores one event under the logger's session ID.
func (l *SessionLogger) Record(event Event) error {
	return l.recordEvent(l.sessionID, event)
}

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var logEntry LogEntry
		if err := decoder.Decode(&logEntry); err != nil {
			return err
		}

		handler(&logEntry)
	}
	return nil
}

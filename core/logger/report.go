package logger

import (
	"encoding/json"
	"strings"
)

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	InvalidEntries StrCounter `json:"unknown_log_entries,omitempty"`

	Sessions          SessionReport           `json:"session_report"`
	RunCommand        RunCommandReport        `json:"run_command_report"`
	UnknownCommand    UnknownCommandReport    `json:"unknown_command_report"`
	InvalidInvocation InvalidInvocationReport `json:"invalid_invocation_report"`
	ChildExit         ChildExitReport         `json:"child_exit_report"`
}

// Update folds one log entry into the report.
func (r *Report) Update(le *LogEntry) {
	r.LogEntries++

	switch {
	case le.SessionStart != nil:
		r.Sessions.updateStart(le.SessionStart)
	case le.SessionEnd != nil:
		r.Sessions.updateEnd(le.SessionEnd)
	case le.RunCommand != nil:
		r.RunCommand.update(le.RunCommand)
	case le.UnknownCommand != nil:
		r.UnknownCommand.update(le.UnknownCommand)
	case le.InvalidInvocation != nil:
		r.InvalidInvocation.update(le.InvalidInvocation)
	case le.ChildExit != nil:
		r.ChildExit.update(le.ChildExit)
	case le.Interrupt != nil:
		// Ignore
	default:
		r.InvalidEntries.Increment("empty")
	}
}

type SessionReport struct {
	Started   int        `json:"started"`
	Ended     int        `json:"ended"`
	Usernames StrCounter `json:"usernames"`
}

func (r *SessionReport) updateStart(s *SessionStart) {
	r.Started++
	r.Usernames.Increment(s.Username)
}

func (r *SessionReport) updateEnd(s *SessionEnd) {
	r.Ended++
}

type RunCommandReport struct {
	// Name of the resolved executable path.
	ResolvedCommandPaths StrCounter `json:"resolved_command_paths"`
	// Name of the command as typed.
	CommandNames StrCounter `json:"command_names"`
	// Foreground vs. background launches.
	Modes StrCounter `json:"modes"`
}

func (r *RunCommandReport) update(rc *RunCommand) {
	r.ResolvedCommandPaths.Increment(rc.ResolvedPath)
	if len(rc.Command) > 0 {
		r.CommandNames.Increment(rc.Command[0])
	}
	if rc.Background {
		r.Modes.Increment("background")
	} else {
		r.Modes.Increment("foreground")
	}
}

type UnknownCommandReport struct {
	CommandNames StrCounter `json:"command_names"`
	Errors       StrCounter `json:"errors"`
}

func (r *UnknownCommandReport) update(uc *UnknownCommand) {
	if len(uc.Command) > 0 {
		r.CommandNames.Increment(uc.Command[0])
	}
	r.Errors.Increment(uc.Error)
}

type InvalidInvocationReport struct {
	Commands StrCounter `json:"command_counts"`
	Errors   StrCounter `json:"errors"`
}

func (r *InvalidInvocationReport) update(ii *InvalidInvocation) {
	if len(ii.Command) > 0 {
		r.Commands.Increment(strings.Join(ii.Command, " "))
	}
	r.Errors.Increment(ii.Error)
}

type ChildExitReport struct {
	Count      int        `json:"count"`
	ExitStatus StrCounter `json:"exit_statuses"`
}

func (r *ChildExitReport) update(ce *ChildExit) {
	r.Count++
	if ce.ExitStatus == 0 {
		r.ExitStatus.Increment("zero")
	} else {
		r.ExitStatus.Increment("nonzero")
	}
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Count returns the number of times the key was seen.
func (s *StrCounter) Count(key string) int {
	return s.internal[key]
}

// MarshalJSON implements a custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.internal)
}

package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJsonLinesLogRecorder(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewJsonLinesLogRecorder(buf).NewSession()

	assert.Nil(t, log.Record(&RunCommand{
		Command:      []string{"echo", "hi"},
		ResolvedPath: "/bin/echo",
		PID:          42,
	}))
	assert.Nil(t, log.Record(&ChildExit{PID: 42, ExitStatus: 0}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)

	// Every line must decode on its own and carry the session ID.
	var entries []*LogEntry
	assert.Nil(t, ReadJSONLinesLog(buf, func(le *LogEntry) {
		entries = append(entries, le)
	}))
	assert.Len(t, entries, 2)
	assert.NotEmpty(t, entries[0].SessionID)
	assert.Equal(t, entries[0].SessionID, entries[1].SessionID)
	assert.NotNil(t, entries[0].RunCommand)
	assert.Equal(t, []string{"echo", "hi"}, entries[0].RunCommand.Command)
	assert.NotNil(t, entries[1].ChildExit)
}

func TestNopLogger(t *testing.T) {
	log := NewNopLogger().Sessionless()
	assert.Nil(t, log.Record(&Interrupt{}))
}

func TestReportUpdate(t *testing.T) {
	var report Report

	entries := []*LogEntry{
		{SessionStart: &SessionStart{Username: "root", Interactive: true}},
		{RunCommand: &RunCommand{Command: []string{"ls", "-l"}, ResolvedPath: "/bin/ls", PID: 7}},
		{RunCommand: &RunCommand{Command: []string{"sleep", "1"}, ResolvedPath: "/bin/sleep", PID: 8, Background: true}},
		{ChildExit: &ChildExit{PID: 7, ExitStatus: 0}},
		{ChildExit: &ChildExit{PID: 8, ExitStatus: 1, Background: true}},
		{UnknownCommand: &UnknownCommand{Command: []string{"nope"}, Error: "executable file not found in $PATH"}},
		{InvalidInvocation: &InvalidInvocation{Command: []string{"cd"}, Error: `expected argument to "cd"`}},
		{SessionEnd: &SessionEnd{ExitCode: 0}},
	}
	for _, le := range entries {
		report.Update(le)
	}

	assert.Equal(t, len(entries), report.LogEntries)
	assert.Equal(t, 1, report.Sessions.Started)
	assert.Equal(t, 1, report.Sessions.Ended)
	assert.Equal(t, 1, report.RunCommand.CommandNames.Count("ls"))
	assert.Equal(t, 1, report.RunCommand.Modes.Count("background"))
	assert.Equal(t, 1, report.RunCommand.Modes.Count("foreground"))
	assert.Equal(t, 2, report.ChildExit.Count)
	assert.Equal(t, 1, report.ChildExit.ExitStatus.Count("nonzero"))
	assert.Equal(t, 1, report.UnknownCommand.CommandNames.Count("nope"))
	assert.Equal(t, 1, report.InvalidInvocation.Commands.Count("cd"))
}

package shell

import (
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrapInterruptsShellSurvives(t *testing.T) {
	restore := TrapInterrupts()
	defer restore()

	assert.Nil(t, syscall.Kill(syscall.Getpid(), syscall.SIGINT))

	sh, out, _ := newTestShell(t)
	ret := sh.RunLines(strings.NewReader("echo still here\n"))

	assert.Equal(t, 0, ret)
	assert.Contains(t, out.String(), "still here\n")
}

func TestTrapInterruptsChildStaysKillable(t *testing.T) {
	restore := TrapInterrupts()
	defer restore()

	sh, out, _ := newTestShell(t)

	// A child that interrupts itself must die before reaching the echo.
	// If the trap leaked into the child as an ignored disposition the
	// signal would be discarded and the echo would run.
	sh.launch([]string{"sh", "-c", "kill -INT $$; echo survived"}, nil, false)

	assert.NotContains(t, out.String(), "survived")
	assert.NotEqual(t, 0, sh.lastRet)
}

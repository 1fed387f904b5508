package shell

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/slosh-sh/slosh/core/logger"
)

// launch spawns argv as a child process with the redirection bindings
// applied at spawn time. Binding targets are opened before the command
// name is resolved, so creation and truncation side effects happen even
// when no program can be started. Foreground launches block until the
// child exits; background launches report the PID and return immediately.
func (s *Shell) launch(argv []string, bindings []Redirection, background bool) {
	st := Streams{Out: s.stdout, Err: s.stderr}
	opened, err := ApplyRedirections(s.fs, bindings, &st)
	if err != nil {
		fmt.Fprintf(s.stderr, "slosh: %v\n", err)
		s.log.Record(&logger.InvalidInvocation{Command: argv, Error: err.Error()})
		s.lastRet = 1
		return
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		opened.Close()
		cause := err
		if ee, ok := err.(*exec.Error); ok {
			cause = ee.Err
		}
		fmt.Fprintf(s.stderr, "slosh: %s: %v\n", argv[0], cause)
		s.log.Record(&logger.UnknownCommand{Command: argv, Error: err.Error()})
		s.lastRet = 127
		return
	}

	cmd := &exec.Cmd{
		Path:   path,
		Args:   argv,
		Stdin:  st.In,
		Stdout: st.Out,
		Stderr: st.Err,
	}
	if cmd.Stdin == nil {
		// Without an input redirection the child shares the interpreter's
		// stdin when it is backed by a real descriptor. Buffered sources
		// are withheld so a child can't consume unread command lines.
		if fd, ok := s.stdin.(*os.File); ok {
			cmd.Stdin = fd
		}
	}

	if err := cmd.Start(); err != nil {
		fmt.Fprintf(s.stderr, "slosh: %s: %v\n", argv[0], err)
		s.log.Record(&logger.UnknownCommand{Command: argv, Error: err.Error()})
		opened.Close()
		s.lastRet = 126
		return
	}

	pid := cmd.Process.Pid
	s.log.Record(&logger.RunCommand{
		Command:      argv,
		ResolvedPath: path,
		Background:   background,
		PID:          pid,
	})

	if background {
		fmt.Fprintf(s.stdout, "Process running in background with PID: %d\n", pid)
		// Collect the status off the loop so the child doesn't linger as
		// a zombie. Nothing else ever waits on it.
		go func() {
			status := exitStatus(cmd.Wait())
			opened.Close()
			s.log.Record(&logger.ChildExit{PID: pid, ExitStatus: status, Background: true})
		}()
		return
	}

	// The status is tracked but deliberately not printed.
	s.lastRet = exitStatus(cmd.Wait())
	opened.Close()
	s.log.Record(&logger.ChildExit{PID: pid, ExitStatus: s.lastRet})
}

// exitStatus maps a Wait error to a shell style status code.
func exitStatus(err error) int {
	switch err := err.(type) {
	case nil:
		return 0
	case *exec.ExitError:
		return err.ExitCode()
	default:
		return 1
	}
}

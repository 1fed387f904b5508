package shell

import (
	"fmt"
	"os"

	"github.com/slosh-sh/slosh/core/logger"
)

// AllBuiltins holds all registered shell builtins.
//
// A builtin runs inside the interpreter's own process because it mutates
// state a child process couldn't change on the interpreter's behalf: the
// working directory, the history ring or the quit flag.
var AllBuiltins = make(map[string]ShellBuiltin)

type ShellBuiltin interface {
	Main(s *Shell, args []string) int
}

type ShellBuiltinFunc func(s *Shell, args []string) int

func (f ShellBuiltinFunc) Main(s *Shell, args []string) int {
	return f(s, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// Cd is the cd shell builtin. It takes exactly one argument, the directory
// to change to.
func Cd(s *Shell, args []string) int {
	switch len(args) {
	case 1:
		fmt.Fprintln(s.stderr, `slosh: expected argument to "cd"`)
		s.log.Record(&logger.InvalidInvocation{Command: args, Error: "missing cd argument"})
		return 1
	case 2:
		if err := os.Chdir(args[1]); err != nil {
			fmt.Fprintf(s.stderr, "slosh: cd: %v\n", err)
			s.log.Record(&logger.InvalidInvocation{Command: args, Error: err.Error()})
			return 1
		}
	default:
		fmt.Fprintln(s.stderr, "slosh: cd: too many arguments")
		s.log.Record(&logger.InvalidInvocation{Command: args, Error: "too many cd arguments"})
		return 1
	}
	return 0
}

// PrintHistory lists the remembered command lines oldest first, one per
// line with a 1-based position. Arguments are ignored.
func PrintHistory(s *Shell, args []string) int {
	for i, line := range s.history.Entries() {
		fmt.Fprintf(s.stdout, "%d %s\n", i+1, line)
	}
	return 0
}

// Exit ends the interpreter loop after the current iteration. No child is
// ever spawned for it.
func Exit(s *Shell, args []string) int {
	s.Quit = true
	return 0
}

func init() {
	AllBuiltins["cd"] = ShellBuiltinFunc(Cd)
	AllBuiltins["history"] = ShellBuiltinFunc(PrintHistory)
	AllBuiltins["exit"] = ShellBuiltinFunc(Exit)
}

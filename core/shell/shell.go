package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/spf13/afero"

	"github.com/slosh-sh/slosh/core/config"
	"github.com/slosh-sh/slosh/core/logger"
)

// Shell is a line oriented command interpreter. Each input line becomes at
// most one builtin dispatch or one child process; there are no pipelines,
// expansions or quoting rules.
type Shell struct {
	// Quit ends the interpreter loop after the current iteration.
	Quit bool

	// EnableColor turns on prompt colorization.
	EnableColor bool

	config  *config.Configuration
	log     *logger.SessionLogger
	fs      afero.Fs
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	history *History
	id      identity
	lastRet int
}

// New creates a Shell reading commands from stdin and writing command
// output and diagnostics to stdout and stderr.
func New(cfg *config.Configuration, log *logger.SessionLogger, stdin io.Reader, stdout, stderr io.Writer) *Shell {
	return &Shell{
		config:  cfg,
		log:     log,
		fs:      afero.NewOsFs(),
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		history: NewHistory(cfg.HistorySize),
		id:      currentIdentity(),
	}
}

// RunInteractive reads commands with line editing and a rendered prompt
// until an exit command or end of input. The returned code is the
// interpreter's exit status.
func (s *Shell) RunInteractive() int {
	s.log.Record(&logger.SessionStart{Username: s.id.username, Interactive: true})
	code := s.runInteractive()
	s.log.Record(&logger.SessionEnd{ExitCode: code, LastStatus: s.lastRet})
	return code
}

func (s *Shell) runInteractive() int {
	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(s.stdin),
		Stdout: s.stdout,
		Stderr: s.stderr,
		FuncIsTerminal: func() bool {
			return true
		},
	}
	if err := cfg.Init(); err != nil {
		fmt.Fprintf(s.stderr, "slosh: %v\n", err)
		return 1
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		fmt.Fprintf(s.stderr, "slosh: %v\n", err)
		return 1
	}
	defer rl.Close()

	if s.config.Greeting != "" {
		fmt.Fprintln(s.stdout, s.config.Greeting)
	}

	for !s.Quit {
		rl.SetPrompt(s.Prompt())
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			return 0 // Input exhausted, treated like exit.

		case err == readline.ErrInterrupt:
			// The pending line is dropped and the prompt redrawn.
			s.log.Record(&logger.Interrupt{})
			continue

		case err != nil:
			fmt.Fprintf(s.stderr, "slosh: read: %v\n", err)
			return 1

		case len(line) == 0:
			continue

		default:
			s.interpret(line)
		}
	}
	return 0
}

// RunLines interprets newline separated commands from r without prompting,
// stopping at an exit command or end of input.
func (s *Shell) RunLines(r io.Reader) int {
	s.log.Record(&logger.SessionStart{Username: s.id.username, Interactive: false})
	code := s.runLines(r)
	s.log.Record(&logger.SessionEnd{ExitCode: code, LastStatus: s.lastRet})
	return code
}

func (s *Shell) runLines(r io.Reader) int {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for !s.Quit && scanner.Scan() {
		s.interpret(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(s.stderr, "slosh: read: %v\n", err)
		return 1
	}
	return 0
}

// interpret runs one command line through tokenization, builtin dispatch
// and process launch.
func (s *Shell) interpret(line string) {
	if strings.TrimSpace(line) == "" {
		return // Blank lines are neither recorded nor dispatched.
	}
	s.history.Add(line)

	argv := Tokenize(line)
	if len(argv) == 0 {
		return
	}

	// Builtins see the vector exactly as typed: no background stripping
	// and no redirection rewriting.
	if builtin, ok := AllBuiltins[argv[0]]; ok {
		s.lastRet = builtin.Main(s, argv)
		return
	}

	argv, background := TrimBackground(argv)

	clean, bindings, err := ExtractRedirections(argv)
	if err != nil {
		fmt.Fprintf(s.stderr, "slosh: %v\n", err)
		s.log.Record(&logger.InvalidInvocation{Command: argv, Error: err.Error()})
		s.lastRet = 2
		return
	}

	if len(clean) == 0 {
		// A line like "> out.txt" names no program to run. The targets
		// are still opened so creation and truncation side effects
		// happen before the line is rejected.
		st := Streams{}
		if opened, err := ApplyRedirections(s.fs, bindings, &st); err != nil {
			fmt.Fprintf(s.stderr, "slosh: %v\n", err)
		} else {
			opened.Close()
		}
		fmt.Fprintln(s.stderr, "slosh: missing command")
		s.log.Record(&logger.InvalidInvocation{Command: argv, Error: "missing command"})
		s.lastRet = 2
		return
	}

	s.launch(clean, bindings, background)
}

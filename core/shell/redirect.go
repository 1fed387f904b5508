package shell

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// RedirectOp identifies which standard stream a redirection rebinds and how
// the target file is opened.
type RedirectOp int

const (
	// RedirectInput rebinds stdin to read from the target ("<").
	RedirectInput RedirectOp = iota
	// RedirectTruncate rebinds stdout to the target, truncating it (">").
	RedirectTruncate
	// RedirectAppend rebinds stdout to the target, appending to it (">>").
	RedirectAppend
)

// Redirection is a single stream binding extracted from an argument vector.
// Bindings live only for the invocation that produced them.
type Redirection struct {
	Op     RedirectOp
	Target string
}

// ExtractRedirections scans the argument vector left to right, consuming
// each operator token together with the token that follows it as the
// target path. The returned vector contains the surviving arguments in
// their original relative order with no operator or path tokens left.
//
// An operator as the final token has no target to consume and fails the
// invocation.
func ExtractRedirections(argv []string) ([]string, []Redirection, error) {
	var clean []string
	var bindings []Redirection

	for i := 0; i < len(argv); i++ {
		tok := argv[i]

		var op RedirectOp
		switch tok {
		case "<":
			op = RedirectInput
		case ">":
			op = RedirectTruncate
		case ">>":
			op = RedirectAppend
		default:
			clean = append(clean, tok)
			continue
		}

		if i+1 >= len(argv) {
			return nil, nil, fmt.Errorf("missing redirection target after %q", tok)
		}
		bindings = append(bindings, Redirection{Op: op, Target: argv[i+1]})
		i++
	}

	return clean, bindings, nil
}

// Streams holds the standard stream bindings for a single invocation.
// In stays nil until an input redirection binds it, letting the launcher
// tell a redirected stdin apart from the interpreter's own.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// ApplyRedirections opens every binding target in scan order and rebinds
// the matching stream on st. When several bindings name the same stream
// the last one wins, but every target is still opened so creation and
// truncation happen for all of them. The returned closer releases the
// opened files once the invocation finishes.
func ApplyRedirections(fsys afero.Fs, bindings []Redirection, st *Streams) (io.Closer, error) {
	var opened listCloser

	for _, b := range bindings {
		var flag int
		switch b.Op {
		case RedirectInput:
			flag = os.O_RDONLY
		case RedirectTruncate:
			flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		case RedirectAppend:
			flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
		}

		fd, err := fsys.OpenFile(b.Target, flag, 0644)
		if err != nil {
			opened.Close()
			return nil, err
		}
		opened = append(opened, fd)

		if b.Op == RedirectInput {
			st.In = fd
		} else {
			st.Out = fd
		}
	}

	return opened, nil
}

type listCloser []io.Closer

func (lc listCloser) Close() error {
	var lastErr error
	for _, v := range lc {
		if err := v.Close(); err != nil {
			lastErr = err
		}
	}

	return lastErr
}

package shell

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltinRegistry(t *testing.T) {
	for _, name := range []string{"cd", "history", "exit"} {
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, AllBuiltins, name)
		})
	}
}

func TestCdMissingArgument(t *testing.T) {
	sh, out, _ := newTestShell(t)
	orig, err := os.Getwd()
	assert.Nil(t, err)

	ret := Cd(sh, []string{"cd"})

	assert.Equal(t, 1, ret)
	assert.Equal(t, "slosh: expected argument to \"cd\"\n", out.String())

	wd, err := os.Getwd()
	assert.Nil(t, err)
	assert.Equal(t, orig, wd)
}

func TestCdTooManyArguments(t *testing.T) {
	sh, out, _ := newTestShell(t)

	ret := Cd(sh, []string{"cd", "/", "/tmp"})

	assert.Equal(t, 1, ret)
	assert.Equal(t, "slosh: cd: too many arguments\n", out.String())
}

func TestCdBadDirectory(t *testing.T) {
	sh, out, _ := newTestShell(t)
	orig, err := os.Getwd()
	assert.Nil(t, err)

	ret := Cd(sh, []string{"cd", "/this/path/does/not/exist"})

	assert.Equal(t, 1, ret)
	assert.Contains(t, out.String(), "slosh: cd: ")
	assert.Contains(t, out.String(), "/this/path/does/not/exist")

	wd, err := os.Getwd()
	assert.Nil(t, err)
	assert.Equal(t, orig, wd)
}

func TestCdChangesDirectory(t *testing.T) {
	orig, err := os.Getwd()
	assert.Nil(t, err)
	t.Cleanup(func() {
		assert.Nil(t, os.Chdir(orig))
	})

	target := t.TempDir()
	sh, out, _ := newTestShell(t)

	ret := Cd(sh, []string{"cd", target})

	assert.Equal(t, 0, ret)
	assert.Empty(t, out.String())

	wd, err := os.Getwd()
	assert.Nil(t, err)
	wantInfo, err := os.Stat(target)
	assert.Nil(t, err)
	gotInfo, err := os.Stat(wd)
	assert.Nil(t, err)
	assert.True(t, os.SameFile(wantInfo, gotInfo))
}

func TestPrintHistory(t *testing.T) {
	sh, out, _ := newTestShell(t)
	sh.history.Add("a")
	sh.history.Add("b")
	sh.history.Add("c")

	ret := PrintHistory(sh, []string{"history"})

	assert.Equal(t, 0, ret)
	assert.Equal(t, "1 a\n2 b\n3 c\n", out.String())
}

func TestPrintHistoryEmpty(t *testing.T) {
	sh, out, _ := newTestShell(t)

	ret := PrintHistory(sh, []string{"history"})

	assert.Equal(t, 0, ret)
	assert.Empty(t, out.String())
}

func TestExit(t *testing.T) {
	sh, out, _ := newTestShell(t)

	ret := Exit(sh, []string{"exit"})

	assert.Equal(t, 0, ret)
	assert.True(t, sh.Quit)
	assert.Empty(t, out.String())
}

package shell

import (
	"os"
	"os/user"
	"strings"

	"github.com/fatih/color"
)

// PromptInfo carries the values substituted into a prompt template.
type PromptInfo struct {
	Username   string
	Hostname   string
	WorkingDir string
	Root       bool
}

// RenderPrompt expands a prompt template.
//
// Supported escapes:
//
//	\u  username
//	\h  hostname
//	\w  working directory
//	\$  "#" for root, "$" otherwise
func RenderPrompt(template string, info PromptInfo) string {
	prompt := strings.ReplaceAll(template, `\u`, info.Username)
	prompt = strings.ReplaceAll(prompt, `\h`, info.Hostname)
	prompt = strings.ReplaceAll(prompt, `\w`, info.WorkingDir)

	if info.Root {
		prompt = strings.ReplaceAll(prompt, `\$`, "#")
	} else {
		prompt = strings.ReplaceAll(prompt, `\$`, "$")
	}

	return prompt
}

var (
	promptUserColor = forcedColor(color.FgGreen, color.Bold)
	promptDirColor  = forcedColor(color.FgBlue, color.Bold)
)

// RenderPromptColor is RenderPrompt with the identity shown in green and
// the working directory in blue.
func RenderPromptColor(template string, info PromptInfo) string {
	colored := info
	colored.Username = promptUserColor.Sprint(info.Username)
	colored.Hostname = promptUserColor.Sprint(info.Hostname)
	colored.WorkingDir = promptDirColor.Sprint(info.WorkingDir)
	return RenderPrompt(template, colored)
}

// forcedColor builds a color that emits escapes even when the process
// isn't attached to a terminal. Whether to colorize at all is decided by
// the caller, not by sniffing the output.
func forcedColor(attrs ...color.Attribute) *color.Color {
	out := color.New(attrs...)
	out.EnableColor()
	return out
}

// ContractHome replaces a leading home directory in wd with "~".
func ContractHome(wd, home string) string {
	if home != "" && strings.HasPrefix(wd, home) {
		return "~" + strings.TrimPrefix(wd, home)
	}
	return wd
}

// Prompt renders the configured prompt template against the interpreter's
// current working directory and identity.
func (s *Shell) Prompt() string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "?"
	}

	info := PromptInfo{
		Username:   s.id.username,
		Hostname:   s.id.hostname,
		WorkingDir: ContractHome(wd, s.id.home),
		Root:       s.id.root,
	}

	if s.EnableColor {
		return RenderPromptColor(s.config.Prompt, info)
	}
	return RenderPrompt(s.config.Prompt, info)
}

// identity describes the invoking user for prompt rendering.
type identity struct {
	username string
	hostname string
	home     string
	root     bool
}

func currentIdentity() identity {
	id := identity{
		username: "unknown",
		hostname: "localhost",
		root:     os.Getuid() == 0,
	}

	if u, err := user.Current(); err == nil {
		id.username = u.Username
		id.home = u.HomeDir
	} else if name := os.Getenv("USER"); name != "" {
		id.username = name
	}

	if host, err := os.Hostname(); err == nil {
		// Like \h in other shells, only up to the first dot.
		if i := strings.IndexByte(host, '.'); i > 0 {
			host = host[:i]
		}
		id.hostname = host
	}

	return id
}

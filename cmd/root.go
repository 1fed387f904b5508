package cmd

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/slosh-sh/slosh/core/config"
	"github.com/slosh-sh/slosh/core/logger"
	"github.com/slosh-sh/slosh/core/shell"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "slosh",
	Short: "A small line oriented command interpreter.",
	Long: `A minimal interactive shell: one command per line, with input and
output redirection, background execution and a bounded command history.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		// Run with built-in defaults when no configuration directory
		// exists so the interpreter works without an init step. Event
		// logs are then kept in memory and discarded on exit.
		cfg, err := config.Load(cfgPath)
		if errors.Is(err, fs.ErrNotExist) {
			cfg, err = config.Ephemeral(), nil
		}
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logFd, err := cfg.OpenEventLog()
		if err != nil {
			return err
		}
		defer logFd.Close()

		// An interrupt must never end the interpreter itself, but the
		// disposition has to stay caught rather than ignored: SIG_IGN
		// would survive exec and make foreground children unkillable
		// from the terminal.
		stop := shell.TrapInterrupts()
		defer stop()

		sh := shell.New(cfg, logger.NewJsonLinesLogRecorder(logFd).NewSession(), os.Stdin, os.Stdout, os.Stderr)
		sh.EnableColor = cfg.Color == "always" ||
			(cfg.Color == "auto" && isatty.IsTerminal(os.Stdout.Fd()))

		var code int
		if isatty.IsTerminal(os.Stdin.Fd()) {
			code = sh.RunInteractive()
		} else {
			code = sh.RunLines(os.Stdin)
		}

		if code != 0 {
			logFd.Close()
			os.Exit(code)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}

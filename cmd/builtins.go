package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/slosh-sh/slosh/core/shell"
)

// builtinsCmd lists the commands the interpreter handles itself
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the commands the interpreter runs without starting a process.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		var builtins []string

		for name := range shell.AllBuiltins {
			builtins = append(builtins, name)
		}

		sort.Strings(builtins)

		for _, v := range builtins {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}

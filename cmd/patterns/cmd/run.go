package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <key|name>",
	Short: "Run one demo without the menu",
	Example: `  patterns run 2
  patterns run abstract-factory`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newMenu(cmd)
		if err != nil {
			return err
		}
		e, err := m.Lookup(strings.Join(args, " "))
		if err != nil {
			return err
		}
		m.Dispatch(e, cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

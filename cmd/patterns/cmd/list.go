package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available demos",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newMenu(cmd)
		if err != nil {
			return err
		}
		for _, e := range m.Entries() {
			fmt.Fprintf(cmd.OutOrStdout(), "%2s  %s\n", e.Key, e.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

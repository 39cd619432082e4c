package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/automaton"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of automaton",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "automaton version %s\n", strings.TrimSpace(automaton.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

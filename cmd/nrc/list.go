package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nanorc-tools/nrc/keywords"
	"github.com/nanorc-tools/nrc/rcfile"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the keyword set stored in the rc file",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	existing, err := rcfile.Load(s.rcPath, s.section)
	if err != nil {
		return err
	}
	set := keywords.NewSet(existing...)
	fmt.Fprintf(out, "%s Keyword set in %s (%d):\n", s.label(), s.rcPath, set.Len())
	printTable(out, s, set)
	return nil
}

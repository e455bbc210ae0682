package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nanorc-tools/nrc/lexer"
)

var addCmd = &cobra.Command{
	Use:   "add <keyword...>",
	Short: "Add keywords to the rc file directly",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	set, err := loadKeywords(out, s)
	if err != nil {
		return err
	}
	for _, kw := range args {
		if !isKeyword(kw) {
			return fmt.Errorf("%q is not an identifier", kw)
		}
		if !set.Add(kw) && s.verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "[keyword] %s already known\n", kw)
		}
	}

	interviewer, release := newInterviewer(s, out)
	defer release()
	return commit(out, s, set, len(args), "new keywords", interviewer)
}

// isKeyword reports whether kw lexes as a single identifier.
func isKeyword(kw string) bool {
	lexemes, err := lexer.TokenizeBytes("", []byte(kw), lexer.Options{})
	return err == nil && len(lexemes) == 1 && lexemes[0].Kind == lexer.Identifier
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nanorc-tools/nrc/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Print the lexemes of a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	lexCmd.Flags().Bool("all", false, "Include whitespace lexemes")
	lexCmd.Flags().Int("max-char-literal", 0, "Reject character literals longer than this (0 disables the check)")
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	maxChar, _ := cmd.Flags().GetInt("max-char-literal")
	if !cmd.Flags().Changed("max-char-literal") {
		maxChar = viper.GetInt("max_char_literal")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer f.Close()

	lexemes, err := lexer.Tokenize(args[0], f, lexer.Options{MaxCharLiteral: maxChar})
	if err != nil {
		return err
	}
	dumpLexemes(cmd.OutOrStdout(), lexemes, all)
	return nil
}

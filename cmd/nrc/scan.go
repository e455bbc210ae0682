package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nanorc-tools/nrc/keywords"
	"github.com/nanorc-tools/nrc/lexer"
	"github.com/nanorc-tools/nrc/rcfile"
	"github.com/nanorc-tools/nrc/report"
	"github.com/nanorc-tools/nrc/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan <path...>",
	Short: "Scan sources for new keywords",
	Long: "Lex every source file given (or found below a directory with --recursive), collect the " +
		"names declared by the keyword specifiers, and offer to write the grown keyword set back " +
		"to the rc file.",
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolP("recursive", "r", false, "Search directories recursively")
	scanCmd.Flags().StringSliceP("specifiers", "i", keywords.DefaultSpecifiers(), "The keyword specifiers to look for")
	scanCmd.Flags().Int("depth", keywords.DefaultDepth, "Context window reach in lexemes on either side of a keyword")
	scanCmd.Flags().Int("max-char-literal", 0, "Reject character literals longer than this (0 disables the check)")
	scanCmd.Flags().StringSlice("ext", scan.DefaultExtensions(), "Source file extensions to scan")
	scanCmd.Flags().Bool("confirm-each", false, "Ask before adding each new keyword (a adds the rest, q skips the rest)")
	scanCmd.Flags().String("report", "", "Write a JSON report of the run to this path")

	_ = viper.BindPFlag("recursive", scanCmd.Flags().Lookup("recursive"))
	_ = viper.BindPFlag("specifiers", scanCmd.Flags().Lookup("specifiers"))
	_ = viper.BindPFlag("depth", scanCmd.Flags().Lookup("depth"))
	_ = viper.BindPFlag("max_char_literal", scanCmd.Flags().Lookup("max-char-literal"))
	_ = viper.BindPFlag("extensions", scanCmd.Flags().Lookup("ext"))
	_ = viper.BindPFlag("confirm_each", scanCmd.Flags().Lookup("confirm-each"))
	_ = viper.BindPFlag("report", scanCmd.Flags().Lookup("report"))

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	errw := cmd.ErrOrStderr()

	set, err := loadKeywords(out, s)
	if err != nil {
		return err
	}

	recursive := viper.GetBool("recursive")
	files, errs := scan.Discover(args, recursive, viper.GetStringSlice("extensions"))
	for _, err := range errs {
		fmt.Fprintf(errw, "[discover] %v\n", err)
	}
	if recursive && s.verbose {
		fmt.Fprintln(out, "Recursive search found the following files:")
		for _, f := range files {
			fmt.Fprintf(out, "  %s\n", report.Paint(s.ansi, report.BrightYellow, f))
		}
	}

	hl := keywords.PlainHighlight
	if s.ansi {
		hl = keywords.ANSIHighlight
	}
	extractor := keywords.NewExtractor(keywords.Config{
		Specifiers: viper.GetStringSlice("specifiers"),
		Depth:      viper.GetInt("depth"),
		Highlight:  hl,
	})

	interviewer, release := newInterviewer(s, out)
	defer release()

	confirm := viper.GetBool("confirm_each") && !s.yes
	emitter := scan.NewEventEmitter()
	emitter.On(terminalEventListener(out, errw, listenerOptions{
		verbose:    s.verbose,
		lexVerbose: s.lexVerbose,
		ctxVerbose: s.ctxVerbose,
		confirm:    confirm,
		ansi:       s.ansi,
	}))

	result, runErr := scan.Run(files, &scan.RunConfig{
		Extractor:   extractor,
		Lexer:       lexer.Options{MaxCharLiteral: viper.GetInt("max_char_literal")},
		Keywords:    set,
		Interviewer: interviewer,
		Events:      emitter,
		Confirm:     confirm,
	})
	if result != nil {
		if path := viper.GetString("report"); path != "" {
			if err := scan.WriteReport(path, result); err != nil {
				fmt.Fprintf(errw, "[report] %v\n", err)
			} else if s.verbose {
				fmt.Fprintf(errw, "[report] wrote %s\n", path)
			}
		}
	}
	if runErr != nil {
		return runErr
	}

	return commit(out, s, set, len(files), "files", interviewer)
}

// loadKeywords reads the current section of the rc file into a set.
func loadKeywords(out io.Writer, s settings) (*keywords.Set, error) {
	existing, err := rcfile.Load(s.rcPath, s.section)
	if err != nil {
		return nil, err
	}
	set := keywords.NewSet(existing...)
	if s.verbose {
		if set.Len() == 0 {
			fmt.Fprintf(out, "No %s Keywords found in %s.\n", s.label(), s.rcPath)
		} else {
			fmt.Fprintf(out, "Current %s Keyword set is as follows.\n", s.label())
			printTable(out, s, set)
		}
	}
	return set, nil
}

func printTable(out io.Writer, s settings, set *keywords.Set) {
	names := set.Names()
	sort.Strings(names)
	report.Table(out, names, set.Changed, s.mode, report.TableOptions{
		Width:  terminalWidth(),
		Indent: 2,
		Color:  s.ansi,
	})
}

// commit shows the grown set and writes it to the rc file once confirmed.
func commit(out io.Writer, s settings, set *keywords.Set, n int, what string, interviewer scan.Interviewer) error {
	report.Summary(out, n, what, set, s.mode, s.ansi)
	if set.ChangedCount() == 0 {
		return nil
	}
	set.Sort()
	printTable(out, s, set)

	fmt.Fprintf(out, "The output path is %s\n", report.Paint(s.ansi, report.BrightYellow, s.rcPath))
	ok, err := scan.Confirm(interviewer, "Would you like to commit these changes to file?", "")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "Changes discarded.")
		return nil
	}
	if err := rcfile.Save(s.rcPath, s.section, set.Names()); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %d %s keywords to %s\n", set.Len(), s.mode, s.rcPath)
	return nil
}

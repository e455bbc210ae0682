package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/nanorc-tools/nrc/keywords"
	"github.com/nanorc-tools/nrc/lexer"
	"github.com/nanorc-tools/nrc/report"
	"github.com/nanorc-tools/nrc/scan"
)

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// terminalWidth returns the column count of stdout, or 0 when unknown.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return w
}

// newInterviewer picks how questions are asked: automatically with --yes,
// through a line editor on a terminal, and line by line otherwise. The
// returned func releases the terminal.
func newInterviewer(s settings, out io.Writer) (scan.Interviewer, func()) {
	if s.yes {
		return &scan.AutoApproveInterviewer{}, func() {}
	}
	if term.IsTerminal(int(os.Stdin.Fd())) && stdoutIsTerminal() {
		ln := scan.NewLinerInterviewer(out)
		return ln, func() { _ = ln.Close() }
	}
	return scan.NewCLIInterviewer(os.Stdin, out), func() {}
}

type listenerOptions struct {
	verbose    bool
	lexVerbose bool
	ctxVerbose bool
	confirm    bool
	ansi       bool
}

// terminalEventListener prints scan progress to errw and keyword reviews to
// out.
func terminalEventListener(out, errw io.Writer, opts listenerOptions) func(scan.Event) {
	var pending keywords.Fact

	return func(e scan.Event) {
		switch e.Type {
		case scan.EventScanStarted:
			if opts.verbose {
				id, _ := e.Data["id"].(string)
				files, _ := e.Data["files"].(int)
				fmt.Fprintf(errw, "[scan] %s: %d files\n", id, files)
			}

		case scan.EventFileStarted:
			file, _ := e.Data["file"].(string)
			fmt.Fprintf(errw, "[lex] %s\n", report.Paint(opts.ansi, report.Yellow, file))

		case scan.EventFileLexed:
			if opts.lexVerbose {
				lexemes, _ := e.Data["lexemes"].([]lexer.Lexeme)
				dumpLexemes(errw, lexemes, false)
			}

		case scan.EventFileCompleted:
			if opts.verbose {
				file, _ := e.Data["file"].(string)
				n, _ := e.Data["lexemes"].(int)
				facts, _ := e.Data["facts"].(int)
				durationMs, _ := e.Data["duration_ms"].(int64)
				duration := time.Duration(durationMs) * time.Millisecond
				fmt.Fprintf(errw, "[lex] %s: %d lexemes, %d declarations (%.1fs)\n", file, n, facts, duration.Seconds())
			}

		case scan.EventFileFailed:
			file, _ := e.Data["file"].(string)
			errMsg, _ := e.Data["error"].(string)
			fmt.Fprintf(errw, "[lex] %s failed: %s\n", file, errMsg)

		case scan.EventExtractionIssue:
			errMsg, _ := e.Data["error"].(string)
			fmt.Fprintf(errw, "[extract] %s\n", errMsg)

		case scan.EventKeywordFound:
			pending, _ = scan.FactFromEvent(e)

		case scan.EventKeywordDuplicate:
			if opts.verbose {
				name, _ := e.Data["name"].(string)
				fmt.Fprintf(errw, "[keyword] %s already known\n", name)
			}

		case scan.EventInterviewStarted:
			report.Fact(out, pending, opts.ansi)

		case scan.EventKeywordAccepted:
			if opts.ctxVerbose && !opts.confirm {
				f, _ := scan.FactFromEvent(e)
				report.Fact(out, f, opts.ansi)
			} else if opts.verbose {
				name, _ := e.Data["name"].(string)
				fmt.Fprintf(errw, "[keyword] %s added\n", name)
			}

		case scan.EventKeywordRejected:
			if opts.verbose {
				name, _ := e.Data["name"].(string)
				fmt.Fprintf(errw, "[keyword] %s rejected\n", name)
			}

		case scan.EventScanCompleted:
			durationMs, _ := e.Data["duration_ms"].(int64)
			duration := time.Duration(durationMs) * time.Millisecond
			accepted, _ := e.Data["accepted"].(int)
			failed, _ := e.Data["failed"].(int)
			fmt.Fprintf(errw, "[scan] Completed in %.1fs: %d new keywords, %d failed files\n", duration.Seconds(), accepted, failed)

		default:
			if opts.verbose {
				fmt.Fprintf(errw, "[event] %s\n", e.Type)
			}
		}
	}
}

// dumpLexemes writes one line per lexeme. Whitespace is skipped unless all
// is set.
func dumpLexemes(w io.Writer, lexemes []lexer.Lexeme, all bool) {
	for _, lx := range lexemes {
		if lx.Kind == lexer.EOF || (!all && lx.Kind == lexer.Whitespace) {
			continue
		}
		fmt.Fprintf(w, "%5d:%-4d %-10s %q\n", lx.Pos.Line, lx.Pos.Column, lx.Kind, lx.Text)
	}
}

package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Options controls reporter behavior.
type Options struct {
	PrintSourceLines bool // show the source line with a caret under the token
	PrintLinterName  bool // append the (utilcss) suffix
	UseColors        bool // force colors; otherwise auto-detected
}

// Reporter prints issues in file:line:col lint format.
type Reporter struct {
	w    io.Writer
	opts Options
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, opts Options) *Reporter {
	if !opts.UseColors {
		opts.UseColors = detectColors()
	}
	return &Reporter{w: w, opts: opts}
}

// detectColors enables color output on TTYs and color-capable CI.
func detectColors() bool {
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if info, _ := os.Stdout.Stat(); info != nil && (info.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

// PrintIssues outputs issues sorted by file, line, then column.
func (r *Reporter) PrintIssues(issues []Issue) {
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
	for _, issue := range issues {
		r.printIssue(issue)
	}
}

func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.opts.PrintLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.opts.UseColors),
		issue.Text,
		RenderStyle(StyleGray, linterSuffix, r.opts.UseColors))

	if r.opts.PrintSourceLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.opts.UseColors))
	}
}

// buildCaretIndicator creates the "^" marker aligned with the column,
// reproducing tabs from the source line so alignment survives.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}
	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}
	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}
	return padding.String() + "^"
}

// PrintSummary outputs the issue count breakdown after the issues.
func (r *Reporter) PrintSummary(issues []Issue) {
	var errors, warnings int
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	fmt.Fprintln(r.w, "")
	switch {
	case errors > 0 && warnings > 0:
		fmt.Fprintf(r.w, "%s (%s, %s)\n",
			pluralizeCount(len(issues), "issue", "issues"),
			pluralizeCount(errors, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"))
	default:
		fmt.Fprintf(r.w, "%s\n", pluralizeCount(len(issues), "issue", "issues"))
	}
}

// pluralizeCount formats a count with its singular or plural noun.
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors reports whether color output is enabled.
func (r *Reporter) UseColors() bool {
	return r.opts.UseColors
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/utilcss"
	"github.com/yacobolo/utilcss/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check utility class usage without writing CSS",
	Long: `Resolve every utility class found in the scanned markup and report
those that fail: unknown utilities, malformed arbitrary values, and
invalid variant combinations. Output uses the file:line:col format
lint tooling understands.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.StringSlice("content", nil, "Glob patterns for markup files to scan")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("format", "issues", "Output format: issues|json")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (utilcss) suffix on issues")
}

func runCheck(_ *cobra.Command, _ []string) error {
	quiet := getBoolWithFallback("quiet", "quiet", false)

	uses, stats, err := utilcss.ScanFiles(contentPatterns())
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	classes := make([]string, 0, len(uses))
	for _, use := range uses {
		classes = append(classes, use.Class)
	}

	engine := utilcss.New(buildEngineConfig())
	result := engine.Generate(classes)

	issues := buildIssues(uses, result)
	rules := 0
	for _, cr := range result.Classes {
		rules += len(cr.Selectors)
	}

	if !quiet {
		format := getStringWithFallback("format", "check.format", "issues")
		switch format {
		case "json":
			if err := report.WriteJSON(os.Stdout, issues, stats.FilesScanned, len(result.Classes), rules); err != nil {
				return fmt.Errorf("writing JSON: %w", err)
			}
		default:
			r := report.NewReporter(os.Stdout, report.Options{
				PrintSourceLines: getBoolWithFallback("print-lines", "check.print-lines", true),
				PrintLinterName:  getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
				UseColors:        getBoolWithFallback("color", "color", false),
			})
			r.PrintIssues(issues)
			r.PrintSummary(issues)
		}
	}

	// Soft gate: errors always fail, warnings only under --strict.
	strict := getBoolWithFallback("strict", "check.strict", false)
	errorCount := 0
	for _, issue := range issues {
		if issue.Severity == report.SeverityError {
			errorCount++
		}
	}
	if errorCount > 0 || (strict && len(issues) > 0) {
		os.Exit(1)
	}
	return nil
}

// buildIssues converts failed class results back to their source
// locations. Every use of a failing class gets its own issue so the
// caret points at each occurrence.
func buildIssues(uses []utilcss.ClassUse, result *utilcss.Result) []report.Issue {
	var issues []report.Issue
	for _, use := range uses {
		cr, ok := result.Classes[use.Class]
		if !ok || cr.Err == nil {
			continue
		}
		issues = append(issues, report.Issue{
			FromLinter:  report.Linter,
			Text:        cr.Err.Error(),
			Severity:    severityFor(cr.Err),
			SourceLines: []string{use.Location.Text},
			Pos: report.IssuePos{
				Filename: use.Location.File,
				Line:     use.Location.Line,
				Column:   use.Location.Column,
			},
		})
	}
	return issues
}

// severityFor grades failures: a token nothing recognizes may simply
// belong to another styling system, so unknown utilities warn while
// structurally broken classes error.
func severityFor(err error) string {
	var unknown *utilcss.UnknownUtilityError
	if errors.As(err, &unknown) {
		return report.SeverityWarning
	}
	return report.SeverityError
}

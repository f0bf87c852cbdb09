package report

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the structured export schema for tooling integration.
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level counts for one check run.
type JSONSummary struct {
	TotalIssues    int `json:"total_issues"`
	Errors         int `json:"errors"`
	Warnings       int `json:"warnings"`
	FilesScanned   int `json:"files_scanned"`
	ClassesChecked int `json:"classes_checked"`
	RulesEmitted   int `json:"rules_emitted"`
}

// JSONIssue is one issue in the export.
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// WriteJSON writes issues and run counts as indented JSON.
func WriteJSON(w io.Writer, issues []Issue, filesScanned, classesChecked, rulesEmitted int) error {
	out := JSONOutput{
		Version:   "1",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:    len(issues),
			FilesScanned:   filesScanned,
			ClassesChecked: classesChecked,
			RulesEmitted:   rulesEmitted,
		},
	}
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			out.Summary.Errors++
		case SeverityWarning:
			out.Summary.Warnings++
		}
		ji := JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
		}
		if len(issue.SourceLines) > 0 {
			ji.Source = issue.SourceLines[0]
		}
		out.Issues = append(out.Issues, ji)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

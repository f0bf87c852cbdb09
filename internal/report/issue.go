// Package report formats per-class generation failures for terminals
// and machine consumers, in the file:line:col style lint tools use.
package report

// Issue is a single reportable problem with a class token found in a
// scanned source file.
type Issue struct {
	FromLinter  string   `json:"FromLinter"` // always "utilcss"
	Text        string   `json:"Text"`       // `unknown utility "p-99"`
	Severity    string   `json:"Severity"`   // "error" or "warning"
	SourceLines []string `json:"SourceLines"`
	Pos         IssuePos `json:"Pos"`
}

// IssuePos specifies the exact location of an issue.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based, exact start of the class token
}

// Severity constants.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Linter is the FromLinter value stamped on every issue.
const Linter = "utilcss"

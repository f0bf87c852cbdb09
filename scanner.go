package utilcss

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ClassUse is one utility class token found in a scanned source file.
type ClassUse struct {
	Class    string       // single class token: "dark:bg-blue-500"
	Location FileLocation // where it was found
}

// FileLocation tracks where a class token was found.
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column of the class token
	Text   string // full line content for source display
}

// ScanStats tracks file scanning statistics.
type ScanStats struct {
	FilesDiscovered int // total files found by glob patterns
	FilesScanned    int // files actually scanned (after filtering)
	FilesSkipped    int // files skipped due to filtering
}

// scanPattern captures one syntax that carries a class attribute value.
type scanPattern struct {
	name  string
	regex *regexp.Regexp
}

var (
	// Patterns for finding class attribute values, most specific first.
	classPatterns = []scanPattern{
		{
			name:  "class attribute with double quotes",
			regex: regexp.MustCompile(`class="([^"]+)"`),
		},
		{
			name:  "class attribute with single quotes",
			regex: regexp.MustCompile(`class='([^']+)'`),
		},
		{
			name:  "class with string literal in braces",
			regex: regexp.MustCompile(`class=\{\s*"([^"]+)"`),
		},
		{
			name:  "templ.Classes with string",
			regex: regexp.MustCompile(`templ\.Classes\(\s*"([^"]+)"`),
		},
		{
			name:  "clsx-style helper call",
			regex: regexp.MustCompile(`[Cc]lass(?:Names?)?\(\s*"([^"]+)"`),
		},
	}

	commentPattern = regexp.MustCompile(`^\s*(//|<!--)`)

	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once. Gracefully degrades if
// .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// isGenerated reports whether a file looks machine-written; generated
// markup is skipped so the same class is not reported twice.
func isGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go") ||
		strings.HasSuffix(path, ".min.html")
}

// shouldSkipFile applies two filter layers: a fast generated-file
// suffix check, then .gitignore for paths inside the project.
func shouldSkipFile(path string) bool {
	if isGenerated(path) {
		return true
	}
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}
	return false
}

// ScanFiles scans files matching the given glob patterns and returns
// every class token found, in file and line order. Files that fail to
// open are skipped; the scan keeps going.
func ScanFiles(patterns []string) ([]ClassUse, ScanStats, error) {
	files, stats, err := expandGlobPatterns(patterns)
	if err != nil {
		return nil, stats, err
	}

	var uses []ClassUse
	for _, file := range files {
		found, err := scanFile(file)
		if err != nil {
			continue
		}
		uses = append(uses, found...)
	}
	return uses, stats, nil
}

// expandGlobPatterns expands globs to deduplicated file paths and
// tracks filter statistics.
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++
			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			seen[match] = true
			files = append(files, match)
			stats.FilesScanned++
		}
	}
	return files, stats, nil
}

// scanFile scans a single file line by line for class tokens.
func scanFile(path string) ([]ClassUse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var uses []ClassUse
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		uses = append(uses, extractClassesFromLine(line, lineNum, path)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return uses, nil
}

// extractClassesFromLine pulls individual class tokens out of every
// class-bearing attribute on the line.
func extractClassesFromLine(line string, lineNum int, file string) []ClassUse {
	if commentPattern.MatchString(line) {
		return nil
	}

	var uses []ClassUse
	for _, pattern := range classPatterns {
		matches := pattern.regex.FindAllStringSubmatchIndex(line, -1)
		for _, match := range matches {
			if len(match) < 4 {
				continue
			}
			value := line[match[2]:match[3]]
			for _, token := range strings.Fields(value) {
				col := FindClassColumn(line, token)
				if col == 0 {
					col = match[2] + 1
				}
				uses = append(uses, ClassUse{
					Class: token,
					Location: FileLocation{
						File:   file,
						Line:   lineNum,
						Column: col,
						Text:   line,
					},
				})
			}
		}
		if len(uses) > 0 {
			// The first matching pattern owns the line; trying the rest
			// would report the same attribute twice.
			break
		}
	}
	return uses
}

// FindClassColumn locates the 1-based column where class starts within
// line, preferring an occurrence inside a class attribute. Returns 0
// when the class cannot be located.
func FindClassColumn(line, class string) int {
	if attrIdx := strings.Index(line, "class="); attrIdx != -1 {
		if quoteIdx := strings.IndexAny(line[attrIdx:], `"'`); quoteIdx != -1 {
			start := attrIdx + quoteIdx + 1
			rest := line[start:]
			if end := strings.IndexAny(rest, `"'`); end != -1 {
				rest = rest[:end]
			}
			if idx := strings.Index(rest, class); idx != -1 {
				return start + idx + 1
			}
		}
	}
	if idx := strings.Index(line, `"`+class+`"`); idx != -1 {
		return idx + 2
	}
	if idx := strings.Index(line, class); idx != -1 {
		return idx + 1
	}
	return 0
}

// GetRelativePath returns path relative to the working directory when
// possible, for compact report output.
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}
	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}
	return rel
}

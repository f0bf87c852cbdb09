package utilcss

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindClassColumn(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		className string
		wantCol   int
	}{
		{
			name:      "single class",
			line:      `<div class="flex">`,
			className: "flex",
			wantCol:   13, // Position of 'f' in "flex"
		},
		{
			name:      "multiple classes - first",
			line:      `<div class="flex items-center">`,
			className: "flex",
			wantCol:   13,
		},
		{
			name:      "multiple classes - second",
			line:      `<div class="flex items-center">`,
			className: "items-center",
			wantCol:   18, // Position of 'i' in "items-center"
		},
		{
			name:      "with leading spaces",
			line:      `  <div class="p-4 hover:bg-blue-500">`,
			className: "hover:bg-blue-500",
			wantCol:   19,
		},
		{
			name:      "single quotes",
			line:      `<div class='p-4 dark:text-white'>`,
			className: "dark:text-white",
			wantCol:   17,
		},
		{
			name:      "class not found",
			line:      `<div class="flex">`,
			className: "nonexistent",
			wantCol:   0, // Returns 0 to signal fallback needed
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindClassColumn(tt.line, tt.className)
			require.Equal(t, tt.wantCol, got)
		})
	}
}

func TestExtractClassesFromLine(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantClasses []string
	}{
		{
			name:        "double quoted attribute",
			line:        `<div class="flex items-center p-4">`,
			wantClasses: []string{"flex", "items-center", "p-4"},
		},
		{
			name:        "single quoted attribute",
			line:        `<div class='dark:bg-blue-500'>`,
			wantClasses: []string{"dark:bg-blue-500"},
		},
		{
			name:        "braced string literal",
			line:        `<div class={ "p-4 hidden" }>`,
			wantClasses: []string{"p-4", "hidden"},
		},
		{
			name:        "templ.Classes call",
			line:        `templ.Classes("btn flex", extra)`,
			wantClasses: []string{"btn", "flex"},
		},
		{
			name:        "multiple attributes on one line",
			line:        `<a class="p-2"><span class="p-4"></span></a>`,
			wantClasses: []string{"p-2", "p-4"},
		},
		{
			name:        "comment lines are skipped",
			line:        `// <div class="flex">`,
			wantClasses: nil,
		},
		{
			name:        "html comment skipped",
			line:        `<!-- <div class="flex"> -->`,
			wantClasses: nil,
		},
		{
			name:        "no class attribute",
			line:        `<div id="main">`,
			wantClasses: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uses := extractClassesFromLine(tt.line, 1, "test.html")
			var classes []string
			for _, use := range uses {
				classes = append(classes, use.Class)
			}
			require.Equal(t, tt.wantClasses, classes)
		})
	}
}

func TestScanFiles(t *testing.T) {
	dir := t.TempDir()

	page := `<html>
<body>
	<div class="flex items-center">
		<button class="p-4 hover:bg-blue-500">Go</button>
	</div>
</body>
</html>
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page.html"), []byte(page), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.min.html"), []byte(`<div class="hidden">`), 0o644))

	uses, stats, err := ScanFiles([]string{filepath.Join(dir, "*.html")})
	require.NoError(t, err)

	require.Equal(t, 2, stats.FilesDiscovered)
	require.Equal(t, 1, stats.FilesScanned)
	require.Equal(t, 1, stats.FilesSkipped)

	var classes []string
	for _, use := range uses {
		classes = append(classes, use.Class)
	}
	require.Equal(t, []string{"flex", "items-center", "p-4", "hover:bg-blue-500"}, classes)

	// Locations carry line numbers and the source line text.
	require.Equal(t, 3, uses[0].Location.Line)
	require.Contains(t, uses[0].Location.Text, `class="flex items-center"`)
	require.Equal(t, 4, uses[2].Location.Line)
}

func TestIsGenerated(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"internal/web/sidebar_templ.go", true},
		{"internal/web/sidebar.templ.go", true},
		{"dist/index.min.html", true},
		{"internal/web/sidebar.templ", false},
		{"index.html", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, isGenerated(tt.path))
		})
	}
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yacobolo/utilcss"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate CSS from utility classes found in markup",
	Long: `Scan markup files for utility class tokens and generate the
corresponding stylesheet. Output is deterministic: the same class set
always produces byte-identical CSS.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringSlice("content", nil, "Glob patterns for markup files to scan")
	f.StringP("output", "o", "dist/utilities.css", "Output CSS file path")
	f.String("dark-selector", "", "Ancestor selector for the dark: variant")
	f.Bool("check", false, "Report per-class errors after generation")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	verbose := getBoolWithFallback("verbose", "verbose", false)
	quiet := getBoolWithFallback("quiet", "quiet", false)

	patterns := contentPatterns()
	uses, stats, err := utilcss.ScanFiles(patterns)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	if verbose && !quiet {
		fmt.Printf("Scanned %d files (%d skipped)\n", stats.FilesScanned, stats.FilesSkipped)
	}

	classes := make([]string, 0, len(uses))
	for _, use := range uses {
		classes = append(classes, use.Class)
	}

	engine := utilcss.New(buildEngineConfig())
	result := engine.Generate(classes)

	output := getStringWithFallback("output", "generate.output", "dist/utilities.css")
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(output, []byte(result.CSS), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	failed := result.Errs()
	if !quiet {
		fmt.Printf("Wrote %s\n", output)
		fmt.Printf("  Files scanned:   %d\n", stats.FilesScanned)
		fmt.Printf("  Classes found:   %d\n", len(result.Classes))
		fmt.Printf("  Classes failed:  %d\n", len(failed))

		for _, cr := range failed {
			fmt.Printf("  Warning: %s: %v\n", cr.Class, cr.Err)
		}
	}

	// Run check after generate if --check flag set.
	check, _ := cmd.Flags().GetBool("check")
	if check {
		return runCheck(checkCmd, nil)
	}

	return nil
}

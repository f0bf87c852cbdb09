package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .utilcss.yaml config file",
	Long:  `Create a .utilcss.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".utilcss.yaml"); err == nil && !force {
			return fmt.Errorf(".utilcss.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".utilcss.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .utilcss.yaml")
		return nil
	},
}

const defaultConfig = `# utilcss configuration
# Docs: https://github.com/yacobolo/utilcss

# Shared settings
verbose: false

# Markup to scan for utility classes
content:
  - "**/*.html"
  - "**/*.templ"

# Theme overrides
theme:
  dark-selector: ".dark"
  breakpoints:
    sm: "640px"
    md: "768px"
    lg: "1024px"
    xl: "1280px"
    2xl: "1536px"

# Generation settings
generate:
  output: dist/utilities.css

# Check settings
check:
  strict: false
  format: issues           # issues | json
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}

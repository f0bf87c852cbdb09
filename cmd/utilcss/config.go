package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/utilcss"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file >
// defaults. It must be called after cobra parses flags (in PreRunE or
// RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".utilcss.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence, only flags explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a
// cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (UTILCSS_* prefix)
	if err := k.Load(env.Provider("UTILCSS_", ".", func(s string) string {
		// UTILCSS_GENERATE_OUTPUT -> generate.output
		// UTILCSS_CHECK_STRICT -> check.strict
		// UTILCSS_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "UTILCSS_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildEngineConfig constructs the library's engine Config from koanf
// state: custom breakpoints and the dark-mode ancestor selector come
// from the config file.
func buildEngineConfig() utilcss.Config {
	config := utilcss.Config{
		DarkSelector: getStringWithFallback("dark-selector", "theme.dark-selector", ".dark"),
	}

	if bp := k.StringMap("theme.breakpoints"); len(bp) > 0 {
		config.Breakpoints = utilcss.Breakpoints(bp)
	}

	return config
}

// contentPatterns returns the glob patterns for markup files to scan.
func contentPatterns() []string {
	if paths := k.Strings("content"); len(paths) > 0 {
		return paths
	}
	if paths := k.Strings("generate.content"); len(paths) > 0 {
		return paths
	}
	return []string{
		"**/*.html",
		"**/*.templ",
	}
}

// getStringWithFallback checks the flag key first, then the config
// file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file
// key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

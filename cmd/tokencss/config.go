package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gitlab.com/tozd/go/errors"

	"github.com/yacobolo/tokencss"
	"github.com/yacobolo/tokencss/internal/cssgen"
)

const defaultConfigPath = ".tokencss.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Only flags set on the command line, so unset flag defaults never
	// shadow config file keys.
	fs := cmd.Flags()
	provider := posflag.ProviderWithFlag(fs, ".", nil, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return errors.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return errors.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("TOKENCSS_", ".", func(s string) string {
		// TOKENCSS_GENERATE_SOURCE -> generate.source
		// TOKENCSS_LINT_STRICT -> lint.strict
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "TOKENCSS_")),
			"_", ".",
		)
	}), nil); err != nil {
		return errors.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildGenerateConfig constructs the library's Config struct from koanf state.
func buildGenerateConfig() (tokencss.Config, error) {
	format, ok := cssgen.ParseFormat(getStringWithFallback("format", "generate.format", string(cssgen.FormatCompact)))
	if !ok {
		return tokencss.Config{}, errors.Errorf("unknown format %q (want compact or expanded)",
			getStringWithFallback("format", "generate.format", ""))
	}

	return tokencss.Config{
		SourceDir:   getStringWithFallback("source", "generate.source", "design/tokens"),
		OutputDir:   getStringWithFallback("output-dir", "generate.output-dir", "web/styles/tokens"),
		Includes:    getStringsWithFallback("include", "generate.include", tokencss.DefaultIncludes),
		Layers:      getStringsWithFallback("layer", "layers", nil),
		Namespaces:  getStringsWithFallback("namespace", "namespaces", nil),
		Merge:       getBoolWithFallback("merge", "generate.merge", false),
		Prefix:      getStringWithFallback("prefix", "generate.prefix", ""),
		Format:      format,
		NoUtilities: !getBoolWithFallback("utilities", "generate.utilities", true),
		Jobs:        getIntWithFallback("jobs", "generate.jobs", 0),
	}, nil
}

// buildLintConfig constructs the library's LintConfig struct from koanf state.
// Without a configured stylesheet every stylesheet in outputDir declares tokens,
// which covers both merged and split output.
func buildLintConfig(outputDir string) tokencss.LintConfig {
	return tokencss.LintConfig{
		Stylesheets:        getStylesheets([]string{filepath.Join(outputDir, "*.css")}),
		ScanPaths:          getStringsWithFallback("paths", "lint.paths", []string{"web/styles/**/*.css"}),
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		Threshold:          getFloat64WithFallback("threshold", "lint.threshold", 0.0),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
	}
}

// buildReportOptions reads printer settings for lint output.
func buildReportOptions() tokencss.ReportOptions {
	return tokencss.ReportOptions{
		PrintIssuedLines: getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback is getStringWithFallback for list keys.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getStylesheets reads the token stylesheets from the flag, then
// lint.stylesheet as a list or a single path.
func getStylesheets(defaultVal []string) []string {
	if v := getStringsWithFallback("stylesheet", "lint.stylesheet", nil); len(v) > 0 {
		return v
	}
	if v := k.String("lint.stylesheet"); v != "" {
		return []string{v}
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getFloat64WithFallback checks the flag key first, then the config file key, then returns the default.
func getFloat64WithFallback(flagKey, configKey string, defaultVal float64) float64 {
	if k.Exists(flagKey) {
		return k.Float64(flagKey)
	}
	if k.Exists(configKey) {
		return k.Float64(configKey)
	}
	return defaultVal
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/yacobolo/tokencss"
	"github.com/yacobolo/tokencss/internal/cssgen"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint design token usage in stylesheets",
	Long: `Check that stylesheets reference generated custom properties through var().
Detects unknown token references and hardcoded values that match a token.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		outputDir := getStringWithFallback("output-dir", "generate.output-dir", "web/styles/tokens")
		return runLint(cmd, buildLintConfig(outputDir))
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("stylesheet", nil, "Token stylesheets or globs declaring the custom properties (default <output-dir>/*.css)")
	f.StringSlice("paths", []string{"web/styles/**/*.css"}, "Stylesheet patterns to scan")
	f.String("output-dir", "web/styles/tokens", "Output directory containing generated stylesheets")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Float64("threshold", 0.0, "Minimum adoption percentage for strict mode")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (tokenlint) suffix on issues")
}

// runLint is shared between `tokencss lint` and `tokencss generate --lint`.
func runLint(cmd *cobra.Command, lintConfig tokencss.LintConfig) error {
	ctx := withLogger(cmd.Context())
	lintResult, err := tokencss.Lint(ctx, lintConfig)
	if err != nil {
		return errors.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := tokencss.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		if err := tokencss.WriteOutput(cmd.OutOrStdout(), lintResult, format, buildReportOptions()); err != nil {
			return errors.Errorf("writing lint output: %w", err)
		}
	}

	// Exit code logic - "Soft Gate" approach
	if err := tokencss.CheckGate(lintResult, lintConfig); err != nil {
		if !quiet && lintConfig.Strict {
			opts := buildReportOptions()
			fmt.Fprintf(os.Stderr, "\n%s\n", cssgen.RenderStyle(cssgen.StyleRed, err.Error(), cssgen.ShouldUseColors(opts)))
		}
		os.Exit(1)
	}

	return nil
}

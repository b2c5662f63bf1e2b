package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/yacobolo/tokencss"
	"github.com/yacobolo/tokencss/internal/cssgen"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate CSS custom properties from design token files",
	Long: `Resolve design token files and write CSS custom properties plus utility classes.
Each token file becomes one stylesheet, or a single tokens.css with --merge.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("source", "design/tokens", "Source token directory")
	f.String("output-dir", "web/styles/tokens", "Output directory for generated stylesheets")
	f.StringSlice("include", nil, "Glob patterns for token files, relative to --source")
	f.Bool("merge", false, "Merge all token files into a single tokens.css")
	f.String("prefix", "", "Custom property prefix (ds -> --ds-color-primary)")
	f.String("format", "compact", "Utility rule layout: compact|expanded")
	f.Bool("utilities", true, "Emit utility classes after :root")
	f.Int("jobs", 0, "Stylesheets built in parallel (0 = one per CPU)")
	f.Bool("lint", false, "Run linter after generation")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config, err := buildGenerateConfig()
	if err != nil {
		return err
	}

	ctx := withLogger(cmd.Context())
	result, err := tokencss.Generate(ctx, config)
	if err != nil {
		return errors.Errorf("generation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		useColors := cssgen.ShouldUseColors(cssgen.ReportOptions{UseColors: getBoolWithFallback("color", "color", false)})
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%s %d stylesheets in %s\n",
			cssgen.RenderStyle(cssgen.StyleGreen, "Generated", useColors), len(result.Outputs), config.OutputDir)
		fmt.Fprintf(out, "  Files scanned: %d\n", result.FilesScanned)
		fmt.Fprintf(out, "  Tokens: %d\n", result.Tokens)
		if result.Fallbacks > 0 {
			fmt.Fprintf(out, "  Fallbacks: %s (%d circular, %d unresolved, %d malformed)\n",
				cssgen.RenderStyle(cssgen.StyleYellow, fmt.Sprint(result.Fallbacks), useColors),
				result.Cycles, result.Unresolved, result.Malformed)
		}

		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  %s %s\n", cssgen.RenderStyle(cssgen.StyleYellow, "Warning:", useColors), w)
		}
	}

	// Run lint after generate if --lint flag set, against the stylesheets just written
	lint, _ := cmd.Flags().GetBool("lint")
	if lint {
		lintConfig := buildLintConfig(config.OutputDir)
		lintConfig.Stylesheets = generatedStylesheets(config.OutputDir, result.Outputs)
		return runLint(cmd, lintConfig)
	}

	return nil
}

// generatedStylesheets joins output names to the output directory
func generatedStylesheets(outputDir string, outputs []string) []string {
	sheets := make([]string, 0, len(outputs))
	for _, name := range outputs {
		sheets = append(sheets, filepath.Join(outputDir, name))
	}
	return sheets
}

// Package tokencss turns design token files into CSS custom properties and
// lints stylesheets that consume them.
//
// # Generation
//
// Token files (JSON, YAML or TOML) are discovered under a source directory,
// aliases such as "{color.blue.50}" are resolved across theme layers, and
// every token is written as a custom property plus utility classes:
//
//	config := tokencss.Config{
//		SourceDir: "design/tokens",
//		OutputDir: "web/styles/tokens",
//		Layers:    []string{"dark", "light"},
//	}
//	result, err := tokencss.Generate(ctx, config)
//
// A token whose alias chain is broken or circular never aborts generation;
// it gets a fallback value derived from its type and path, and a warning is
// logged through the zerolog logger attached to ctx.
//
// # Linting
//
// Lint stylesheets against the generated custom properties:
//
//	lintConfig := tokencss.LintConfig{
//		Stylesheets: []string{"web/styles/tokens/*.css"},
//		ScanPaths:   []string{"web/styles/**/*.css"},
//	}
//	result, err := tokencss.Lint(ctx, lintConfig)
//
// # CLI Tool
//
// Install with:
//
//	go install github.com/yacobolo/tokencss/cmd/tokencss@latest
package tokencss

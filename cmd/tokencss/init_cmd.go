package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .tokencss.yaml config file",
	Long:  `Create a .tokencss.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return errors.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0o644); err != nil {
			return errors.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# tokencss configuration
# Docs: https://github.com/yacobolo/tokencss

# Shared settings
verbose: false
namespaces:
  - usa
layers: []               # theme keys, highest precedence first: [dark, light]

# Generation settings
generate:
  source: design/tokens
  output-dir: web/styles/tokens
  include:
    - "**/*.json"
    - "**/*.yaml"
    - "**/*.yml"
    - "**/*.toml"
  merge: false             # true = single tokens.css
  prefix: ""               # "ds" -> --ds-color-primary
  format: compact          # compact | expanded
  utilities: true
  jobs: 0                  # 0 = one per CPU

# Linting settings
lint:
  # stylesheet: []         # token stylesheets or globs, default <output-dir>/*.css
  paths:
    - "web/styles/**/*.css"
  strict: false
  threshold: 0.0
  output-format: issues    # issues | summary | full | json | markdown
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}

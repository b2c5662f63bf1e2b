package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/yacobolo/tokencss"
	"github.com/yacobolo/tokencss/internal/cssgen"
	"github.com/yacobolo/tokencss/internal/token"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <token-path>",
	Short: "Show how one token resolves",
	Long: `Trace a token path through every token file: the layer that defines it,
the alias chain that was followed, and the value generate would emit.`,
	Example: `  tokencss resolve color.primary
  tokencss resolve usa.font-size.reading.sm --layer dark --json`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := buildGenerateConfig()
		if err != nil {
			return err
		}

		result, err := tokencss.Resolve(withLogger(cmd.Context()), config, args[0])
		if err != nil {
			return errors.Errorf("resolve failed: %w", err)
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			return writeResolveJSON(cmd.OutOrStdout(), result)
		}
		useColors := cssgen.ShouldUseColors(cssgen.ReportOptions{UseColors: getBoolWithFallback("color", "color", false)})
		writeResolveText(cmd.OutOrStdout(), result, config.Prefix, useColors)
		return nil
	},
}

func init() {
	resolveCmd.Flags().Bool("json", false, "Print the resolution as JSON")
	resolveCmd.Flags().String("source", "design/tokens", "Source token directory")
	resolveCmd.Flags().StringSlice("include", nil, "Glob patterns for token files, relative to --source")
	resolveCmd.Flags().String("prefix", "", "Custom property prefix used in the emitted declaration")
}

type resolveOutput struct {
	Path     string   `json:"path"`
	Name     string   `json:"name,omitempty"`
	Type     string   `json:"type"`
	Status   string   `json:"status"`
	Layer    string   `json:"layer,omitempty"`
	Chain    []string `json:"chain"`
	FailedAt string   `json:"failed_at,omitempty"`
	Value    string   `json:"value,omitempty"`
	Emitted  string   `json:"emitted,omitempty"`
	Fallback bool     `json:"fallback"`
	Sources  []string `json:"sources"`
}

func writeResolveJSON(w io.Writer, r *tokencss.ResolveResult) error {
	out := resolveOutput{
		Path:     r.Path,
		Name:     r.Name,
		Type:     r.Type.String(),
		Status:   r.Status.String(),
		Layer:    r.Layer,
		Chain:    r.Chain,
		FailedAt: r.At,
		Value:    r.Value,
		Emitted:  r.Emitted,
		Fallback: r.Fallback,
		Sources:  r.Sources,
	}
	if out.Chain == nil {
		out.Chain = []string{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeResolveText(w io.Writer, r *tokencss.ResolveResult, prefix string, useColors bool) {
	status := r.Status.String()
	switch r.Status {
	case token.StatusResolved:
		status = cssgen.RenderStyle(cssgen.StyleGreen, status, useColors)
	default:
		status = cssgen.RenderStyle(cssgen.StyleRed, status, useColors)
		if r.At != "" {
			status += " at " + r.At
		}
	}

	fmt.Fprintln(w, cssgen.RenderStyle(cssgen.StyleCyan, r.Path, useColors))
	fmt.Fprintf(w, "  status:  %s\n", status)
	if r.Layer != "" {
		fmt.Fprintf(w, "  layer:   %s\n", r.Layer)
	}
	if len(r.Chain) > 0 {
		fmt.Fprintf(w, "  chain:   %s\n", strings.Join(r.Chain, " -> "))
	}
	if r.Status == token.StatusResolved {
		fmt.Fprintf(w, "  value:   %s\n", r.Value)
	}
	if r.Name != "" {
		emitted := fmt.Sprintf("%s: %s;", cssgen.PropertyName(prefix, r.Name), r.Emitted)
		if r.Fallback {
			emitted += " " + cssgen.RenderStyle(cssgen.StyleYellow, "(fallback)", useColors)
		}
		fmt.Fprintf(w, "  type:    %s\n", r.Type)
		fmt.Fprintf(w, "  emitted: %s\n", emitted)
	}
	fmt.Fprintf(w, "  %s\n", cssgen.RenderStyle(cssgen.StyleGray, "sources: "+strings.Join(r.Sources, ", "), useColors))
}

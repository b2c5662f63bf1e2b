package tokencss

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/yacobolo/tokencss/internal/token"
)

// ResolveResult explains how one token path resolves across all token files
type ResolveResult struct {
	token.Resolution

	Name     string // canonical name, empty when no file defines the path
	Type     token.Type
	Emitted  string // value Generate would write, fallbacks included
	Fallback bool
	Sources  []string
}

// Resolve traces a single token path through the merged token files of
// config. Resolution failures are part of the result, not errors.
func Resolve(ctx context.Context, config Config, tokenPath string) (*ResolveResult, error) {
	log := zerolog.Ctx(ctx)
	fsys := filesystem(config.Fs)

	files, _, err := scanTokenFiles(fsys, config)
	if err != nil {
		return nil, errors.Errorf("scan failed: %w", err)
	}
	decoded, _, err := decodeFiles(ctx, fsys, files, config)
	if err != nil {
		return nil, errors.Errorf("decode failed: %w", err)
	}
	if len(decoded) == 0 {
		return nil, errors.Errorf("no token files found in %q", config.SourceDir)
	}

	sheet := mergeFiles(decoded, config)
	resolver := token.NewResolver(sheet.layers,
		token.WithLogger(*log),
		token.WithNamespaces(config.namespaces()...))

	result := &ResolveResult{
		Resolution: resolver.Trace(tokenPath),
		Sources:    sheet.sources,
	}

	set := token.Build(sheet.layers, token.BuildOptions{Namespaces: config.namespaces()})
	if t, ok := set.Lookup(result.Path); ok {
		result.Name = t.Name
		result.Type = t.Type
		result.Emitted = t.Value
		result.Fallback = t.Fallback
	}
	return result, nil
}

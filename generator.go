package tokencss

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/yacobolo/tokencss/internal/cssgen"
	"github.com/yacobolo/tokencss/internal/token"
)

// decodedFile is one token file after decoding
type decodedFile struct {
	path   string
	layers []token.Layer
}

// stylesheet is one output and the layers it is built from
type stylesheet struct {
	name    string // relative to OutputDir
	sources []string
	layers  []token.Layer
	css     string
	stats   token.Stats
}

// Generate is the main entry point: it discovers token files under
// config.SourceDir, resolves them and writes one stylesheet per file, or a
// single tokens.css in merge mode. The logger comes from ctx.
func Generate(ctx context.Context, config Config) (*GenerateResult, error) {
	log := zerolog.Ctx(ctx)
	fsys := filesystem(config.Fs)
	result := &GenerateResult{}

	// 1. Discover token files
	files, stats, err := scanTokenFiles(fsys, config)
	if err != nil {
		return nil, errors.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = len(files)
	log.Debug().
		Int("files", stats.FilesScanned).
		Int("skipped", stats.FilesSkipped).
		Str("source", config.SourceDir).
		Msg("discovered token files")

	// 2. Decode all files
	decoded, warnings, err := decodeFiles(ctx, fsys, files, config)
	if err != nil {
		return nil, errors.Errorf("decode failed: %w", err)
	}
	result.Warnings = warnings

	// 3. Group into output stylesheets
	var sheets []*stylesheet
	if config.Merge {
		if len(decoded) > 0 {
			sheets = []*stylesheet{mergeFiles(decoded, config)}
		}
	} else {
		var collisions []string
		sheets, collisions = splitFiles(decoded, config)
		result.Warnings = append(result.Warnings, collisions...)
	}

	// 4. Resolve and emit
	if err := buildStylesheets(ctx, sheets, config); err != nil {
		return nil, errors.Errorf("build failed: %w", err)
	}
	for _, s := range sheets {
		result.addStats(s.stats)
		if s.stats.Fallbacks > 0 {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %d of %d tokens use fallback values",
				s.name, s.stats.Fallbacks, s.stats.Total))
		}
	}

	// 5. Write stylesheets
	var writeErr error
	for _, s := range sheets {
		if err := writeStylesheet(fsys, config.OutputDir, s); err != nil {
			writeErr = multierr.Append(writeErr, err)
			continue
		}
		result.Outputs = append(result.Outputs, s.name)
		log.Debug().Str("output", s.name).Int("tokens", s.stats.Total).Msg("wrote stylesheet")
	}
	if writeErr != nil {
		return result, errors.Errorf("write failed: %w", writeErr)
	}

	return result, nil
}

// scanTokenFiles finds all token files matching the includes under SourceDir
func scanTokenFiles(fsys afero.Fs, config Config) ([]string, ScanStats, error) {
	source := filepath.ToSlash(config.SourceDir)
	if source == "" {
		source = "."
	}
	patterns := make([]string, 0, len(config.includes()))
	for _, include := range config.includes() {
		patterns = append(patterns, path.Join(source, include))
	}
	return expandGlobPatterns(fsys, patterns)
}

// decodeFiles reads and decodes files in parallel. A file that cannot be read
// or parsed becomes a warning and is left out.
func decodeFiles(ctx context.Context, fsys afero.Fs, files []string, config Config) ([]decodedFile, []string, error) {
	layers := make([][]token.Layer, len(files))
	failures := make([]error, len(files))

	opts := DecodeOptions{Layers: config.Layers, Namespaces: config.namespaces()}
	err := parallel(ctx, config.Jobs, len(files), func(i int) error {
		data, err := afero.ReadFile(fsys, files[i])
		if err != nil {
			failures[i] = err
			return nil
		}
		layers[i], failures[i] = DecodeTokens(files[i], data, opts)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	var decoded []decodedFile
	var warnings []string
	for i, file := range files {
		if failures[i] != nil {
			zerolog.Ctx(ctx).Warn().Err(failures[i]).Str("file", file).Msg("skipping token file")
			warnings = append(warnings, fmt.Sprintf("Failed to parse %s: %v", file, failures[i]))
			continue
		}
		decoded = append(decoded, decodedFile{path: file, layers: layers[i]})
	}
	return decoded, warnings, nil
}

// mergeFiles deep-merges every file into one set of layers. Later files
// override earlier ones; layer order follows the configured precedence.
func mergeFiles(files []decodedFile, config Config) *stylesheet {
	names := append(append([]string(nil), config.Layers...), DefaultLayer)
	trees := make(map[string]*token.Tree)
	sheet := &stylesheet{name: MergedOutput}

	for _, f := range files {
		sheet.sources = append(sheet.sources, f.path)
		for _, layer := range f.layers {
			t, ok := trees[layer.Name]
			if !ok {
				t = token.NewTree(config.namespaces()...)
				trees[layer.Name] = t
			}
			t.Merge(layer.Tree)
		}
	}

	seen := make(map[string]bool)
	for _, name := range names {
		if t, ok := trees[name]; ok && !seen[name] {
			seen[name] = true
			sheet.layers = append(sheet.layers, token.Layer{Name: name, Tree: t})
		}
	}
	return sheet
}

// splitFiles maps each file to its own stylesheet: tokens/theme.json -> theme.css
func splitFiles(files []decodedFile, config Config) ([]*stylesheet, []string) {
	var sheets []*stylesheet
	var warnings []string
	owner := make(map[string]string)

	for _, f := range files {
		name := outputName(config.SourceDir, f.path)
		if prev, taken := owner[name]; taken {
			warnings = append(warnings, fmt.Sprintf("%s and %s both produce %s; skipping %s", prev, f.path, name, f.path))
			continue
		}
		owner[name] = f.path
		sheets = append(sheets, &stylesheet{name: name, sources: []string{f.path}, layers: f.layers})
	}
	return sheets, warnings
}

func outputName(sourceDir, file string) string {
	rel := file
	if sourceDir != "" && sourceDir != "." {
		if r, err := filepath.Rel(filepath.FromSlash(sourceDir), filepath.FromSlash(file)); err == nil {
			rel = filepath.ToSlash(r)
		}
	}
	return strings.TrimSuffix(rel, path.Ext(rel)) + ".css"
}

// buildStylesheets resolves and emits every stylesheet in parallel. Each
// build reads only its own layers, so results land in the stylesheet itself.
func buildStylesheets(ctx context.Context, sheets []*stylesheet, config Config) error {
	log := zerolog.Ctx(ctx)
	emit := cssgen.EmitOptions{
		Prefix:      config.Prefix,
		Format:      config.Format,
		NoUtilities: config.NoUtilities,
	}

	return parallel(ctx, config.Jobs, len(sheets), func(i int) error {
		s := sheets[i]
		set := token.Build(s.layers, token.BuildOptions{
			Namespaces: config.namespaces(),
			Logger:     log.With().Str("output", s.name).Logger(),
		})

		opts := emit
		opts.Header = header(s.sources)
		s.css = cssgen.Emit(set.Tokens(), opts)
		s.stats = set.Stats()
		return nil
	})
}

func header(sources []string) string {
	if len(sources) == 1 {
		return generatedMarker + "\nSource: " + sources[0]
	}
	return generatedMarker + "\nSources:\n  " + strings.Join(sources, "\n  ")
}

func writeStylesheet(fsys afero.Fs, outputDir string, s *stylesheet) error {
	target := filepath.Join(outputDir, filepath.FromSlash(s.name))
	if err := fsys.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.Errorf("create %s: %w", filepath.Dir(target), err)
	}
	if err := afero.WriteFile(fsys, target, []byte(s.css), 0o644); err != nil {
		return errors.Errorf("write %s: %w", target, err)
	}
	return nil
}

// parallel runs fn for indexes 0..n-1 with at most jobs running at once.
// jobs <= 0 means GOMAXPROCS.
func parallel(ctx context.Context, jobs, n int, fn func(i int) error) error {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, n)))

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			return fn(i)
		})
	}
	return g.Wait()
}

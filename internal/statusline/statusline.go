// Package statusline turns one status document from Claude Code into one line
// of text. Segments render independently; whatever has nothing to show is
// dropped, and the survivors are joined in configured order.
package statusline

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/facetline/facet/internal/cache"
	"github.com/facetline/facet/internal/config"
	"github.com/facetline/facet/internal/logging"
	"github.com/facetline/facet/internal/segment"
	"github.com/facetline/facet/internal/theme"
	"github.com/facetline/facet/internal/vcs"
)

// segmentTimeout bounds each segment's render, so one slow git call cannot
// stall the host's refresh.
const segmentTimeout = 500 * time.Millisecond

// Renderer composes the statusline from registered segments.
type Renderer struct {
	input    Input
	cfg      config.Config
	registry *segment.Registry
	log      *zap.Logger
}

// Option customizes a Renderer, mainly for tests.
type Option func(*options)

type options struct {
	resolver vcs.Resolver
	theme    *theme.Theme
	log      *zap.Logger
}

// WithResolver substitutes the branch resolver.
func WithResolver(r vcs.Resolver) Option {
	return func(o *options) { o.resolver = r }
}

// WithTheme substitutes the theme.
func WithTheme(th *theme.Theme) Option {
	return func(o *options) { o.theme = th }
}

// WithLogger substitutes the debug logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// New builds a Renderer for one input document.
func New(input Input, cfg config.Config, opts ...Option) *Renderer {
	o := options{
		resolver: vcs.Git{},
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.theme == nil {
		o.theme = theme.New(cfg.ColorEnabled(), cfg.Icons)
	}

	c := cache.New()
	reg := segment.NewRegistry()
	reg.Register(segment.NewModel(o.theme))
	reg.Register(segment.NewDir(o.theme))
	reg.Register(segment.NewGit(o.resolver, c, o.theme, cfg.Git.ShowDirty))
	reg.Register(segment.NewContextPct(o.theme, cfg.Context.WindowSize))
	reg.Register(segment.NewDiff(o.theme))
	reg.Register(segment.NewCost(o.theme))

	return &Renderer{
		input:    input,
		cfg:      cfg,
		registry: reg,
		log:      o.log,
	}
}

// Registry exposes the segment registry (used by the segments subcommand).
func (r *Renderer) Registry() *segment.Registry {
	return r.registry
}

// Render produces the statusline. Segments run concurrently but the output
// preserves the configured order, so identical inputs always yield identical
// lines.
func (r *Renderer) Render(ctx context.Context) string {
	in := segment.Input{
		Model:          r.input.Model.DisplayName,
		CurrentDir:     r.input.Workspace.CurrentDir,
		ProjectDir:     r.input.Workspace.ProjectDir,
		TranscriptPath: r.input.TranscriptPath,
		CostUSD:        r.input.Cost.TotalCostUSD,
	}

	names := r.cfg.Segments
	results := make([]string, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		seg := r.registry.Get(name)
		if seg == nil {
			r.log.Debug("unknown segment", zap.String("name", name))
			continue
		}
		g.Go(func() error {
			sctx, cancel := context.WithTimeout(ctx, segmentTimeout)
			defer cancel()

			start := time.Now()
			out, err := seg.Render(sctx, in)
			if err != nil {
				// Optional-source failures only cost the segment.
				r.log.Debug("segment failed",
					zap.String("name", name),
					zap.Error(err))
				return nil
			}
			r.log.Debug("segment rendered",
				zap.String("name", name),
				zap.Duration("took", time.Since(start)))
			results[i] = out
			return nil
		})
	}
	_ = g.Wait()

	var parts []string
	for _, out := range results {
		if out != "" {
			parts = append(parts, out)
		}
	}
	return strings.Join(parts, r.cfg.Separator)
}

// Run is the statusline-mode entrypoint: read one document from in, write one
// line to out. The returned error is fatal only for an unparsable top-level
// document, in which case nothing is written.
func Run(ctx context.Context, in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read status input: %w", err)
	}

	input, err := Parse(data)
	if err != nil {
		return fmt.Errorf("parse status input: %w", err)
	}

	cfg := config.Load(input.projectDir())

	logger := logging.New(cfg.LogFile())
	defer func() { _ = logger.Sync() }()
	logger.Debug("statusline refresh",
		zap.String("session", input.SessionID),
		zap.String("dir", input.Workspace.CurrentDir))

	r := New(input, cfg, WithLogger(logger))
	fmt.Fprintln(out, r.Render(ctx))
	return nil
}

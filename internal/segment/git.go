package segment

import (
	"context"

	"github.com/facetline/facet/internal/cache"
	"github.com/facetline/facet/internal/theme"
	"github.com/facetline/facet/internal/vcs"
)

// Git shows the checked-out branch. Outside a repository, or on a detached
// HEAD with no branch name, the segment disappears rather than showing a
// placeholder.
type Git struct {
	resolver  vcs.Resolver
	cache     *cache.Cache
	theme     *theme.Theme
	showDirty bool
}

func NewGit(r vcs.Resolver, c *cache.Cache, th *theme.Theme, showDirty bool) *Git {
	return &Git{resolver: r, cache: c, theme: th, showDirty: showDirty}
}

func (s *Git) Name() string { return "git" }

func (s *Git) Render(ctx context.Context, in Input) (string, error) {
	dir := in.CurrentDir
	if dir == "" {
		return "", nil
	}

	key := "git:" + dir
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			return cached, nil
		}
	}

	branch, ok := s.resolver.Branch(ctx, dir)
	if !ok {
		return "", nil
	}

	if s.showDirty && s.resolver.Dirty(ctx, dir) {
		branch += "*"
	}

	text := branch
	if icon := s.theme.Icon("git"); icon != "" {
		text = icon + " " + text
	}
	out := s.theme.Git.Render(text)

	if s.cache != nil {
		s.cache.Set(key, out, cache.GitTTL)
	}
	return out, nil
}

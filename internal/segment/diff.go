package segment

import (
	"context"
	"fmt"

	"github.com/facetline/facet/internal/theme"
	"github.com/facetline/facet/internal/vcs"
)

// Diff shows uncommitted line counts from the working tree. These come from
// git, not from the host's session stats, so they reflect what is actually on
// disk. Outside a repository the segment disappears.
type Diff struct {
	theme *theme.Theme
	stats func(ctx context.Context, dir string) (added, removed int, ok bool)
}

func NewDiff(th *theme.Theme) *Diff {
	return &Diff{theme: th, stats: vcs.DiffStats}
}

func (s *Diff) Name() string { return "diff" }

func (s *Diff) Render(ctx context.Context, in Input) (string, error) {
	dir := in.ProjectDir
	if dir == "" {
		dir = in.CurrentDir
	}
	if dir == "" {
		return "", nil
	}

	added, removed, ok := s.stats(ctx, dir)
	if !ok {
		return "", nil
	}
	return fmt.Sprintf("%s %s",
		s.theme.DiffAdded.Render(fmt.Sprintf("+%d", added)),
		s.theme.DiffRemoved.Render(fmt.Sprintf("-%d", removed)),
	), nil
}

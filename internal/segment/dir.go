package segment

import (
	"context"
	"path/filepath"

	"github.com/facetline/facet/internal/theme"
)

// Dir shows an abbreviated working directory: the last two path components,
// enough to orient without eating the whole line.
type Dir struct {
	theme *theme.Theme
}

func NewDir(th *theme.Theme) *Dir {
	return &Dir{theme: th}
}

func (s *Dir) Name() string { return "dir" }

func (s *Dir) Render(_ context.Context, in Input) (string, error) {
	if in.CurrentDir == "" {
		return "", nil
	}

	text := abbreviate(in.CurrentDir)
	if icon := s.theme.Icon("dir"); icon != "" {
		text = icon + " " + text
	}
	return s.theme.Dir.Render(text), nil
}

// abbreviate reduces a path to "parent/base". Paths at or near the root keep
// just their base.
func abbreviate(dir string) string {
	dir = filepath.Clean(dir)
	base := filepath.Base(dir)

	parent := filepath.Base(filepath.Dir(dir))
	if parent == string(filepath.Separator) || parent == "." {
		return base
	}
	return parent + string(filepath.Separator) + base
}

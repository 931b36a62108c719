package segment

import (
	"context"

	"github.com/facetline/facet/internal/theme"
)

// Model shows the active model's display name in brackets.
type Model struct {
	theme *theme.Theme
}

func NewModel(th *theme.Theme) *Model {
	return &Model{theme: th}
}

func (s *Model) Name() string { return "model" }

func (s *Model) Render(_ context.Context, in Input) (string, error) {
	if in.Model == "" {
		return "", nil
	}
	return s.theme.Model.Render("[" + in.Model + "]"), nil
}

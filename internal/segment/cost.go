package segment

import (
	"context"
	"fmt"

	"github.com/facetline/facet/internal/theme"
)

// Cost shows the session's accumulated API cost as reported by the host.
// Zero means the host sent no cost data, and the segment disappears.
type Cost struct {
	theme *theme.Theme
}

func NewCost(th *theme.Theme) *Cost {
	return &Cost{theme: th}
}

func (s *Cost) Name() string { return "cost" }

func (s *Cost) Render(_ context.Context, in Input) (string, error) {
	if in.CostUSD == 0 {
		return "", nil
	}
	return s.theme.Cost.Render(fmt.Sprintf("$%.2f", in.CostUSD)), nil
}

package segment

import (
	"context"
	"fmt"

	"github.com/facetline/facet/internal/theme"
	"github.com/facetline/facet/internal/transcript"
)

// ContextPct shows approximate context-window utilization, derived from the
// usage block of the last transcript record. No transcript, no segment.
type ContextPct struct {
	theme  *theme.Theme
	window int
}

func NewContextPct(th *theme.Theme, window int) *ContextPct {
	return &ContextPct{theme: th, window: window}
}

func (s *ContextPct) Name() string { return "context" }

func (s *ContextPct) Render(_ context.Context, in Input) (string, error) {
	if in.TranscriptPath == "" {
		return "", nil
	}

	usage, err := transcript.LastUsage(in.TranscriptPath)
	if err != nil {
		return "", err
	}
	if usage == nil {
		return "", nil
	}

	pct := transcript.Percent(usage.Total(), s.window)
	text := fmt.Sprintf("%d%%", pct)
	if icon := s.theme.Icon("context"); icon != "" {
		text = icon + " " + text
	}
	return s.theme.ContextStyle(pct).Render(text), nil
}

// Package theme owns the statusline's look: one lipgloss style and one icon
// per segment. The color profile is pinned explicitly rather than sniffed
// from the terminal, because statusline output goes down a pipe to the host,
// which renders ANSI itself.
package theme

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles per-segment styles and icons.
type Theme struct {
	Model       lipgloss.Style
	Dir         lipgloss.Style
	Git         lipgloss.Style
	Context     lipgloss.Style
	ContextWarn lipgloss.Style
	ContextHigh lipgloss.Style
	DiffAdded   lipgloss.Style
	DiffRemoved lipgloss.Style
	Cost        lipgloss.Style

	icons map[string]string
}

func defaultIcons() map[string]string {
	return map[string]string{
		"dir":     "📁",
		"git":     "🌿",
		"context": "📊",
	}
}

// New builds a theme. With color enabled styles emit standard ANSI sequences
// regardless of what stdout is attached to; otherwise they are pass-through.
// overrides replaces default icons per segment name (an empty string removes
// the icon).
func New(color bool, overrides map[string]string) *Theme {
	icons := defaultIcons()
	for name, icon := range overrides {
		if icon == "" {
			delete(icons, name)
		} else {
			icons[name] = icon
		}
	}

	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI
	}
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)

	return &Theme{
		Model:       r.NewStyle().Foreground(lipgloss.Color("5")), // magenta
		Dir:         r.NewStyle().Foreground(lipgloss.Color("6")), // cyan
		Git:         r.NewStyle().Foreground(lipgloss.Color("3")), // yellow
		Context:     r.NewStyle().Foreground(lipgloss.Color("2")), // green
		ContextWarn: r.NewStyle().Foreground(lipgloss.Color("3")),
		ContextHigh: r.NewStyle().Foreground(lipgloss.Color("1")), // red
		DiffAdded:   r.NewStyle().Foreground(lipgloss.Color("2")),
		DiffRemoved: r.NewStyle().Foreground(lipgloss.Color("1")),
		Cost:        r.NewStyle().Foreground(lipgloss.Color("8")), // gray
		icons:       icons,
	}
}

// Plain returns an uncolored theme with default icons. Tests use it so
// expected strings stay readable.
func Plain() *Theme {
	return New(false, nil)
}

// Icon returns the icon for a segment name, or "" when it has none.
func (t *Theme) Icon(name string) string {
	return t.icons[name]
}

// ContextStyle picks the context style for a utilization percentage: warning
// tint from 60%, high tint from 80%.
func (t *Theme) ContextStyle(pct int) lipgloss.Style {
	switch {
	case pct >= 80:
		return t.ContextHigh
	case pct >= 60:
		return t.ContextWarn
	default:
		return t.Context
	}
}

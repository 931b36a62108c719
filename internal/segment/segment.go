// Package segment defines statusline segments and the registry that holds
// them. A segment turns session state into one short piece of text; an empty
// result means the segment has nothing to show and is dropped from the line.
package segment

import (
	"context"
	"sort"
)

// Input is the per-refresh session state handed to every segment.
type Input struct {
	Model          string
	CurrentDir     string
	ProjectDir     string
	TranscriptPath string
	CostUSD        float64
}

// Segment renders one piece of the statusline. Returning ("", nil) omits the
// segment; returning an error also omits it, but lets the renderer log why.
type Segment interface {
	Name() string
	Render(ctx context.Context, in Input) (string, error)
}

// Registry holds segments by name.
type Registry struct {
	segments map[string]Segment
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{segments: make(map[string]Segment)}
}

// Register adds a segment, replacing any previous one with the same name.
func (r *Registry) Register(s Segment) {
	r.segments[s.Name()] = s
}

// Get returns a segment by name, or nil.
func (r *Registry) Get(name string) Segment {
	return r.segments[name]
}

// List returns all registered names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.segments))
	for name := range r.segments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

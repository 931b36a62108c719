// Package config loads facet's layered TOML configuration.
//
// Precedence, lowest to highest:
//
//	~/.claude/facet.toml             global defaults
//	<project>/.claude/facet.toml     repo config, committed for the team
//	<project>/.claude/facet.local.toml  personal overrides, gitignored
//
// A broken or missing file never fails the statusline; that layer is simply
// skipped.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/facetline/facet/internal/transcript"
)

// Config holds all facet configuration.
type Config struct {
	Separator string            `toml:"separator"`
	Segments  []string          `toml:"segments"`
	Color     string            `toml:"color"` // "auto", "always", "never"
	Icons     map[string]string `toml:"icons"`

	Context ContextConfig `toml:"context"`
	Git     GitConfig     `toml:"git"`
	Log     LogConfig     `toml:"log"`
}

type ContextConfig struct {
	// WindowSize is the token denominator for the context percentage. It is
	// a property of the active model, which the host does not report, so it
	// stays configurable with a 200k default.
	WindowSize int `toml:"window_size"`
}

type GitConfig struct {
	// ShowDirty appends "*" to the branch name when the worktree has
	// uncommitted changes.
	ShowDirty bool `toml:"show_dirty"`
}

type LogConfig struct {
	// File enables debug logging to the named path. Empty disables logging
	// entirely; the statusline never logs to stdout or stderr.
	File string `toml:"file"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Separator: " | ",
		Segments:  []string{"model", "dir", "git", "context"},
		Color:     "auto",
		Context:   ContextConfig{WindowSize: transcript.DefaultWindow},
	}
}

// Load reads and merges configuration for a project directory. projectDir may
// be empty, in which case only the global layer applies.
func Load(projectDir string) Config {
	cfg := Default()

	decode(globalPath(), &cfg)
	if projectDir != "" {
		decode(filepath.Join(projectDir, ".claude", "facet.toml"), &cfg)
		decode(filepath.Join(projectDir, ".claude", "facet.local.toml"), &cfg)
	}

	if cfg.Context.WindowSize <= 0 {
		cfg.Context.WindowSize = transcript.DefaultWindow
	}
	return cfg
}

// decode overlays one layer onto cfg. TOML decoding only touches keys present
// in the file, which gives the overlay semantics for free.
func decode(path string, cfg *Config) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	// Errors are ignored on purpose: a typo in a config file must not blank
	// the host's statusline.
	_, _ = toml.DecodeFile(path, cfg)
}

func globalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".claude", "facet.toml")
}

// ColorEnabled resolves the color mode against the environment.
func (c Config) ColorEnabled() bool {
	switch c.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return os.Getenv("NO_COLOR") == ""
	}
}

// LogFile returns the debug log path, honoring the FACET_DEBUG override.
func (c Config) LogFile() string {
	if env := os.Getenv("FACET_DEBUG"); env != "" {
		return env
	}
	return c.Log.File
}

const starter = `# facet statusline configuration
# segments render left to right; unknown names are ignored
segments = ["model", "dir", "git", "context"]
separator = " | "
color = "auto"

[context]
# token denominator for the context percentage
window_size = 200000

[git]
show_dirty = false
`

// Init writes a starter config under dir/.claude. It refuses to overwrite an
// existing file.
func Init(dir string) error {
	return writeStarter(filepath.Join(dir, ".claude", "facet.toml"))
}

// InitGlobal writes the starter config to ~/.claude/facet.toml.
func InitGlobal() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("locate home directory: %w", err)
	}
	return writeStarter(filepath.Join(home, ".claude", "facet.toml"))
}

func writeStarter(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	return os.WriteFile(path, []byte(starter), 0644)
}

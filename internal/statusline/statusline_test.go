package statusline

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facetline/facet/internal/config"
	"github.com/facetline/facet/internal/theme"
)

type fakeResolver struct {
	branch string
	ok     bool
}

func (f fakeResolver) Branch(context.Context, string) (string, bool) { return f.branch, f.ok }
func (f fakeResolver) Dirty(context.Context, string) bool            { return false }

func plainConfig() config.Config {
	cfg := config.Default()
	cfg.Color = "never"
	return cfg
}

func TestParse(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		in, err := Parse([]byte(`{
			"session_id": "abc",
			"transcript_path": "/tmp/t.jsonl",
			"model": {"display_name": "Sonnet"},
			"workspace": {"project_dir": "/p", "current_dir": "/p/sub"},
			"cost": {"total_cost_usd": 0.42},
			"extra_field": {"ignored": true}
		}`))
		require.NoError(t, err)
		assert.Equal(t, "Sonnet", in.Model.DisplayName)
		assert.Equal(t, "/p/sub", in.Workspace.CurrentDir)
		assert.Equal(t, "/tmp/t.jsonl", in.TranscriptPath)
		assert.Equal(t, 0.42, in.Cost.TotalCostUSD)
	})

	t.Run("empty input is fatal", func(t *testing.T) {
		_, err := Parse(nil)
		assert.Error(t, err)
	})

	t.Run("non-JSON is fatal", func(t *testing.T) {
		_, err := Parse([]byte("not json"))
		assert.Error(t, err)
	})

	t.Run("non-object is fatal", func(t *testing.T) {
		_, err := Parse([]byte(`[1, 2]`))
		assert.Error(t, err)
	})

	t.Run("null is fatal", func(t *testing.T) {
		_, err := Parse([]byte(`null`))
		assert.Error(t, err, "null is valid JSON but not an object")
	})

	t.Run("bad field type degrades, not fails", func(t *testing.T) {
		in, err := Parse([]byte(`{"model": 5, "workspace": {"current_dir": "/a/b"}}`))
		require.NoError(t, err)
		assert.Empty(t, in.Model.DisplayName)
		assert.Equal(t, "/a/b", in.Workspace.CurrentDir)
	})
}

func TestRender_SegmentOrderAndOmission(t *testing.T) {
	input := Input{
		Model:     ModelInfo{DisplayName: "Sonnet"},
		Workspace: WorkspaceInfo{CurrentDir: "/home/user/projects/myrepo"},
	}

	t.Run("model and path with branch", func(t *testing.T) {
		r := New(input, plainConfig(),
			WithResolver(fakeResolver{branch: "feature-x", ok: true}),
			WithTheme(theme.Plain()))
		line := r.Render(context.Background())
		assert.Equal(t, "[Sonnet] | 📁 projects/myrepo | 🌿 feature-x", line)
	})

	t.Run("no repo drops the branch segment", func(t *testing.T) {
		r := New(input, plainConfig(),
			WithResolver(fakeResolver{}),
			WithTheme(theme.Plain()))
		line := r.Render(context.Background())
		assert.Equal(t, "[Sonnet] | 📁 projects/myrepo", line)
		assert.NotContains(t, line, "🌿")
	})

	t.Run("no transcript drops the usage segment", func(t *testing.T) {
		r := New(input, plainConfig(),
			WithResolver(fakeResolver{}),
			WithTheme(theme.Plain()))
		line := r.Render(context.Background())
		assert.NotContains(t, line, "📊")
		assert.NotContains(t, line, "%")
	})

	t.Run("usage segment renders last", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "t.jsonl")
		require.NoError(t, os.WriteFile(path,
			[]byte(`{"message":{"usage":{"input_tokens":50000,"cache_read_input_tokens":50000}}}`+"\n"), 0644))

		withTranscript := input
		withTranscript.TranscriptPath = path
		r := New(withTranscript, plainConfig(),
			WithResolver(fakeResolver{branch: "main", ok: true}),
			WithTheme(theme.Plain()))
		line := r.Render(context.Background())
		assert.Equal(t, "[Sonnet] | 📁 projects/myrepo | 🌿 main | 📊 50%", line)
	})

	t.Run("unknown configured segment is skipped", func(t *testing.T) {
		cfg := plainConfig()
		cfg.Segments = []string{"model", "bogus", "dir"}
		r := New(input, cfg,
			WithResolver(fakeResolver{}),
			WithTheme(theme.Plain()))
		line := r.Render(context.Background())
		assert.Equal(t, "[Sonnet] | 📁 projects/myrepo", line)
	})

	t.Run("custom order and separator", func(t *testing.T) {
		cfg := plainConfig()
		cfg.Segments = []string{"dir", "model"}
		cfg.Separator = " :: "
		r := New(input, cfg,
			WithResolver(fakeResolver{}),
			WithTheme(theme.Plain()))
		line := r.Render(context.Background())
		assert.Equal(t, "📁 projects/myrepo :: [Sonnet]", line)
	})

	t.Run("never renders null or empty brackets", func(t *testing.T) {
		r := New(Input{}, plainConfig(),
			WithResolver(fakeResolver{}),
			WithTheme(theme.Plain()))
		line := r.Render(context.Background())
		assert.Empty(t, line)
	})
}

func TestRender_Idempotent(t *testing.T) {
	input := Input{
		Model:     ModelInfo{DisplayName: "Sonnet"},
		Workspace: WorkspaceInfo{CurrentDir: "/a/b/c"},
	}
	r1 := New(input, plainConfig(), WithResolver(fakeResolver{branch: "main", ok: true}), WithTheme(theme.Plain()))
	r2 := New(input, plainConfig(), WithResolver(fakeResolver{branch: "main", ok: true}), WithTheme(theme.Plain()))

	assert.Equal(t, r1.Render(context.Background()), r2.Render(context.Background()))
}

// setupGitRepo builds a repo on a known branch for end-to-end Run tests.
func setupGitRepo(t *testing.T, branch string) string {
	t.Helper()
	dir := t.TempDir()

	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@test",
			"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@test",
		)
		require.NoError(t, cmd.Run(), "git %v", args)
	}

	run("init", "-b", branch)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f"), []byte("x\n"), 0644))
	run("add", ".")
	run("commit", "-m", "init")
	return dir
}

func TestRun_EndToEnd(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	t.Setenv("FACET_DEBUG", "")

	repo := setupGitRepo(t, "feature-x")

	stdin := strings.NewReader(
		`{"model":{"display_name":"Sonnet"},"workspace":{"current_dir":"` + repo + `"}}`)
	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), stdin, &out))

	line := strings.TrimSuffix(out.String(), "\n")
	parts := strings.Split(line, " | ")
	require.Len(t, parts, 3)
	assert.Equal(t, "[Sonnet]", parts[0])
	assert.True(t, strings.HasSuffix(parts[1], filepath.Base(filepath.Dir(repo))+"/"+filepath.Base(repo)),
		"path segment shows the last two components: %q", parts[1])
	assert.Equal(t, "🌿 feature-x", parts[2])
}

func TestRun_OutsideRepoOmitsBranch(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	t.Setenv("FACET_DEBUG", "")

	dir := t.TempDir()
	stdin := strings.NewReader(
		`{"model":{"display_name":"Sonnet"},"workspace":{"current_dir":"` + dir + `"}}`)
	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), stdin, &out))

	assert.NotContains(t, out.String(), "🌿")
}

func TestRun_MalformedInputWritesNothing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	for _, bad := range []string{"", "not json", `"just a string"`, "null"} {
		var out bytes.Buffer
		err := Run(context.Background(), strings.NewReader(bad), &out)
		assert.Error(t, err, "input %q", bad)
		assert.Zero(t, out.Len(), "no stdout on fatal parse failure")
	}
}

package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlain_NoEscapeSequences(t *testing.T) {
	th := Plain()
	out := th.Git.Render("main")
	assert.Equal(t, "main", out)
}

func TestNew_ColorEmitsANSI(t *testing.T) {
	th := New(true, nil)
	out := th.Git.Render("main")
	assert.True(t, strings.Contains(out, "\x1b["), "colored theme must emit ANSI: %q", out)
	assert.Contains(t, out, "main")
}

func TestIconOverrides(t *testing.T) {
	th := New(false, map[string]string{"git": ">", "dir": ""})
	assert.Equal(t, ">", th.Icon("git"))
	assert.Equal(t, "", th.Icon("dir"), "empty override removes the icon")
	assert.Equal(t, "📊", th.Icon("context"))
	assert.Equal(t, "", th.Icon("model"))
}

func TestContextStyleThresholds(t *testing.T) {
	th := New(true, nil)
	assert.Equal(t, th.Context.Render("x"), th.ContextStyle(10).Render("x"))
	assert.Equal(t, th.ContextWarn.Render("x"), th.ContextStyle(60).Render("x"))
	assert.Equal(t, th.ContextHigh.Render("x"), th.ContextStyle(80).Render("x"))
	assert.Equal(t, th.ContextHigh.Render("x"), th.ContextStyle(120).Render("x"))
}

// Package vcs answers the one question the statusline has for version
// control: which branch is checked out here, if any. Resolution shells out to
// the git binary; everything that can go wrong (not a repo, detached HEAD,
// git not installed) collapses into "no branch".
package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Resolver reports worktree state for a directory. It is an interface so the
// renderer can be tested against a fake without a repository on disk.
type Resolver interface {
	// Branch returns the checked-out branch name. ok is false when the
	// directory is not inside a repository or HEAD has no branch name.
	Branch(ctx context.Context, dir string) (branch string, ok bool)

	// Dirty reports whether the worktree has uncommitted changes. A lookup
	// failure reads as clean.
	Dirty(ctx context.Context, dir string) bool
}

// Git resolves via the git binary.
type Git struct{}

func (Git) Branch(ctx context.Context, dir string) (string, bool) {
	cmd := exec.CommandContext(ctx, "git", "branch", "--show-current")
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", false
	}

	// Detached HEAD prints nothing. That counts as "no branch".
	branch := strings.TrimSpace(out.String())
	if branch == "" {
		return "", false
	}
	return branch, true
}

func (Git) Dirty(ctx context.Context, dir string) bool {
	cmd := exec.CommandContext(ctx, "git", "status", "--porcelain")
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return false
	}
	return strings.TrimSpace(out.String()) != ""
}

// DiffStats returns uncommitted line counts against HEAD, the numbers behind
// the diff segment. ok is false when the lookup fails (not a repository, git
// missing), which is distinct from a clean tree's 0,0.
func DiffStats(ctx context.Context, dir string) (added, removed int, ok bool) {
	if dir == "" {
		return 0, 0, false
	}

	cmd := exec.CommandContext(ctx, "git", "diff", "--numstat", "HEAD")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return 0, 0, false
	}

	for _, line := range strings.Split(string(output), "\n") {
		var a, r int
		fmt.Sscanf(line, "%d\t%d", &a, &r)
		added += a
		removed += r
	}
	return added, removed, true
}

// Package update checks GitHub releases for a newer facet and installs it.
package update

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/tcnksm/go-latest"

	"github.com/facetline/facet/internal/version"
)

const (
	owner = "facetline"
	repo  = "facet"
)

// Info holds the result of a version check.
type Info struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
}

// Check compares the running version against the latest GitHub release tag.
func Check() (*Info, error) {
	tag := &latest.GithubTag{
		Owner:      owner,
		Repository: repo,
	}

	res, err := latest.Check(tag, version.Version)
	if err != nil {
		return nil, fmt.Errorf("check releases: %w", err)
	}

	return &Info{
		CurrentVersion:  version.Version,
		LatestVersion:   res.Current,
		UpdateAvailable: res.Outdated,
	}, nil
}

// Install downloads the latest release archive for this platform and
// atomically replaces the binary at ~/.claude/facet.
func Install(ctx context.Context) error {
	archiveURL := fmt.Sprintf(
		"https://github.com/%s/%s/releases/latest/download/facet-%s-%s.tar.gz",
		owner, repo, runtime.GOOS, runtime.GOARCH)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("locate home directory: %w", err)
	}
	binaryPath := filepath.Join(home, ".claude", "facet")
	tempPath := binaryPath + ".new"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, archiveURL, nil)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("download release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("no release archive for %s/%s", runtime.GOOS, runtime.GOARCH)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: HTTP %d", resp.StatusCode)
	}

	if err := extractBinary(resp.Body, tempPath); err != nil {
		os.Remove(tempPath)
		return err
	}

	if err := os.Chmod(tempPath, 0755); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tempPath, binaryPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("install: %w", err)
	}
	return nil
}

// extractBinary pulls the "facet" entry out of a gzipped tar stream and
// writes it to dst.
func extractBinary(r io.Reader, dst string) error {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return fmt.Errorf("archive has no facet binary")
		}
		if err != nil {
			return fmt.Errorf("read archive: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg || filepath.Base(hdr.Name) != "facet" {
			continue
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return err
		}
		out, err := os.Create(dst)
		if err != nil {
			return fmt.Errorf("create temp file: %w", err)
		}
		_, err = io.Copy(out, tr)
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("write binary: %w", err)
		}
		return nil
	}
}

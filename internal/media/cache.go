package media

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/playdeck/playdeck/internal/model"
	"github.com/playdeck/playdeck/internal/platform"
)

// Cache directory names per media kind
const (
	IconDirName   = "icons"
	BannerDirName = "banners"
)

// FetchTimeout bounds a single media download
const FetchTimeout = 30 * time.Second

// Cache stores downloaded game media on disk, one directory per media kind
type Cache struct {
	baseDir   string
	overwrite bool
	client    *http.Client
}

// NewCache creates a media cache rooted at baseDir
func NewCache(baseDir string) *Cache {
	return &Cache{
		baseDir: baseDir,
		client:  &http.Client{Timeout: FetchTimeout},
	}
}

// SetOverwrite makes Fetch replace already cached files
func (c *Cache) SetOverwrite(overwrite bool) {
	c.overwrite = overwrite
}

// Overwrite reports whether cached files are replaced on fetch
func (c *Cache) Overwrite() bool {
	return c.overwrite
}

// Dir returns the cache directory for a media kind
func (c *Cache) Dir(mt model.MediaType) string {
	if mt.IsBanner() {
		return filepath.Join(c.baseDir, BannerDirName)
	}
	return filepath.Join(c.baseDir, IconDirName)
}

// Path returns the absolute cache path for a game slug
func (c *Cache) Path(slug string, mt model.MediaType) (string, error) {
	filename, err := mt.Filename(slug)
	if err != nil {
		return "", err
	}
	return filepath.Join(c.Dir(mt), filename), nil
}

// Exists reports whether the media for the given slug is cached locally
func (c *Cache) Exists(slug string, mt model.MediaType) bool {
	path, err := c.Path(slug, mt)
	if err != nil {
		return false
	}
	return platform.PathExists(path)
}

// EnsureDirs creates the cache directories if missing
func (c *Cache) EnsureDirs() error {
	for _, dir := range []string{c.Dir(model.MediaIcon), c.Dir(model.MediaBanner)} {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			return fmt.Errorf("failed to create media dir %s: %w", dir, err)
		}
	}
	return nil
}

// Fetch downloads the media for slug into the cache and returns the local
// path. A file that is already cached is returned without touching the
// network unless overwrite is enabled. The file is written through a temp
// file so a failed fetch never leaves a partial file behind.
func (c *Cache) Fetch(ctx context.Context, slug, url string, mt model.MediaType) (string, error) {
	dest, err := c.Path(slug, mt)
	if err != nil {
		return "", err
	}

	if platform.PathExists(dest) {
		if !c.overwrite {
			return dest, nil
		}
		if err := os.Remove(dest); err != nil {
			return "", fmt.Errorf("failed to remove stale media: %w", err)
		}
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(dest)); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("invalid media URL %q: %w", url, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".media-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("write %s: %w", dest, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("rename into cache: %w", err)
	}

	return dest, nil
}

package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

const partSuffix = ".part"

var imageExtensions = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "gif": true, "webp": true,
	"svg": true, "ico": true, "avif": true, "bmp": true, "tif": true, "tiff": true,
}

type Downloader struct {
	httpClient *http.Client
}

func NewDownloader(httpClient *http.Client) *Downloader {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Downloader{httpClient: httpClient}
}

// Exists reports whether dir already holds a finished file named base.<anything>.
func Exists(dir, base string) (bool, error) {
	matches, err := filepath.Glob(filepath.Join(dir, base+".*"))
	if err != nil {
		return false, err
	}
	for _, m := range matches {
		if !strings.HasSuffix(m, partSuffix) {
			return true, nil
		}
	}
	return false, nil
}

// Download fetches rawURL into dir/base.<ext> and returns the final path. The body is
// streamed into dir/base.part first, and the partial file is removed on any failure.
// The extension comes from the URL when it names an image format, then from the
// sniffed content, then fallbackExt.
func (d *Downloader) Download(ctx context.Context, rawURL, dir, base, fallbackExt string) (string, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create directory %s: %w", dir, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for %s: %w", rawURL, err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download %s: %d", rawURL, resp.StatusCode)
	}

	partPath := filepath.Join(dir, base+partSuffix)
	finalPath, err := d.writePart(resp.Body, partPath, dir, base, extensionFromURL(rawURL), fallbackExt)
	if err != nil {
		os.Remove(partPath)
		return "", err
	}
	return finalPath, nil
}

func (d *Downloader) writePart(body io.Reader, partPath, dir, base, urlExt, fallbackExt string) (string, error) {
	file, err := os.Create(partPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", partPath, err)
	}
	if _, err := io.Copy(file, body); err != nil {
		file.Close()
		return "", fmt.Errorf("write %s: %w", partPath, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", partPath, err)
	}

	ext := urlExt
	if ext == "" {
		ext = sniffExtension(partPath)
	}
	if ext == "" {
		ext = fallbackExt
	}

	finalPath := filepath.Join(dir, base+"."+ext)
	if err := os.Rename(partPath, finalPath); err != nil {
		return "", fmt.Errorf("rename %s: %w", partPath, err)
	}
	return finalPath, nil
}

func extensionFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(u.Path), "."))
	if imageExtensions[ext] {
		return ext
	}
	return ""
}

func sniffExtension(filePath string) string {
	mtype, err := mimetype.DetectFile(filePath)
	if err != nil || !strings.HasPrefix(mtype.String(), "image/") {
		return ""
	}
	ext := strings.TrimPrefix(mtype.Extension(), ".")
	if imageExtensions[ext] {
		return ext
	}
	return ""
}

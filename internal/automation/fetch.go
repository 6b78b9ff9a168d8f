package automation

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"resty.dev/v3"

	"github.com/sorabatch/sora-batch/internal/config"
	"github.com/sorabatch/sora-batch/internal/model"
)

// Fetcher downloads generated media over plain HTTP.
type Fetcher struct {
	client *resty.Client
}

// NewFetcher creates a fetcher with the download timeout applied.
func NewFetcher() *Fetcher {
	client := resty.New()
	client.SetTimeout(config.DownloadTimeout)
	return &Fetcher{client: client}
}

// Download fetches the media URL and writes it to destPath, creating
// parent directories as needed.
func (f *Fetcher) Download(ctx context.Context, mediaURL, destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	resp, err := f.client.R().
		SetContext(ctx).
		Get(mediaURL)
	if err != nil {
		return fmt.Errorf("failed to download media: %w", err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("media download returned status %d", resp.StatusCode())
	}

	if err := os.WriteFile(destPath, resp.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write media file: %w", err)
	}
	return nil
}

// Close releases the underlying HTTP client.
func (f *Fetcher) Close() error {
	return f.client.Close()
}

// BuildOutputPath decides where a task's media lands. An OutputPath
// ending in a file extension is used as-is; one without is treated as a
// directory. Blank falls back to the default output directory with a
// generated name.
func BuildOutputPath(task *model.Task, defaultDir, mediaURL string) string {
	ext := mediaExtension(mediaURL, task.IsVideo())

	out := strings.TrimSpace(task.OutputPath)
	if out == "" {
		return filepath.Join(defaultDir, generatedFileName(task, ext))
	}
	if filepath.Ext(out) != "" {
		return out
	}
	return filepath.Join(out, generatedFileName(task, ext))
}

func generatedFileName(task *model.Task, ext string) string {
	return fmt.Sprintf("row%d_%s%s", task.Row, uuid.NewString()[:8], ext)
}

// mediaExtension derives a file extension from the media URL, falling
// back to the task kind's usual format.
func mediaExtension(mediaURL string, isVideo bool) string {
	if parsed, err := url.Parse(mediaURL); err == nil {
		if ext := path.Ext(parsed.Path); ext != "" && len(ext) <= 5 {
			return ext
		}
	}
	if isVideo {
		return ".mp4"
	}
	return ".png"
}

package automation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sorabatch/sora-batch/internal/model"
)

func TestBuildOutputPath(t *testing.T) {
	video := &model.Task{Row: 3, Kind: model.KindVideo}
	image := &model.Task{Row: 4, Kind: model.KindImage}

	tests := []struct {
		name     string
		task     *model.Task
		mediaURL string
		check    func(t *testing.T, got string)
	}{
		{
			name:     "explicit file path used as-is",
			task:     &model.Task{Row: 2, OutputPath: "/data/out/clip.mp4"},
			mediaURL: "https://cdn.example.com/v/abc.mp4",
			check: func(t *testing.T, got string) {
				if got != "/data/out/clip.mp4" {
					t.Errorf("Expected explicit path, got %s", got)
				}
			},
		},
		{
			name:     "directory path gets generated name",
			task:     &model.Task{Row: 3, Kind: model.KindVideo, OutputPath: "/data/out"},
			mediaURL: "https://cdn.example.com/v/abc.mp4",
			check: func(t *testing.T, got string) {
				if filepath.Dir(got) != "/data/out" {
					t.Errorf("Expected file under /data/out, got %s", got)
				}
				if !strings.HasPrefix(filepath.Base(got), "row3_") {
					t.Errorf("Generated name should carry the row number, got %s", got)
				}
			},
		},
		{
			name:     "blank path falls back to default directory",
			task:     video,
			mediaURL: "https://cdn.example.com/v/abc.mp4",
			check: func(t *testing.T, got string) {
				if filepath.Dir(got) != "/default" {
					t.Errorf("Expected file under /default, got %s", got)
				}
				if filepath.Ext(got) != ".mp4" {
					t.Errorf("Expected .mp4 extension, got %s", got)
				}
			},
		},
		{
			name:     "extension derived from URL",
			task:     image,
			mediaURL: "https://cdn.example.com/img/abc.webp?sig=1",
			check: func(t *testing.T, got string) {
				if filepath.Ext(got) != ".webp" {
					t.Errorf("Expected .webp extension, got %s", got)
				}
			},
		},
		{
			name:     "image fallback extension",
			task:     image,
			mediaURL: "https://cdn.example.com/media/abc",
			check: func(t *testing.T, got string) {
				if filepath.Ext(got) != ".png" {
					t.Errorf("Expected .png extension, got %s", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, BuildOutputPath(tt.task, "/default", tt.mediaURL))
		})
	}
}

func TestFetcher_Download(t *testing.T) {
	payload := []byte("fake video bytes")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	fetcher := NewFetcher()
	defer fetcher.Close()

	dest := filepath.Join(t.TempDir(), "nested", "out.mp4")
	if err := fetcher.Download(context.Background(), server.URL, dest); err != nil {
		t.Fatalf("Download failed: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("Reading downloaded file failed: %v", err)
	}
	if string(data) != string(payload) {
		t.Error("Downloaded content does not match served content")
	}
}

func TestFetcher_DownloadErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	fetcher := NewFetcher()
	defer fetcher.Close()

	dest := filepath.Join(t.TempDir(), "out.mp4")
	if err := fetcher.Download(context.Background(), server.URL, dest); err == nil {
		t.Error("Expected error for 404 response")
	}
}

func TestAbsoluteMediaURL(t *testing.T) {
	if got := absoluteMediaURL("https://cdn.example.com/a.mp4"); got != "https://cdn.example.com/a.mp4" {
		t.Errorf("Absolute URL should pass through, got %s", got)
	}
	if got := absoluteMediaURL("/media/a.mp4"); !strings.HasSuffix(got, "/media/a.mp4") || !strings.HasPrefix(got, "https://") {
		t.Errorf("Relative URL should be resolved against the site, got %s", got)
	}
}

package model

import (
	"strings"
	"time"
)

// Generation kinds supported by the site
const (
	KindVideo = "video"
	KindImage = "image"
)

// Default task options applied when a workbook cell is blank
const (
	DefaultKind        = KindVideo
	DefaultAspectRatio = "3:2"
	DefaultDuration    = "10s"
	DefaultResolution  = "720p"
	DefaultVariations  = 1
)

// Task represents a single generation request read from one workbook row
type Task struct {
	Row         int    // 1-based row number in the workbook
	Prompt      string
	ImageNames  string // comma-separated image file names to upload, optional
	Kind        string // video or image
	AspectRatio string
	Duration    string // e.g. "10s", video only
	Resolution  string // e.g. "720p", video only
	Variations  int
	OutputPath  string
	Status      TaskStatus
	Result      string // failure message or saved file path
	Profile     string // browser profile that ran the task
	StartedAt   time.Time
	FinishedAt  time.Time
}

// IsVideo returns true when the task generates a video
func (t *Task) IsVideo() bool {
	return t.Kind != KindImage
}

// ImageList splits ImageNames into trimmed, non-empty file names
func (t *Task) ImageList() []string {
	if strings.TrimSpace(t.ImageNames) == "" {
		return nil
	}

	var names []string
	for _, name := range strings.Split(t.ImageNames, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// GetDisplayPrompt returns the prompt shortened for list display
func (t *Task) GetDisplayPrompt() string {
	prompt := strings.TrimSpace(t.Prompt)
	prompt = strings.ReplaceAll(prompt, "\n", " ")
	prompt = strings.ReplaceAll(prompt, "\r", " ")

	const maxLen = 60
	if len(prompt) <= maxLen {
		return prompt
	}

	// Cut on a rune boundary so multi-byte prompts stay valid
	runes := []rune(prompt)
	if len(runes) <= maxLen {
		return prompt
	}
	return string(runes[:maxLen]) + "…"
}

// ApplyDefaults fills blank option fields with the documented defaults
func (t *Task) ApplyDefaults() {
	if strings.TrimSpace(t.Kind) == "" {
		t.Kind = DefaultKind
	}
	t.Kind = strings.ToLower(strings.TrimSpace(t.Kind))

	if strings.TrimSpace(t.AspectRatio) == "" {
		t.AspectRatio = DefaultAspectRatio
	}
	if strings.TrimSpace(t.Duration) == "" {
		t.Duration = DefaultDuration
	}
	if strings.TrimSpace(t.Resolution) == "" {
		t.Resolution = DefaultResolution
	}
	if t.Variations <= 0 {
		t.Variations = DefaultVariations
	}
}

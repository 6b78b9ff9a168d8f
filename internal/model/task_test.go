package model

import (
	"strings"
	"testing"
	"time"
)

func TestTask_ImageList(t *testing.T) {
	tests := []struct {
		imageNames string
		expected   []string
	}{
		{"", nil},
		{"   ", nil},
		{"nv1.png", []string{"nv1.png"}},
		{"nv1.png, nv2.png", []string{"nv1.png", "nv2.png"}},
		{" nv1.png ,, nv2.png ,", []string{"nv1.png", "nv2.png"}},
	}

	for _, test := range tests {
		task := &Task{ImageNames: test.imageNames}
		result := task.ImageList()
		if len(result) != len(test.expected) {
			t.Errorf("ImageList() with %q = %v, expected %v", test.imageNames, result, test.expected)
			continue
		}
		for i := range result {
			if result[i] != test.expected[i] {
				t.Errorf("ImageList() with %q = %v, expected %v", test.imageNames, result, test.expected)
				break
			}
		}
	}
}

func TestTask_ApplyDefaults(t *testing.T) {
	task := &Task{Row: 2, Prompt: "a sunset"}
	task.ApplyDefaults()

	if task.Kind != DefaultKind {
		t.Errorf("Expected kind %q, got %q", DefaultKind, task.Kind)
	}
	if task.AspectRatio != DefaultAspectRatio {
		t.Errorf("Expected aspect ratio %q, got %q", DefaultAspectRatio, task.AspectRatio)
	}
	if task.Duration != DefaultDuration {
		t.Errorf("Expected duration %q, got %q", DefaultDuration, task.Duration)
	}
	if task.Resolution != DefaultResolution {
		t.Errorf("Expected resolution %q, got %q", DefaultResolution, task.Resolution)
	}
	if task.Variations != DefaultVariations {
		t.Errorf("Expected variations %d, got %d", DefaultVariations, task.Variations)
	}
}

func TestTask_ApplyDefaults_NormalizesKind(t *testing.T) {
	task := &Task{Kind: "  Image "}
	task.ApplyDefaults()

	if task.Kind != KindImage {
		t.Errorf("Expected kind %q, got %q", KindImage, task.Kind)
	}
	if task.IsVideo() {
		t.Error("Expected IsVideo() to be false for image kind")
	}
}

func TestTask_GetDisplayPrompt(t *testing.T) {
	tests := []struct {
		name     string
		prompt   string
		expected string
	}{
		{"short", "a sunset over the ocean", "a sunset over the ocean"},
		{"newlines", "line one\nline two", "line one line two"},
		{"long", strings.Repeat("x", 80), strings.Repeat("x", 60) + "…"},
	}

	for _, test := range tests {
		task := &Task{Prompt: test.prompt}
		result := task.GetDisplayPrompt()
		if result != test.expected {
			t.Errorf("%s: GetDisplayPrompt() = %q, expected %q", test.name, result, test.expected)
		}
	}
}

func TestTask_Creation(t *testing.T) {
	now := time.Now()
	task := &Task{
		Row:       2,
		Prompt:    "a beautiful sunset over the ocean",
		Kind:      KindVideo,
		Status:    TaskStatusPending,
		StartedAt: now,
	}

	if task.Row != 2 {
		t.Errorf("Expected Row to be 2, got %d", task.Row)
	}

	if task.Status != TaskStatusPending {
		t.Errorf("Expected status to be TaskStatusPending, got %s", task.Status)
	}

	if !task.StartedAt.Equal(now) {
		t.Errorf("Expected StartedAt to be %v, got %v", now, task.StartedAt)
	}
}

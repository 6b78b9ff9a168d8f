package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSelectors(t *testing.T) {
	selectors := DefaultSelectors()

	if len(selectors.PromptInput) == 0 {
		t.Error("Default selectors should include prompt input candidates")
	}
	if len(selectors.GenerateButton) == 0 {
		t.Error("Default selectors should include generate button candidates")
	}
	if len(selectors.GeneratingIndicator) == 0 {
		t.Error("Default selectors should include generating indicator candidates")
	}
	if len(selectors.ResultMedia) == 0 {
		t.Error("Default selectors should include result media candidates")
	}
}

func TestLoadSelectors_MissingFile(t *testing.T) {
	selectors, err := LoadSelectors(filepath.Join(t.TempDir(), "selectors.yaml"))
	if err != nil {
		t.Fatalf("Missing override file should not be an error: %v", err)
	}

	defaults := DefaultSelectors()
	if len(selectors.PromptInput) != len(defaults.PromptInput) {
		t.Error("Missing override file should leave defaults unchanged")
	}
}

func TestLoadSelectors_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selectors.yaml")
	content := `prompt_input:
  - "#prompt"
generate_button:
  - "button.create"
  - "button.submit"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	selectors, err := LoadSelectors(path)
	if err != nil {
		t.Fatalf("LoadSelectors failed: %v", err)
	}

	if len(selectors.PromptInput) != 1 || selectors.PromptInput[0] != "#prompt" {
		t.Errorf("Expected overridden prompt input, got %v", selectors.PromptInput)
	}
	if len(selectors.GenerateButton) != 2 {
		t.Errorf("Expected 2 generate button candidates, got %v", selectors.GenerateButton)
	}

	// Fields absent from the file keep their defaults
	defaults := DefaultSelectors()
	if len(selectors.DownloadButton) != len(defaults.DownloadButton) {
		t.Error("Fields absent from the override file should keep defaults")
	}
}

func TestLoadSelectors_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selectors.yaml")
	if err := os.WriteFile(path, []byte("prompt_input: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSelectors(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

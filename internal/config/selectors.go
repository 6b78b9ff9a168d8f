package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SelectorsFileName is the optional override file inside the data directory.
const SelectorsFileName = "selectors.yaml"

// Selectors holds CSS selector candidates for each page element the
// automation interacts with. Candidates are tried in order until one
// matches, so site markup changes can be absorbed by appending new
// entries without a rebuild.
type Selectors struct {
	PromptInput         []string `yaml:"prompt_input"`
	ImageUploadInput    []string `yaml:"image_upload_input"`
	GenerateButton      []string `yaml:"generate_button"`
	KindSelector        []string `yaml:"kind_selector"`
	AspectRatioSelector []string `yaml:"aspect_ratio_selector"`
	DurationSelector    []string `yaml:"duration_selector"`
	ResolutionSelector  []string `yaml:"resolution_selector"`
	VariationsSelector  []string `yaml:"variations_selector"`
	MenuButton          []string `yaml:"menu_button"`
	LegacyModeSwitch    []string `yaml:"legacy_mode_switch"`
	GeneratingIndicator []string `yaml:"generating_indicator"`
	CompleteIndicator   []string `yaml:"complete_indicator"`
	ResultMedia         []string `yaml:"result_media"`
	DownloadButton      []string `yaml:"download_button"`
}

// DefaultSelectors returns the built-in selector table.
func DefaultSelectors() *Selectors {
	return &Selectors{
		PromptInput: []string{
			`textarea[placeholder*="Describe"]`,
			`div[contenteditable="true"]`,
			`textarea`,
		},
		ImageUploadInput: []string{
			`input[type="file"]`,
		},
		GenerateButton: []string{
			`button[data-testid="create-button"]`,
			`button[type="submit"]`,
			`button[aria-label="Create video"]`,
		},
		KindSelector: []string{
			`button[data-testid="type-selector"]`,
			`button[aria-haspopup="menu"]`,
		},
		AspectRatioSelector: []string{
			`button[data-testid="aspect-ratio-selector"]`,
			`button[aria-label*="aspect ratio"]`,
		},
		DurationSelector: []string{
			`button[data-testid="duration-selector"]`,
			`button[aria-label*="duration"]`,
		},
		ResolutionSelector: []string{
			`button[data-testid="resolution-selector"]`,
			`button[aria-label*="resolution"]`,
		},
		VariationsSelector: []string{
			`button[data-testid="variations-selector"]`,
			`button[aria-label*="variations"]`,
		},
		MenuButton: []string{
			`button[data-testid="profile-menu"]`,
			`button[aria-label="Open menu"]`,
		},
		LegacyModeSwitch: []string{
			`div[role="menuitem"][data-testid="switch-legacy"]`,
		},
		GeneratingIndicator: []string{
			`div[data-testid="generation-progress"]`,
			`div[aria-label="Generating"]`,
			`progress`,
		},
		CompleteIndicator: []string{
			`div[data-testid="generation-complete"]`,
			`a[download]`,
		},
		ResultMedia: []string{
			`video[src]`,
			`img[data-testid="generated-image"]`,
			`a[download]`,
		},
		DownloadButton: []string{
			`button[data-testid="download-button"]`,
			`button[aria-label="Download"]`,
		},
	}
}

// LoadSelectors returns the built-in table merged with overrides from
// the given YAML file. A missing file is not an error; the defaults are
// returned unchanged.
func LoadSelectors(path string) (*Selectors, error) {
	selectors := DefaultSelectors()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return selectors, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read selectors file: %w", err)
	}

	var overrides Selectors
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse selectors file: %w", err)
	}

	selectors.merge(&overrides)
	return selectors, nil
}

// merge replaces each selector list that the override file sets.
func (s *Selectors) merge(overrides *Selectors) {
	if len(overrides.PromptInput) > 0 {
		s.PromptInput = overrides.PromptInput
	}
	if len(overrides.ImageUploadInput) > 0 {
		s.ImageUploadInput = overrides.ImageUploadInput
	}
	if len(overrides.GenerateButton) > 0 {
		s.GenerateButton = overrides.GenerateButton
	}
	if len(overrides.KindSelector) > 0 {
		s.KindSelector = overrides.KindSelector
	}
	if len(overrides.AspectRatioSelector) > 0 {
		s.AspectRatioSelector = overrides.AspectRatioSelector
	}
	if len(overrides.DurationSelector) > 0 {
		s.DurationSelector = overrides.DurationSelector
	}
	if len(overrides.ResolutionSelector) > 0 {
		s.ResolutionSelector = overrides.ResolutionSelector
	}
	if len(overrides.VariationsSelector) > 0 {
		s.VariationsSelector = overrides.VariationsSelector
	}
	if len(overrides.MenuButton) > 0 {
		s.MenuButton = overrides.MenuButton
	}
	if len(overrides.LegacyModeSwitch) > 0 {
		s.LegacyModeSwitch = overrides.LegacyModeSwitch
	}
	if len(overrides.GeneratingIndicator) > 0 {
		s.GeneratingIndicator = overrides.GeneratingIndicator
	}
	if len(overrides.CompleteIndicator) > 0 {
		s.CompleteIndicator = overrides.CompleteIndicator
	}
	if len(overrides.ResultMedia) > 0 {
		s.ResultMedia = overrides.ResultMedia
	}
	if len(overrides.DownloadButton) > 0 {
		s.DownloadButton = overrides.DownloadButton
	}
}

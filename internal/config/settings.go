package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/sorabatch/sora-batch/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyWorkbookPath  = "workbook_path"
	KeyImageFolder   = "image_folder"
	KeyProfileName   = "profile_name"
	KeyBrowserCount  = "browser_count"
	KeyHeadless      = "headless_mode"
	KeyDefaultKind   = "default_kind"
	KeyDefaultRatio  = "default_aspect_ratio"
	KeyDefaultDur    = "default_duration"
	KeyDefaultRes    = "default_resolution"
	KeyTaskDelaySec  = "task_delay_seconds"
	KeyLanguage      = "app_language"
	KeyRevealOnDone  = "reveal_on_complete"
)

// Default values
const (
	DefaultProfileName  = "default"
	DefaultBrowserCount = 1
	DefaultHeadless     = false
	DefaultTaskDelaySec = 3
	DefaultLanguage     = "system"
	DefaultRevealOnDone = false

	MinBrowserCount = 1
	MaxBrowserCount = 10
)

// Site and timeout constants
const (
	SiteURL = "https://sora.com"

	PageLoadTimeout   = 60 * time.Second
	ElementTimeout    = 30 * time.Second
	GenerationTimeout = 300 * time.Second
	DownloadTimeout   = 120 * time.Second
	LoginTimeout      = 300 * time.Second
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetWorkbookPath returns the last used workbook path
func (s *Settings) GetWorkbookPath() string {
	return s.app.Preferences().String(KeyWorkbookPath)
}

// SetWorkbookPath remembers the workbook path for the next run
func (s *Settings) SetWorkbookPath(path string) {
	s.app.Preferences().SetString(KeyWorkbookPath, path)
}

// GetImageFolder returns the folder holding images referenced by tasks
func (s *Settings) GetImageFolder() string {
	return s.app.Preferences().String(KeyImageFolder)
}

// SetImageFolder sets the image folder
func (s *Settings) SetImageFolder(folder string) {
	s.app.Preferences().SetString(KeyImageFolder, folder)
}

// GetProfileName returns the browser profile used in single-browser mode
func (s *Settings) GetProfileName() string {
	name := s.app.Preferences().String(KeyProfileName)
	if name == "" {
		s.SetProfileName(DefaultProfileName)
		return DefaultProfileName
	}
	return name
}

// SetProfileName sets the browser profile name
func (s *Settings) SetProfileName(name string) {
	if name == "" {
		name = DefaultProfileName
	}
	s.app.Preferences().SetString(KeyProfileName, name)
}

// GetBrowserCount returns how many browsers process tasks in parallel
func (s *Settings) GetBrowserCount() int {
	value := s.app.Preferences().Int(KeyBrowserCount)
	if value <= 0 {
		s.SetBrowserCount(DefaultBrowserCount)
		return DefaultBrowserCount
	}
	return value
}

// SetBrowserCount sets the browser count, clamped to the supported range
func (s *Settings) SetBrowserCount(count int) {
	if count < MinBrowserCount {
		count = MinBrowserCount
	}
	if count > MaxBrowserCount {
		count = MaxBrowserCount
	}
	s.app.Preferences().SetInt(KeyBrowserCount, count)
}

// GetHeadless returns whether browsers run without a visible window
func (s *Settings) GetHeadless() bool {
	return s.app.Preferences().BoolWithFallback(KeyHeadless, DefaultHeadless)
}

// SetHeadless sets the headless flag
func (s *Settings) SetHeadless(headless bool) {
	s.app.Preferences().SetBool(KeyHeadless, headless)
}

// GetDefaultKind returns the generation kind applied to blank Type cells
func (s *Settings) GetDefaultKind() string {
	kind := s.app.Preferences().String(KeyDefaultKind)
	if kind == "" {
		s.SetDefaultKind(model.DefaultKind)
		return model.DefaultKind
	}
	return kind
}

// SetDefaultKind sets the default generation kind
func (s *Settings) SetDefaultKind(kind string) {
	s.app.Preferences().SetString(KeyDefaultKind, kind)
}

// GetDefaultAspectRatio returns the default aspect ratio
func (s *Settings) GetDefaultAspectRatio() string {
	ratio := s.app.Preferences().String(KeyDefaultRatio)
	if ratio == "" {
		s.SetDefaultAspectRatio(model.DefaultAspectRatio)
		return model.DefaultAspectRatio
	}
	return ratio
}

// SetDefaultAspectRatio sets the default aspect ratio
func (s *Settings) SetDefaultAspectRatio(ratio string) {
	s.app.Preferences().SetString(KeyDefaultRatio, ratio)
}

// GetDefaultDuration returns the default video duration
func (s *Settings) GetDefaultDuration() string {
	duration := s.app.Preferences().String(KeyDefaultDur)
	if duration == "" {
		s.SetDefaultDuration(model.DefaultDuration)
		return model.DefaultDuration
	}
	return duration
}

// SetDefaultDuration sets the default video duration
func (s *Settings) SetDefaultDuration(duration string) {
	s.app.Preferences().SetString(KeyDefaultDur, duration)
}

// GetDefaultResolution returns the default video resolution
func (s *Settings) GetDefaultResolution() string {
	resolution := s.app.Preferences().String(KeyDefaultRes)
	if resolution == "" {
		s.SetDefaultResolution(model.DefaultResolution)
		return model.DefaultResolution
	}
	return resolution
}

// SetDefaultResolution sets the default video resolution
func (s *Settings) SetDefaultResolution(resolution string) {
	s.app.Preferences().SetString(KeyDefaultRes, resolution)
}

// GetTaskDelay returns the pause between consecutive tasks
func (s *Settings) GetTaskDelay() time.Duration {
	seconds := s.app.Preferences().IntWithFallback(KeyTaskDelaySec, DefaultTaskDelaySec)
	if seconds < 0 {
		seconds = 0
	}
	return time.Duration(seconds) * time.Second
}

// SetTaskDelay sets the pause between consecutive tasks
func (s *Settings) SetTaskDelay(delay time.Duration) {
	seconds := int(delay / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	s.app.Preferences().SetInt(KeyTaskDelaySec, seconds)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRevealOnComplete returns whether finished results open in the file manager
func (s *Settings) GetRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealOnDone, DefaultRevealOnDone)
}

// SetRevealOnComplete sets whether finished results open in the file manager
func (s *Settings) SetRevealOnComplete(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealOnDone, reveal)
}

// GetLanguageOptions returns the selectable languages
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System",
		"en":     "English",
		"vi":     "Tiếng Việt",
	}
}

// GetKindOptions returns the selectable generation kinds
func (s *Settings) GetKindOptions() []string {
	return []string{model.KindVideo, model.KindImage}
}

// GetAspectRatioOptions returns the selectable aspect ratios
func (s *Settings) GetAspectRatioOptions() []string {
	return []string{"3:2", "1:1", "2:3", "16:9", "9:16", "4:3", "3:4"}
}

// GetDurationOptions returns the selectable video durations
func (s *Settings) GetDurationOptions() []string {
	return []string{"5s", "10s", "15s", "20s"}
}

// GetResolutionOptions returns the selectable video resolutions
func (s *Settings) GetResolutionOptions() []string {
	return []string{"480p", "720p", "1080p"}
}

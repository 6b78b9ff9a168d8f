package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/sorabatch/sora-batch/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestWorkbookPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if path := settings.GetWorkbookPath(); path != "" {
		t.Errorf("Expected empty initial workbook path, got %s", path)
	}

	settings.SetWorkbookPath("/data/tasks.xlsx")
	if path := settings.GetWorkbookPath(); path != "/data/tasks.xlsx" {
		t.Errorf("Expected workbook path /data/tasks.xlsx, got %s", path)
	}
}

func TestProfileName(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if name := settings.GetProfileName(); name != DefaultProfileName {
		t.Errorf("Expected default profile %s, got %s", DefaultProfileName, name)
	}

	// Test setting custom value
	settings.SetProfileName("work")
	if name := settings.GetProfileName(); name != "work" {
		t.Errorf("Expected profile 'work', got %s", name)
	}

	// Empty name defaults back
	settings.SetProfileName("")
	if name := settings.GetProfileName(); name != DefaultProfileName {
		t.Errorf("Empty profile should default to %s, got %s", DefaultProfileName, name)
	}
}

func TestBrowserCount(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if count := settings.GetBrowserCount(); count != DefaultBrowserCount {
		t.Errorf("Expected default browser count %d, got %d", DefaultBrowserCount, count)
	}

	// Test setting custom value
	settings.SetBrowserCount(4)
	if count := settings.GetBrowserCount(); count != 4 {
		t.Errorf("Expected browser count 4, got %d", count)
	}

	// Test boundary values
	settings.SetBrowserCount(0) // Should be clamped to 1
	if settings.GetBrowserCount() != MinBrowserCount {
		t.Error("Browser count should be clamped to minimum 1")
	}

	settings.SetBrowserCount(25) // Should be clamped to 10
	if settings.GetBrowserCount() != MaxBrowserCount {
		t.Error("Browser count should be clamped to maximum 10")
	}
}

func TestDefaultGenerationValues(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if kind := settings.GetDefaultKind(); kind != model.DefaultKind {
		t.Errorf("Expected default kind %s, got %s", model.DefaultKind, kind)
	}
	if ratio := settings.GetDefaultAspectRatio(); ratio != model.DefaultAspectRatio {
		t.Errorf("Expected default aspect ratio %s, got %s", model.DefaultAspectRatio, ratio)
	}
	if duration := settings.GetDefaultDuration(); duration != model.DefaultDuration {
		t.Errorf("Expected default duration %s, got %s", model.DefaultDuration, duration)
	}
	if resolution := settings.GetDefaultResolution(); resolution != model.DefaultResolution {
		t.Errorf("Expected default resolution %s, got %s", model.DefaultResolution, resolution)
	}

	settings.SetDefaultKind(model.KindImage)
	settings.SetDefaultAspectRatio("16:9")
	settings.SetDefaultDuration("15s")
	settings.SetDefaultResolution("1080p")

	if kind := settings.GetDefaultKind(); kind != model.KindImage {
		t.Errorf("Expected kind %s, got %s", model.KindImage, kind)
	}
	if ratio := settings.GetDefaultAspectRatio(); ratio != "16:9" {
		t.Errorf("Expected aspect ratio 16:9, got %s", ratio)
	}
	if duration := settings.GetDefaultDuration(); duration != "15s" {
		t.Errorf("Expected duration 15s, got %s", duration)
	}
	if resolution := settings.GetDefaultResolution(); resolution != "1080p" {
		t.Errorf("Expected resolution 1080p, got %s", resolution)
	}
}

func TestTaskDelay(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if delay := settings.GetTaskDelay(); delay != DefaultTaskDelaySec*time.Second {
		t.Errorf("Expected default task delay %ds, got %v", DefaultTaskDelaySec, delay)
	}

	// Test setting custom value
	settings.SetTaskDelay(7 * time.Second)
	if delay := settings.GetTaskDelay(); delay != 7*time.Second {
		t.Errorf("Expected task delay 7s, got %v", delay)
	}

	// Negative delay clamps to zero
	settings.SetTaskDelay(-3 * time.Second)
	if delay := settings.GetTaskDelay(); delay != 0 {
		t.Errorf("Negative delay should clamp to 0, got %v", delay)
	}
}

func TestHeadless(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetHeadless() != DefaultHeadless {
		t.Errorf("Expected default headless %v", DefaultHeadless)
	}

	settings.SetHeadless(true)
	if !settings.GetHeadless() {
		t.Error("Expected headless true after set")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("vi")
	if lang := settings.GetLanguage(); lang != "vi" {
		t.Errorf("Expected language 'vi', got %s", lang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "vi"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestGetKindOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetKindOptions()
	expected := []string{model.KindVideo, model.KindImage}

	if len(options) != len(expected) {
		t.Fatalf("Expected %d kind options, got %d", len(expected), len(options))
	}
	for i, want := range expected {
		if options[i] != want {
			t.Errorf("Kind option %d: expected %s, got %s", i, want, options[i])
		}
	}
}

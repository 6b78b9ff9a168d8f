package main

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/sorabatch/sora-batch/internal/automation"
	"github.com/sorabatch/sora-batch/internal/browser"
	"github.com/sorabatch/sora-batch/internal/config"
	"github.com/sorabatch/sora-batch/internal/logging"
	"github.com/sorabatch/sora-batch/internal/platform"
	"github.com/sorabatch/sora-batch/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.sorabatch.sora-batch"
	AppName = "Sora Batch"

	WindowWidth  = 900
	WindowHeight = 640
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Prepare the data directory tree before anything writes into it
	if err := platform.EnsureDataDirs(); err != nil {
		fmt.Printf("failed to prepare data directories: %v\n", err)
	}

	logsDir, err := platform.GetLogsDir()
	if err != nil {
		fmt.Printf("failed to resolve logs directory: %v\n", err)
		logsDir = "."
	}
	logger := logging.New(logsDir, false)
	defer func() { _ = logger.Sync() }()

	settings := config.NewSettings(myApp)

	selectors := config.DefaultSelectors()
	if dataDir, err := platform.GetDataDir(); err == nil {
		loaded, err := config.LoadSelectors(filepath.Join(dataDir, config.SelectorsFileName))
		if err != nil {
			logger.Warnw("Falling back to built-in selectors", "error", err)
		} else {
			selectors = loaded
		}
	}

	outputDir, err := platform.GetOutputDir()
	if err != nil {
		fmt.Printf("failed to resolve output directory: %v\n", err)
		outputDir = "."
	}

	fetcher := automation.NewFetcher()
	defer func() { _ = fetcher.Close() }()

	// Each worker gets its own Chrome instance bound to a profile
	newRunner := func(profile string) (automation.TaskRunner, error) {
		session, err := browser.NewSession(browser.Options{
			Profile:   profile,
			Headless:  settings.GetHeadless(),
			Selectors: selectors,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}
		return automation.NewFlow(session, fetcher, settings.GetImageFolder(), outputDir, logger), nil
	}

	service := automation.NewService(newRunner, nil, logger)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, service, logger)

	// Show and run
	myWindow.ShowAndRun()
}

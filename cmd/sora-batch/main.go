package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/sorabatch/sora-batch/internal/automation"
	"github.com/sorabatch/sora-batch/internal/browser"
	"github.com/sorabatch/sora-batch/internal/config"
	"github.com/sorabatch/sora-batch/internal/logging"
	"github.com/sorabatch/sora-batch/internal/platform"
	"github.com/sorabatch/sora-batch/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.sorabatch.sora-batch")
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	myWindow := myApp.NewWindow("Sora Batch")
	myWindow.Resize(fyne.NewSize(900, 640))

	_ = platform.EnsureDataDirs()

	logger := logging.NewNop()
	if logsDir, err := platform.GetLogsDir(); err == nil {
		logger = logging.New(logsDir, false)
	}

	settings := config.NewSettings(myApp)
	selectors := config.DefaultSelectors()

	outputDir, err := platform.GetOutputDir()
	if err != nil {
		outputDir = "."
	}

	fetcher := automation.NewFetcher()
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

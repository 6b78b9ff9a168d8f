package automation

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sorabatch/sora-batch/internal/browser"
	"github.com/sorabatch/sora-batch/internal/config"
	"github.com/sorabatch/sora-batch/internal/model"
)

// generationPollInterval is how often the flow re-checks generation state.
const generationPollInterval = 2 * time.Second

// menuSettleDelay gives the account menu time to open before its
// entries are probed.
const menuSettleDelay = time.Second

// optionContainer matches the clickable entries of an open dropdown.
const optionContainer = `[role="option"], [role="menuitem"], button`

// Flow drives one browser session through the site's generation form.
type Flow struct {
	session     *browser.Session
	fetcher     *Fetcher
	imageFolder string
	outputDir   string
	logger      *zap.SugaredLogger
}

// NewFlow binds a flow to a live browser session.
func NewFlow(session *browser.Session, fetcher *Fetcher, imageFolder, outputDir string, logger *zap.SugaredLogger) *Flow {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Flow{
		session:     session,
		fetcher:     fetcher,
		imageFolder: imageFolder,
		outputDir:   outputDir,
		logger:      logger,
	}
}

// NeedsLogin navigates to the site and reports whether a manual login
// is required.
func (f *Flow) NeedsLogin(ctx context.Context) (bool, error) {
	if err := f.session.Navigate(ctx, config.SiteURL); err != nil {
		return false, err
	}
	if !f.session.IsLoggedIn() {
		return true, nil
	}
	f.ensureLegacyUI(ctx)
	return false, nil
}

// WaitForLogin blocks until the user logs in through the browser window.
func (f *Flow) WaitForLogin(ctx context.Context) error {
	if err := f.session.WaitForLogin(ctx, config.LoginTimeout); err != nil {
		return err
	}
	f.ensureLegacyUI(ctx)
	return nil
}

// ensureLegacyUI switches the site to its old interface when the
// account menu offers the toggle. The redesigned interface drops the
// form elements the flow depends on. Best effort: an absent menu or
// toggle means the old interface is already active.
func (f *Flow) ensureLegacyUI(ctx context.Context) {
	selectors := f.session.Selectors()
	if !f.session.Has(selectors.MenuButton) {
		return
	}
	if err := f.session.Click(ctx, selectors.MenuButton); err != nil {
		return
	}

	select {
	case <-ctx.Done():
		return
	case <-time.After(menuSettleDelay):
	}

	if !f.session.Has(selectors.LegacyModeSwitch) {
		// Close the menu again
		_ = f.session.Click(ctx, selectors.MenuButton)
		return
	}
	if err := f.session.Click(ctx, selectors.LegacyModeSwitch); err != nil {
		f.logger.Warnw("Could not switch to the legacy interface", "error", err)
		return
	}
	f.logger.Info("Switched to the legacy interface")
}

// RunTask submits one task and returns the local path of the downloaded
// result.
func (f *Flow) RunTask(ctx context.Context, task *model.Task) (string, error) {
	selectors := f.session.Selectors()

	if err := f.uploadImages(ctx, task); err != nil {
		return "", err
	}

	if err := f.session.Fill(ctx, selectors.PromptInput, task.Prompt); err != nil {
		return "", fmt.Errorf("failed to enter prompt: %w", err)
	}

	if err := f.applySettings(ctx, task); err != nil {
		return "", err
	}

	if err := f.session.Click(ctx, selectors.GenerateButton); err != nil {
		return "", fmt.Errorf("failed to start generation: %w", err)
	}

	if err := f.waitForGeneration(ctx); err != nil {
		return "", err
	}

	mediaURL, err := f.resultMediaURL(ctx)
	if err != nil {
		return "", err
	}

	destPath := BuildOutputPath(task, f.outputDir, mediaURL)
	f.logger.Infow("Downloading result", "row", task.Row, "url", mediaURL, "dest", destPath)
	if err := f.fetcher.Download(ctx, mediaURL, destPath); err != nil {
		return "", err
	}
	return destPath, nil
}

// Close shuts down the underlying browser session.
func (f *Flow) Close() error {
	return f.session.Close()
}

// uploadImages resolves the task's image names against the image folder
// and attaches them to the form.
func (f *Flow) uploadImages(ctx context.Context, task *model.Task) error {
	names := task.ImageList()
	if len(names) == 0 {
		return nil
	}

	paths := make([]string, 0, len(names))
	for _, name := range names {
		if filepath.IsAbs(name) {
			paths = append(paths, name)
			continue
		}
		paths = append(paths, filepath.Join(f.imageFolder, name))
	}

	if err := f.session.Upload(ctx, f.session.Selectors().ImageUploadInput, paths); err != nil {
		return fmt.Errorf("failed to upload images: %w", err)
	}
	return nil
}

// applySettings sets kind, aspect ratio and, for videos, duration and
// resolution through the form's dropdowns.
func (f *Flow) applySettings(ctx context.Context, task *model.Task) error {
	selectors := f.session.Selectors()

	if err := f.pickOption(ctx, selectors.KindSelector, task.Kind); err != nil {
		return fmt.Errorf("failed to set type: %w", err)
	}
	if err := f.pickOption(ctx, selectors.AspectRatioSelector, task.AspectRatio); err != nil {
		return fmt.Errorf("failed to set aspect ratio: %w", err)
	}
	if task.Variations > 1 {
		if err := f.pickOption(ctx, selectors.VariationsSelector, strconv.Itoa(task.Variations)); err != nil {
			return fmt.Errorf("failed to set variations: %w", err)
		}
	}

	if !task.IsVideo() {
		return nil
	}

	if err := f.pickOption(ctx, selectors.DurationSelector, task.Duration); err != nil {
		return fmt.Errorf("failed to set duration: %w", err)
	}
	if err := f.pickOption(ctx, selectors.ResolutionSelector, task.Resolution); err != nil {
		return fmt.Errorf("failed to set resolution: %w", err)
	}
	return nil
}

// pickOption opens a dropdown and clicks the entry with the given label.
func (f *Flow) pickOption(ctx context.Context, opener []string, label string) error {
	if label == "" {
		return nil
	}
	if err := f.session.Click(ctx, opener); err != nil {
		return err
	}
	return f.session.ClickText(ctx, optionContainer, regexp.QuoteMeta(label))
}

// waitForGeneration polls until the site reports the generation done.
func (f *Flow) waitForGeneration(ctx context.Context) error {
	selectors := f.session.Selectors()
	deadline := time.Now().Add(config.GenerationTimeout)

	for {
		generating := f.session.Has(selectors.GeneratingIndicator)
		complete := f.session.Has(selectors.CompleteIndicator)
		media := f.session.Has(selectors.ResultMedia)

		if generationDone(generating, complete, media) {
			if media {
				// Let the media element finish loading before scraping it
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(generationPollInterval):
				}
			}
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("generation timed out after %s", config.GenerationTimeout)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(generationPollInterval):
		}
	}
}

// generationDone classifies one completion poll. Generated media on
// the page always counts as done; the complete indicator only counts
// once the generating indicator has gone away, since both can briefly
// coexist while the result renders.
func generationDone(generating, complete, media bool) bool {
	if media {
		return true
	}
	return !generating && complete
}

// resultMediaURL extracts the generated media's address from the page.
// The download button's link serves as a fallback when the media
// element exposes no usable source.
func (f *Flow) resultMediaURL(ctx context.Context) (string, error) {
	selectors := f.session.Selectors()
	sources := []struct {
		candidates []string
		attr       string
	}{
		{selectors.ResultMedia, "src"},
		{selectors.ResultMedia, "href"},
		{selectors.DownloadButton, "href"},
	}

	for _, source := range sources {
		value, err := f.session.AttributeOf(ctx, source.candidates, source.attr)
		if err != nil {
			continue
		}
		if value = strings.TrimSpace(value); value != "" {
			return absoluteMediaURL(value), nil
		}
	}
	return "", fmt.Errorf("result media has no source address")
}

// absoluteMediaURL resolves site-relative media paths.
func absoluteMediaURL(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return config.SiteURL + "/" + strings.TrimPrefix(raw, "/")
}

// Package browser wraps Chrome automation behind a small session API.
// Each session launches its own Chrome instance with a persistent user
// data directory, so login state survives between runs.
package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"

	"github.com/sorabatch/sora-batch/internal/config"
	"github.com/sorabatch/sora-batch/internal/platform"
)

// ErrNoSelectorMatched is returned when none of the selector candidates
// found an element before the timeout.
var ErrNoSelectorMatched = errors.New("no selector matched")

// loginPollInterval is how often WaitForLogin re-checks the page.
const loginPollInterval = 2 * time.Second

// Session is a single Chrome instance bound to a named profile.
type Session struct {
	profile   string
	selectors *config.Selectors
	logger    *zap.SugaredLogger

	browser *rod.Browser
	page    *rod.Page
}

// Options configure a new session.
type Options struct {
	Profile   string
	Headless  bool
	Selectors *config.Selectors
	Logger    *zap.SugaredLogger
}

// NewSession launches Chrome with the profile's user data directory and
// connects to it.
func NewSession(opts Options) (*Session, error) {
	if opts.Profile == "" {
		opts.Profile = config.DefaultProfileName
	}
	if opts.Selectors == nil {
		opts.Selectors = config.DefaultSelectors()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}

	profileDir, err := platform.GetProfileDir(opts.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve profile directory: %w", err)
	}
	if err := platform.CreateDirectoryIfNotExists(profileDir); err != nil {
		return nil, fmt.Errorf("failed to create profile directory: %w", err)
	}

	controlURL, err := launcher.New().
		Headless(opts.Headless).
		UserDataDir(profileDir).
		Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch chrome: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to chrome: %w", err)
	}

	opts.Logger.Infow("Browser session started", "profile", opts.Profile, "headless", opts.Headless)

	return &Session{
		profile:   opts.Profile,
		selectors: opts.Selectors,
		logger:    opts.Logger,
		browser:   browser,
	}, nil
}

// Profile returns the profile name this session was launched with.
func (s *Session) Profile() string {
	return s.profile
}

// Selectors returns the selector table in use.
func (s *Session) Selectors() *config.Selectors {
	return s.selectors
}

// Navigate opens the URL in the session page, creating the page on
// first use, and waits for the load event.
func (s *Session) Navigate(ctx context.Context, url string) error {
	if s.page == nil {
		page, err := s.browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
		if err != nil {
			return fmt.Errorf("failed to create page: %w", err)
		}
		s.page = page
	}

	page := s.page.Context(ctx).Timeout(config.PageLoadTimeout)
	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("page did not finish loading: %w", err)
	}
	return nil
}

// CurrentURL returns the page's current address, or an empty string when
// no page is open.
func (s *Session) CurrentURL() string {
	if s.page == nil {
		return ""
	}
	info, err := s.page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

// Element finds the first element matching any of the candidate
// selectors, trying them in order within the element timeout.
func (s *Session) Element(ctx context.Context, candidates []string) (*rod.Element, error) {
	if s.page == nil {
		return nil, errors.New("no page open")
	}

	deadline := time.Now().Add(config.ElementTimeout)
	for time.Now().Before(deadline) {
		for _, selector := range candidates {
			el, err := s.page.Context(ctx).Timeout(time.Second).Element(selector)
			if err == nil {
				return el, nil
			}
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(500 * time.Millisecond):
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoSelectorMatched, strings.Join(candidates, ", "))
}

// Has reports whether any of the candidate selectors currently matches,
// without waiting.
func (s *Session) Has(candidates []string) bool {
	if s.page == nil {
		return false
	}
	for _, selector := range candidates {
		has, _, err := s.page.Has(selector)
		if err == nil && has {
			return true
		}
	}
	return false
}

// Fill clears the matched element and types the given text into it.
func (s *Session) Fill(ctx context.Context, candidates []string, text string) error {
	el, err := s.Element(ctx, candidates)
	if err != nil {
		return err
	}
	// Replace any existing text instead of appending to it
	_ = el.SelectAllText()
	if err := el.Input(text); err != nil {
		return fmt.Errorf("failed to enter text: %w", err)
	}
	return nil
}

// Click clicks the first element matching the candidates.
func (s *Session) Click(ctx context.Context, candidates []string) error {
	el, err := s.Element(ctx, candidates)
	if err != nil {
		return err
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("failed to click: %w", err)
	}
	return nil
}

// ClickText clicks the first element of the given tag whose text matches
// the pattern. Used for menus that carry no stable attributes.
func (s *Session) ClickText(ctx context.Context, tag, pattern string) error {
	if s.page == nil {
		return errors.New("no page open")
	}
	el, err := s.page.Context(ctx).Timeout(config.ElementTimeout).ElementR(tag, pattern)
	if err != nil {
		return fmt.Errorf("no %s element matching %q: %w", tag, pattern, err)
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("failed to click: %w", err)
	}
	return nil
}

// Upload attaches local files to the matched file input.
func (s *Session) Upload(ctx context.Context, candidates []string, paths []string) error {
	el, err := s.Element(ctx, candidates)
	if err != nil {
		return err
	}
	if err := el.SetFiles(paths); err != nil {
		return fmt.Errorf("failed to upload files: %w", err)
	}
	return nil
}

// AttributeOf returns the given attribute of the first matching element.
func (s *Session) AttributeOf(ctx context.Context, candidates []string, attr string) (string, error) {
	el, err := s.Element(ctx, candidates)
	if err != nil {
		return "", err
	}
	value, err := el.Attribute(attr)
	if err != nil {
		return "", fmt.Errorf("failed to read attribute %s: %w", attr, err)
	}
	if value == nil {
		return "", nil
	}
	return *value, nil
}

// IsLoggedIn reports whether the current page looks like an
// authenticated session. A login or auth URL means logged out;
// otherwise the prompt input must be present.
func (s *Session) IsLoggedIn() bool {
	url := s.CurrentURL()
	if url == "" || isLoginURL(url) {
		return false
	}
	return s.Has(s.selectors.PromptInput)
}

// isLoginURL reports whether the address belongs to a login or auth flow.
func isLoginURL(url string) bool {
	lower := strings.ToLower(url)
	return strings.Contains(lower, "login") || strings.Contains(lower, "auth")
}

// WaitForLogin polls until the user completes the login in the visible
// browser window, or the timeout elapses.
func (s *Session) WaitForLogin(ctx context.Context, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		if s.IsLoggedIn() {
			return nil
		}
		if time.Now().After(deadline) {
			return errors.New("timed out waiting for login")
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(loginPollInterval):
		}
	}
}

// Close shuts down the page and the Chrome instance.
func (s *Session) Close() error {
	if s.page != nil {
		_ = s.page.Close()
		s.page = nil
	}
	if s.browser != nil {
		err := s.browser.Close()
		s.browser = nil
		if err != nil {
			return fmt.Errorf("failed to close browser: %w", err)
		}
	}
	s.logger.Infow("Browser session closed", "profile", s.profile)
	return nil
}

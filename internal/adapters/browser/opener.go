package browser

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"strings"

	"github.com/renato0307/revue/internal/logging"
	"github.com/renato0307/revue/internal/ports"
)

// Opener implements ports.URLOpener by launching the system browser
type Opener struct{}

// Verify interface compliance at compile time
var _ ports.URLOpener = (*Opener)(nil)

// NewOpener creates a new browser opener
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens an http(s) URL in the browser
// Priority: $REVUE_BROWSER → $BROWSER → platform default
func (o *Opener) Open(rawURL string) error {
	if err := validateURL(rawURL); err != nil {
		return err
	}

	browser, args := findBrowser(rawURL)
	if browser == "" {
		return fmt.Errorf("no browser found. Set $REVUE_BROWSER or $BROWSER")
	}

	logging.Logger.Info("Opening browser", "browser", browser, "url", rawURL)

	cmd := exec.Command(browser, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			logging.Logger.Warn("Browser exited with error", "error", err, "browser", browser)
		}
	}()

	return nil
}

func validateURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("no URL provided")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}
	return nil
}

func findBrowser(rawURL string) (string, []string) {
	for _, env := range []string{"REVUE_BROWSER", "BROWSER"} {
		if value := strings.TrimSpace(os.Getenv(env)); value != "" {
			// $BROWSER may hold a colon separated list
			first, _, _ := strings.Cut(value, string(os.PathListSeparator))
			return first, []string{rawURL}
		}
	}

	return findPlatformBrowser(rawURL)
}

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/vigo/patchmatch/internal/tlog"
)

// AppInstallers scrapes the Jamf App Installers software titles page.
type AppInstallers struct {
	Browser     Tabber
	Output      io.Writer
	Logger      *slog.Logger
	URL         string
	ContainerID string
	Timeout     time.Duration
}

// NewAppInstallers instantiates the scraper with the default page settings.
func NewAppInstallers(b Tabber, logger *slog.Logger) *AppInstallers {
	return &AppInstallers{
		Browser:     b,
		Output:      os.Stdout,
		Logger:      logger,
		URL:         DefaultAppInstallersURL,
		ContainerID: DefaultAppInstallersContainerID,
		Timeout:     DefaultWaitTimeout,
	}
}

// Name implements scan.Source.
func (a *AppInstallers) Name() string {
	return "Jamf App Installers"
}

// Titles renders the page, waits for the titles container and returns the
// titles listed in it. A missing container yields no titles and no error.
func (a *AppInstallers) Titles(ctx context.Context) ([]string, error) {
	if a.Browser == nil {
		return nil, fmt.Errorf("%w, browser", ErrValueRequired)
	}
	logger := a.Logger
	if logger == nil {
		logger = tlog.Discard()
	}

	tabCtx, cancel := a.Browser.Tab()
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	logger.Debug("navigating to", "url", a.URL)

	if err := chromedp.Run(tabCtx, chromedp.Navigate(a.URL)); err != nil {
		return nil, fmt.Errorf("navigate %s: %w", a.URL, err)
	}

	waitCtx, cancelWait := context.WithTimeout(tabCtx, a.Timeout)
	defer cancelWait()

	if err := chromedp.Run(waitCtx, chromedp.WaitReady("#"+a.ContainerID, chromedp.ByQuery)); err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			logger.Warn("container did not appear", "id", a.ContainerID, "timeout", a.Timeout)
			a.sectionNotFound()
			return nil, nil
		}
		return nil, fmt.Errorf("wait for #%s: %w", a.ContainerID, err)
	}

	var html string
	if err := chromedp.Run(tabCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return nil, fmt.Errorf("read html: %w", err)
	}

	titles, err := ParseSoftwareTitles(strings.NewReader(html), a.ContainerID)
	if errors.Is(err, ErrSectionNotFound) {
		a.sectionNotFound()
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	logger.Info("scraped", "source", a.Name(), "titles", len(titles))

	return titles, nil
}

func (a *AppInstallers) sectionNotFound() {
	out := a.Output
	if out == nil {
		out = os.Stdout
	}
	_, _ = fmt.Fprintln(out, "Software Titles section not found.")
}

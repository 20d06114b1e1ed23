package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/vigo/patchmatch/internal/tlog"
)

// Installomator scrapes the label names out of the Installomator script.
type Installomator struct {
	Browser   Tabber
	Logger    *slog.Logger
	URL       string
	ElementID string
	Timeout   time.Duration
}

// NewInstallomator instantiates the scraper with the default page settings.
func NewInstallomator(b Tabber, logger *slog.Logger) *Installomator {
	return &Installomator{
		Browser:   b,
		Logger:    logger,
		URL:       DefaultInstallomatorURL,
		ElementID: DefaultInstallomatorElementID,
		Timeout:   DefaultWaitTimeout,
	}
}

// Name implements scan.Source.
func (i *Installomator) Name() string {
	return "Installomator"
}

// Titles returns the normalized, unique application names declared in the
// script.
func (i *Installomator) Titles(ctx context.Context) ([]string, error) {
	if i.Browser == nil {
		return nil, fmt.Errorf("%w, browser", ErrValueRequired)
	}
	logger := i.Logger
	if logger == nil {
		logger = tlog.Discard()
	}

	tabCtx, cancel := i.Browser.Tab()
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	logger.Debug("navigating to", "url", i.URL)

	if err := chromedp.Run(tabCtx, chromedp.Navigate(i.URL)); err != nil {
		return nil, fmt.Errorf("navigate %s: %w", i.URL, err)
	}

	sel := "#" + i.ElementID

	waitCtx, cancelWait := context.WithTimeout(tabCtx, i.Timeout)
	defer cancelWait()

	if err := chromedp.Run(waitCtx, chromedp.WaitReady(sel, chromedp.ByQuery)); err != nil {
		return nil, fmt.Errorf("wait for %s: %w", sel, err)
	}

	var text string
	if err := chromedp.Run(tabCtx, chromedp.Value(sel, &text, chromedp.ByQuery)); err != nil {
		return nil, fmt.Errorf("read %s: %w", sel, err)
	}
	if text == "" {
		if err := chromedp.Run(tabCtx, chromedp.Text(sel, &text, chromedp.ByQuery)); err != nil {
			return nil, fmt.Errorf("read %s: %w", sel, err)
		}
	}

	titles := NormalizeNames(ExtractNames(text))

	logger.Info("scraped", "source", i.Name(), "titles", len(titles))

	return titles, nil
}
